package main

import (
	"bytes"
	"strings"
	"testing"

	"xdao.co/b58uuid/b58uuid"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Encode(t *testing.T) {
	code, out, errOut := runCLI(t, "encode", "550e8400-e29b-41d4-a716-446655440000")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	if out != "BWBeN28Vb7cMEx7Ym8AUzs\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRun_Decode(t *testing.T) {
	code, out, errOut := runCLI(t, "decode", "BWBeN28Vb7cMEx7Ym8AUzs")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	if out != "550e8400-e29b-41d4-a716-446655440000\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRun_EncodeRejectsMalformedUUID(t *testing.T) {
	code, out, errOut := runCLI(t, "encode", "not-a-uuid")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if out != "" {
		t.Fatalf("expected empty stdout, got %q", out)
	}
	if !strings.Contains(errOut, "encode:") {
		t.Fatalf("expected encode error on stderr, got %q", errOut)
	}
}

func TestRun_DecodeRejectsOverflow(t *testing.T) {
	code, _, errOut := runCLI(t, "decode", strings.Repeat("z", 22))
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "decode:") {
		t.Fatalf("expected decode error on stderr, got %q", errOut)
	}
}

func TestRun_Gen(t *testing.T) {
	code, out, errOut := runCLI(t, "gen", "--count", "3")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 identifiers, got %d: %q", len(lines), out)
	}
	for _, line := range lines {
		if _, err := b58uuid.Decode(line); err != nil {
			t.Fatalf("generated identifier %q does not decode: %v", line, err)
		}
	}
}

func TestRun_GenUUID(t *testing.T) {
	code, out, errOut := runCLI(t, "gen", "--uuid")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut)
	}
	id, err := b58uuid.ToUUID(strings.TrimSuffix(out, "\n"))
	if err != nil {
		t.Fatalf("generated identifier does not decode: %v", err)
	}
	if id.Version() != 4 {
		t.Fatalf("expected version 4 UUID, got version %d", id.Version())
	}
}

func TestRun_GenRejectsBadCount(t *testing.T) {
	code, _, _ := runCLI(t, "gen", "--count", "0")
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestRun_UsageExitCodes(t *testing.T) {
	if code, _, _ := runCLI(t); code != 2 {
		t.Fatalf("no args: expected exit 2, got %d", code)
	}
	if code, _, _ := runCLI(t, "frobnicate"); code != 2 {
		t.Fatalf("unknown command: expected exit 2, got %d", code)
	}
	if code, _, _ := runCLI(t, "encode"); code != 2 {
		t.Fatalf("missing operand: expected exit 2, got %d", code)
	}
	if code, _, _ := runCLI(t, "help"); code != 0 {
		t.Fatalf("help: expected exit 0, got %d", code)
	}
}
