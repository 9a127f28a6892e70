package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"xdao.co/b58uuid/b58uuid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "encode":
		return cmdEncode(args[1:], out, errOut)
	case "decode":
		return cmdDecode(args[1:], out, errOut)
	case "gen":
		return cmdGen(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "xdao-b58uuid: fixed-width Base58 codec for UUIDs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-b58uuid encode <uuid>")
	fmt.Fprintln(w, "  xdao-b58uuid decode <base58>")
	fmt.Fprintln(w, "  xdao-b58uuid gen [--count <n>] [--uuid]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - encode takes canonical hyphenated UUID text (36 characters, case-insensitive)")
	fmt.Fprintln(w, "  - decode takes a 22-character Base58 identifier and prints lowercase UUID text")
	fmt.Fprintln(w, "  - gen prints fresh identifiers from crypto/rand; --uuid stamps RFC 4122 v4 bits")
}

func cmdEncode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: xdao-b58uuid encode <uuid>")
		return 2
	}
	enc, err := b58uuid.EncodeUUID(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "encode: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, enc)
	return 0
}

func cmdDecode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: xdao-b58uuid decode <base58>")
		return 2
	}
	text, err := b58uuid.DecodeToUUID(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "decode: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, text)
	return 0
}

func cmdGen(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var count int
	var asUUID bool
	fs.IntVar(&count, "count", 1, "Number of identifiers to generate")
	fs.BoolVar(&asUUID, "uuid", false, "Stamp RFC 4122 version-4 bits into the payload")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: xdao-b58uuid gen [--count <n>] [--uuid]")
		return 2
	}
	if count < 1 {
		fmt.Fprintln(errOut, "invalid --count: must be at least 1")
		return 2
	}

	for i := 0; i < count; i++ {
		var enc string
		var err error
		if asUUID {
			enc, err = b58uuid.GenerateUUID()
		} else {
			enc, err = b58uuid.Generate()
		}
		if err != nil {
			fmt.Fprintf(errOut, "gen: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, enc)
	}
	return 0
}
