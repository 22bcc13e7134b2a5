// Package main provides the bitbuffer command line interface.
//
// The CLI packs integer fields into a file, unpacks them again and dumps
// files as binary, using the same MSB-first bit order as the library.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tanagraspace/questbits/bitbuffer"
)

var errUsage = errors.New("invalid arguments")

func printVersion() {
	fmt.Printf("bitbuffer %s (Go)\n", bitbuffer.Version)
}

func printHelp(progName string) {
	fmt.Printf("Bit-level field packing (v%s)\n", bitbuffer.Version)
	fmt.Println("=================================")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s dump <file> [delimiter]\n", progName)
	fmt.Printf("  %s pack <output> <value:width>...\n", progName)
	fmt.Printf("  %s unpack <file> <width>...\n", progName)
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("Arguments:")
	fmt.Println("  value          Field value, decimal or 0x/0b/0o prefixed")
	fmt.Println("  width          Field width in bits (1-32)")
	fmt.Println("  delimiter      Printed after every byte (default \" \")")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  %s pack frame.bin 0b1100:4 42:6 1:1 0x55:8\n", progName)
	fmt.Printf("  %s unpack frame.bin 4 6 1 8\n", progName)
	fmt.Printf("  %s dump frame.bin \"|\"\n", progName)
	fmt.Println()
}

// field is one integer field of a packed frame.
type field struct {
	value uint32
	width uint8
}

// parseWidth parses a field width in bits.
func parseWidth(s string) (uint8, error) {
	width, err := strconv.ParseUint(s, 10, 8)
	if err != nil || width == 0 || width > bitbuffer.MaxFieldBits {
		return 0, fmt.Errorf("width %q must be 1-%d: %w", s, bitbuffer.MaxFieldBits, errUsage)
	}
	return uint8(width), nil
}

// parseField parses a "value:width" argument.
func parseField(s string) (field, error) {
	valueArg, widthArg, ok := strings.Cut(s, ":")
	if !ok {
		return field{}, fmt.Errorf("field %q is not value:width: %w", s, errUsage)
	}

	width, err := parseWidth(widthArg)
	if err != nil {
		return field{}, err
	}

	value, err := strconv.ParseUint(valueArg, 0, int(width))
	if err != nil {
		return field{}, fmt.Errorf("value %q does not fit in %d bits: %w", valueArg, width, errUsage)
	}

	return field{value: uint32(value), width: width}, nil
}

// packFields writes fields into a buffer just large enough to hold them.
func packFields(fields []field) ([]byte, error) {
	total := 0
	for _, f := range fields {
		total += int(f.width)
	}

	bw := bitbuffer.NewBitWriter(make([]byte, (total+7)/8))
	for i, f := range fields {
		if !bw.WriteBits(f.value, f.width) {
			return nil, fmt.Errorf("field %d does not fit: %d bits remaining", i, bw.BitsRemaining())
		}
	}

	return bw.Bytes(), nil
}

// unpackFields reads one value per width from data. It stops at the
// first field that runs past the end of data.
func unpackFields(data []byte, widths []uint8) ([]uint32, error) {
	br := bitbuffer.NewBitReader(data)

	values := make([]uint32, 0, len(widths))
	for i, width := range widths {
		if br.BitsRemaining() < int(width) {
			return values, fmt.Errorf("field %d needs %d bits, %d remaining", i, width, br.BitsRemaining())
		}
		values = append(values, br.ReadBits(width))
	}

	return values, nil
}

func doDump(out io.Writer, inputPath, delimiter string) int {
	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot open input file: %s\n", inputPath)
		return 1
	}

	if err := bitbuffer.PrintBinary(out, inputData, len(inputData), delimiter); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func doPack(outputPath string, args []string) int {
	fields := make([]field, 0, len(args))
	for _, arg := range args {
		f, err := parseField(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fields = append(fields, f)
	}

	outputData, err := packFields(fields)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Packing failed: %v\n", err)
		return 1
	}

	err = os.WriteFile(outputPath, outputData, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot write output file: %s\n", outputPath)
		return 1
	}

	fmt.Printf("Output:      %s (%d bytes, %d fields)\n", outputPath, len(outputData), len(fields))
	return 0
}

func doUnpack(out io.Writer, inputPath string, args []string) int {
	widths := make([]uint8, 0, len(args))
	for _, arg := range args {
		width, err := parseWidth(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		widths = append(widths, width)
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot open input file: %s\n", inputPath)
		return 1
	}

	values, err := unpackFields(inputData, widths)
	for _, v := range values {
		fmt.Fprintln(out, v)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func main() {
	args := os.Args
	progName := args[0]

	// Check for help flag
	if len(args) < 2 || args[1] == "-h" || args[1] == "--help" {
		printHelp(progName)
		if len(args) < 2 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Check for version flag
	if args[1] == "-v" || args[1] == "--version" {
		printVersion()
		os.Exit(0)
	}

	switch args[1] {
	case "dump":
		if len(args) != 3 && len(args) != 4 {
			fmt.Fprintf(os.Stderr, "Usage: %s dump <file> [delimiter]\n", progName)
			os.Exit(1)
		}
		delimiter := " "
		if len(args) == 4 {
			delimiter = args[3]
		}
		os.Exit(doDump(os.Stdout, args[2], delimiter))

	case "pack":
		if len(args) < 4 {
			fmt.Fprintf(os.Stderr, "Usage: %s pack <output> <value:width>...\n", progName)
			os.Exit(1)
		}
		os.Exit(doPack(args[2], args[3:]))

	case "unpack":
		if len(args) < 4 {
			fmt.Fprintf(os.Stderr, "Usage: %s unpack <file> <width>...\n", progName)
			os.Exit(1)
		}
		os.Exit(doUnpack(os.Stdout, args[2], args[3:]))

	default:
		fmt.Fprintf(os.Stderr, "Error: Unknown command: %s\n", args[1])
		os.Exit(1)
	}
}
