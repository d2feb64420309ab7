// Command disasm is a batch AArch64 disassembler — SPEC_FULL.md §4.13.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/lookbusy1344/aarch64-disasm/config"
	"github.com/lookbusy1344/aarch64-disasm/decoder"
	"github.com/lookbusy1344/aarch64-disasm/formatter"
)

func main() {
	var (
		wordFlag   = flag.String("word", "", "Disassemble a single 32-bit word (hex, e.g. 0xD65F03C0) instead of reading a file")
		addrFlag   = flag.Uint64("address", 0, "Base address of the first instruction")
		configPath = flag.String("config", "", "Path to a TOML config file (default: platform config path)")
	)
	flag.Parse()

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadConfig(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	address := *addrFlag
	if address == 0 {
		address = cfg.Decode.StartAddress
	}

	if *wordFlag != "" {
		var word uint32
		if _, err := fmt.Sscanf(*wordFlag, "0x%x", &word); err != nil {
			if _, err := fmt.Sscanf(*wordFlag, "%d", &word); err != nil {
				fmt.Fprintf(os.Stderr, "Invalid -word value: %s\n", *wordFlag)
				os.Exit(1)
			}
		}
		printLine(cfg, address, word)
		return
	}

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	path := flag.Arg(0)
	data, err := os.ReadFile(path) // #nosec G304 -- user-specified input file
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	for off := 0; off+4 <= len(data); off += 4 {
		word := binary.LittleEndian.Uint32(data[off:])
		pc := address + uint64(off)
		ok := printLine(cfg, pc, word)
		if !ok && cfg.Decode.StopOnUnknown {
			break
		}
	}
}

// printLine decodes and prints one instruction, returning whether decode
// succeeded.
func printLine(cfg *config.Config, address uint64, word uint32) bool {
	inst, ok := decoder.Decode(word, address)

	if cfg.Display.ShowAddress {
		fmt.Printf("%08x:  ", address)
	}
	if cfg.Display.ShowRawBytes {
		fmt.Printf("%08x  ", word)
	}
	fmt.Println(formatter.Format(inst))

	return ok
}

func printHelp() {
	fmt.Print(`disasm - AArch64 instruction disassembler

Usage: disasm [options] <binary-file>
       disasm -word 0xD65F03C0

Options:
  -word HEX      Disassemble a single word instead of reading a file
  -address N     Base address of the first instruction (hex or decimal)
  -config PATH   Path to a TOML config file

Examples:
  disasm program.bin
  disasm -address 0x400000 program.bin
  disasm -word 0x14000010 -address 0x1000
`)
}
