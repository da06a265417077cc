// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command asm51 assembles 8051 source into an Intel HEX file.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/asm51/assembler"
	"github.com/ezrec/asm51/config"
	"github.com/ezrec/asm51/hexfile"
	"github.com/ezrec/asm51/preprocess"
	"github.com/ezrec/asm51/problem"
	"github.com/ezrec/asm51/tokenizer"
	"github.com/ezrec/asm51/translate"
)

type options struct {
	output     string
	raw        bool
	recordSize int
	byteWrap   bool
	configFile string
	set        []string
	define     []string
	verbose    bool
}

func newCommand() (cmd *cobra.Command) {
	opts := &options{}

	cmd = &cobra.Command{
		Use:   "asm51 [flags] source.asm",
		Short: "8051 cross-assembler",
		Long: `asm51 assembles an 8051 source file into an Intel HEX file, or a flat
binary image of code memory.

Problems are printed to standard error. Any error suppresses the output file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("record-size") {
				opts.set = append(opts.set, fmt.Sprintf("%v=%v", config.SWITCH_RECORD_SIZE, opts.recordSize))
			}
			return run(opts, args[0], cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default <source>.hex, or <source>.bin with --raw)")
	flags.BoolVar(&opts.raw, "raw", false, "write a flat binary image instead of Intel HEX")
	flags.IntVar(&opts.recordSize, "record-size", config.DEFAULT_HEX_SIZE, "Intel HEX record payload size, 1..255")
	flags.BoolVar(&opts.byteWrap, "byte-wrap", false, "split instructions across Intel HEX records")
	flags.StringVar(&opts.configFile, "config", "", "TOML configuration file")
	flags.StringArrayVar(&opts.set, "set", nil, "set a switch, as name=value")
	flags.StringArrayVarP(&opts.define, "define", "D", nil, "predefine an equate, as NAME=VALUE")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")

	return
}

// configure builds the run configuration from the config file, then the
// --set switches.
func (opts *options) configure() (cfg *config.Config, err error) {
	cfg = config.New()

	if len(opts.configFile) != 0 {
		var inf *os.File
		inf, err = os.Open(opts.configFile)
		if err != nil {
			return
		}
		defer inf.Close()

		err = cfg.Load(inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", opts.configFile, err)
			return
		}
	}

	for _, item := range opts.set {
		name, value, ok := strings.Cut(item, "=")
		if !ok {
			err = fmt.Errorf("--set %v: expected name=value", item)
			return
		}
		err = cfg.Set(name, value)
		if err != nil {
			return
		}
	}

	return
}

// outputPath returns the output file name for a source.
func (opts *options) outputPath(source string) string {
	if len(opts.output) != 0 {
		return opts.output
	}

	ext := ".hex"
	if opts.raw {
		ext = ".bin"
	}
	return strings.TrimSuffix(source, filepath.Ext(source)) + ext
}

func run(opts *options, source string, stderr io.Writer) (err error) {
	cfg, err := opts.configure()
	if err != nil {
		return
	}

	// Message language is process-wide; the command sets it once per run.
	if len(cfg.Language) != 0 {
		translate.Use(cfg.Language)
	}

	pp := &preprocess.Preprocessor{Path: source, Verbose: opts.verbose}
	for _, item := range opts.define {
		name, value, ok := strings.Cut(item, "=")
		if !ok {
			value = "1"
		}
		pp.Predefine(name, value)
	}

	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	sink := &problem.Sink{Path: source}
	lines, err := pp.Process(inf, sink)
	if err != nil {
		return
	}

	tz := &tokenizer.Tokenizer{Path: source}
	tokens := tz.Tokenize(lines, sink)

	asm := &assembler.Assembler{Config: cfg, Verbose: opts.verbose}
	prog, err := asm.Assemble(tokens, sink)

	for _, p := range sink.Problems() {
		fmt.Fprintln(stderr, p.String())
	}

	if err != nil {
		return
	}

	err = sink.Err()
	if err != nil {
		return
	}

	if opts.verbose {
		for name := range prog.Symbols() {
			log.Printf("%-16v %04X", name, prog.Labels[name])
		}
	}

	output := opts.outputPath(source)
	ouf, err := os.Create(output)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	if opts.raw {
		return hexfile.WriteRaw(ouf, prog.Image())
	}

	mode := hexfile.MODE_INSTRUCTION_WRAP
	if opts.byteWrap {
		mode = hexfile.MODE_BYTE_WRAP
	}

	return prog.WriteHex(ouf, cfg.RecordSize, mode)
}

func main() {
	err := newCommand().Execute()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
