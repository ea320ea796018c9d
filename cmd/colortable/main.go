// colortable - Convert color tables into C sources for the map tools
//
// Usage:
//
//	colortable [--prefix HMDT_ALL_] [--out-dir <dir>] [--no-header] <file.bin>...
//	colortable --symbol <NAME> -o <file.c> <file.bin>
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xob0t/GoSwatch/internal/logger"
	"github.com/xob0t/GoSwatch/pkg/generator"
	"github.com/xob0t/GoSwatch/pkg/palette"
)

var log = logger.New("colortable")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// job is one .bin table and where its C files go.
type job struct {
	input  string
	source string
	header string
	opts   generator.Options
}

func run(args []string) error {
	fs := flag.NewFlagSet("colortable", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var (
		prefix   string
		symbol   string
		outDir   string
		output   string
		noHeader bool
		logLevel string
	)
	fs.StringVar(&prefix, "prefix", generator.SymbolPrefix, "Prefix of the generated array names")
	fs.StringVar(&symbol, "symbol", "", "Array name (single input only; overrides --prefix)")
	fs.StringVar(&outDir, "out-dir", "", "Output directory (default: next to each input)")
	fs.StringVar(&output, "o", "", "Output .c path (single input only)")
	fs.StringVar(&output, "output", "", "Output .c path (single input only)")
	fs.BoolVar(&noHeader, "no-header", false, "Skip writing the matching .h")
	fs.StringVar(&logLevel, "log-level", "info", "trace, debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	lvl, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger.SetGlobalLevel(lvl)

	inputs := fs.Args()
	if len(inputs) == 0 {
		printUsage(fs)
		return fmt.Errorf("at least one .bin file is required")
	}
	if (symbol != "" || output != "") && len(inputs) > 1 {
		return fmt.Errorf("--symbol and -o take a single input, got %d", len(inputs))
	}

	jobs := make([]job, 0, len(inputs))
	for _, in := range inputs {
		j, err := plan(in, prefix, symbol, outDir, output)
		if err != nil {
			return err
		}
		jobs = append(jobs, j)
	}

	for _, j := range jobs {
		if err := convert(j, !noHeader); err != nil {
			return err
		}
	}
	return nil
}

// plan derives the symbol and output paths for one input. The category is
// taken from the file name ("lands.bin" -> LANDS) unless symbol is given.
func plan(input, prefix, symbol, outDir, output string) (job, error) {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	j := job{input: input}

	cat, catErr := palette.ParseCategory(base)
	if catErr == nil {
		j.opts.Category = cat
	}
	switch {
	case symbol != "":
		j.opts.Symbol = symbol
	case catErr == nil:
		j.opts.Symbol = prefix + cat.Symbol()
	default:
		return job{}, fmt.Errorf("%s: cannot derive a symbol from %q, use --symbol", input, base)
	}

	j.source = output
	if j.source == "" {
		dir := outDir
		if dir == "" {
			dir = filepath.Dir(input)
		}
		j.source = filepath.Join(dir, base+".c")
	}
	if filepath.Ext(j.source) != ".c" {
		return job{}, fmt.Errorf("output %s must end in .c", j.source)
	}
	j.header = strings.TrimSuffix(j.source, ".c") + ".h"
	return j, nil
}

func convert(j job, header bool) error {
	p, err := palette.ReadFile(j.input)
	if err != nil {
		return err
	}

	if err := generator.Generate(j.source, p, j.opts); err != nil {
		return err
	}
	log.Info("%s -> %s (%s, %d bytes)", j.input, j.source, j.opts.Symbol, len(p)*palette.RecordSize)

	if header {
		if err := generator.Generate(j.header, p, j.opts); err != nil {
			return err
		}
		log.Debug("wrote %s", j.header)
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `colortable - Convert color tables into C sources

USAGE:
    colortable [flags] <file.bin>...

Each lands.bin, seas.bin, lakes.bin or unknowns.bin becomes a .c file holding
    const unsigned char HMDT_ALL_<CATEGORY>[];
    const unsigned int  HMDT_ALL_<CATEGORY>_SIZE;
and a matching .h with the extern declarations.

FLAGS:
`)
	fs.PrintDefaults()
}
