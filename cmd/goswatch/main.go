// GoSwatch — Shuffled HSV color tables for province maps.
//
// Usage:
//
//	goswatch [flags] lands|seas|lakes|unknowns
//	goswatch all [flags]
//	goswatch inspect [--strict] <file.bin>...
//	goswatch sample [--dir d] [-n N] <category>
//	goswatch schema [--preset p]
//	goswatch init [--out preset.yaml]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xob0t/GoSwatch/internal/logger"
	"github.com/xob0t/GoSwatch/pkg/generator"
	"github.com/xob0t/GoSwatch/pkg/palette"
	"github.com/xob0t/GoSwatch/pkg/preset"
)

var log = logger.New("goswatch")

// usageError marks a failure caused by how the tool was invoked.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func main() {
	err := dispatch(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", uerr)
		printUsage(os.Stderr)
		os.Exit(1)
	}
	fatal(err)
}

func dispatch(args []string, stdout io.Writer) error {
	if len(args) < 1 {
		return usageErrorf("missing category (lands, seas, lakes or unknowns)")
	}

	switch args[0] {
	case "all":
		return runAll(args[1:])
	case "inspect":
		return runInspect(args[1:], stdout)
	case "sample":
		return runSample(args[1:], stdout)
	case "schema":
		return runSchema(args[1:], stdout)
	case "init":
		return runInit(args[1:], stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		// Default: generate one category (flags may surround it).
		return run(args)
	}
}

// options holds the flags shared by the generating commands.
type options struct {
	preset   string
	dir      string
	seed     string
	shuffler string
	dedup    bool
	noDedup  bool
	hue      string
	sat      string
	val      string
	preview  string
	cTable   string
	logLevel string
	noColor  bool
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.preset, "preset", "", "Built-in preset (full, dim, stable) or preset file")
	fs.StringVar(&o.dir, "dir", "", "Output directory (default: current directory)")
	fs.StringVar(&o.seed, "seed", "", "Shuffle seed, or 'none' for a new order every run")
	fs.StringVar(&o.shuffler, "shuffler", "", "Shuffle source: pcg or mt19937")
	fs.BoolVar(&o.dedup, "dedup", false, "Drop repeated colors before shuffling")
	fs.BoolVar(&o.noDedup, "no-dedup", false, "Keep repeated colors")
	fs.StringVar(&o.hue, "hue", "", "Hue range lo:hi in degrees (single category only)")
	fs.StringVar(&o.sat, "sat", "", "Saturation range lo:hi in percent")
	fs.StringVar(&o.val, "val", "", "Value range lo:hi in percent")
	fs.StringVar(&o.preview, "preview", "", "Also write a preview image (.png or .bmp)")
	fs.StringVar(&o.cTable, "c-table", "", "Also write a C table (.c or .h)")
	fs.StringVar(&o.logLevel, "log-level", "", "trace, debug, info, warn or error")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored log output")
}

// newFlagSet returns a flag set whose errors are reported as usage errors.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseInterspersed parses flags that may appear before, between or after
// positional arguments, returning the positionals in order.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, usageErrorf("%v", err)
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

// setup applies logging settings and builds the effective preset.
func (o *options) setup(env *preset.Env, cats []palette.Category) (*preset.Preset, error) {
	level := o.logLevel
	if level == "" {
		level = env.LogLevel
	}
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return nil, usageErrorf("%v", err)
	}
	logger.SetGlobalLevel(lvl)
	if o.noColor || env.NoColor {
		logger.SetColored(false)
	}

	name := o.preset
	if name == "" {
		name = env.Preset
	}
	p, err := preset.Load(name)
	if err != nil {
		return nil, err
	}

	envOver, err := env.Overrides()
	if err != nil {
		return nil, err
	}
	flagOver, err := o.overrides(cats)
	if err != nil {
		return nil, err
	}
	p = preset.Merge(preset.Merge(p, envOver), flagOver)

	warnings, err := preset.Validate(p)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Warn("%s", w)
	}
	return p, nil
}

// overrides converts flags into a partial preset.
func (o *options) overrides(cats []palette.Category) (*preset.Preset, error) {
	over := &preset.Preset{Shuffler: o.shuffler}

	if o.dedup && o.noDedup {
		return nil, usageErrorf("--dedup and --no-dedup are mutually exclusive")
	}
	if o.dedup || o.noDedup {
		v := o.dedup
		over.Dedup = &v
	}
	if o.seed != "" {
		seed, err := preset.ParseSeed(o.seed)
		if err != nil {
			return nil, usageErrorf("--seed: %v", err)
		}
		over.Seed = seed
	}

	parse := func(flagName, value string) (*palette.Range, error) {
		if value == "" {
			return nil, nil
		}
		r, err := palette.ParseRange(value)
		if err != nil {
			return nil, usageErrorf("--%s: %v", flagName, err)
		}
		return &r, nil
	}
	var err error
	if over.Saturation, err = parse("sat", o.sat); err != nil {
		return nil, err
	}
	if over.Value, err = parse("val", o.val); err != nil {
		return nil, err
	}
	hue, err := parse("hue", o.hue)
	if err != nil {
		return nil, err
	}
	if hue != nil {
		if len(cats) != 1 {
			return nil, usageErrorf("--hue applies to a single category")
		}
		over.Categories = map[string]preset.CategorySpec{cats[0].String(): {Hue: hue}}
	}
	return over, nil
}

func (o *options) outputDir(env *preset.Env) string {
	switch {
	case o.dir != "":
		return o.dir
	case env.Dir != "":
		return env.Dir
	}
	return "."
}

// extraPath places a per-category marker in preview/C table paths when
// several categories are generated at once.
func extraPath(path string, cat palette.Category, multi bool) (string, error) {
	if !multi {
		return path, nil
	}
	if !strings.Contains(path, "{category}") {
		return "", usageErrorf("output path %q must contain {category} when generating all tables", path)
	}
	return strings.ReplaceAll(path, "{category}", cat.String()), nil
}

func run(args []string) error {
	fs := newFlagSet("goswatch")
	var o options
	o.register(fs)

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}
	if len(positional) == 0 {
		return usageErrorf("missing category (lands, seas, lakes or unknowns)")
	}
	if len(positional) > 1 {
		return usageErrorf("expected one category, got %q", positional)
	}
	cat, err := palette.ParseCategory(positional[0])
	if err != nil {
		return usageErrorf("%v", err)
	}

	return generate(&o, []palette.Category{cat})
}

func runAll(args []string) error {
	fs := newFlagSet("all")
	var o options
	o.register(fs)

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}
	if len(positional) > 0 {
		return usageErrorf("all takes no positional arguments, got %q", positional)
	}
	return generate(&o, palette.Categories)
}

func generate(o *options, cats []palette.Category) error {
	env, err := preset.LoadEnv()
	if err != nil {
		return err
	}
	p, err := o.setup(env, cats)
	if err != nil {
		return err
	}
	dir := o.outputDir(env)
	multi := len(cats) > 1
	for _, extra := range []string{o.preview, o.cTable} {
		if extra == "" {
			continue
		}
		if _, err := extraPath(extra, cats[0], multi); err != nil {
			return err
		}
	}

	log.Info("Using preset %q", p.Name)
	for _, cat := range cats {
		if err := generateOne(o, p, cat, dir, multi); err != nil {
			return err
		}
	}
	return nil
}

func generateOne(o *options, p *preset.Preset, cat palette.Category, dir string, multi bool) error {
	cfg, err := preset.Resolve(p, cat)
	if err != nil {
		return err
	}

	log.Info("Generating %s colors...", cat)
	colors, err := palette.Generate(cfg)
	if err != nil {
		return fmt.Errorf("generate %s: %w", cat, err)
	}

	opts := generator.Options{Category: cat}
	out := filepath.Join(dir, cat.Filename())
	if err := generator.Generate(out, colors, opts); err != nil {
		return err
	}
	log.Info("Wrote %s (%d colors, xxh64 %016x)", out, len(colors), palette.Digest(colors))

	for _, extra := range []string{o.preview, o.cTable} {
		if extra == "" {
			continue
		}
		path, err := extraPath(extra, cat, multi)
		if err != nil {
			return err
		}
		if err := generator.Generate(path, colors, opts); err != nil {
			return err
		}
		log.Info("Wrote %s", path)
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `GoSwatch — Shuffled HSV color tables for province maps

USAGE:
    goswatch [flags] lands|seas|lakes|unknowns
    goswatch all [flags]
    goswatch inspect [--strict] <file.bin>...
    goswatch sample [--dir <dir>] [-n <count>] <category>
    goswatch schema [--preset <name|path>]
    goswatch init [--out <path>]

GENERATE:
    --preset <name|path>   full, dim, stable (default) or a YAML/JSON preset
    --dir <dir>            Output directory for <category>.bin (default: .)
    --seed <n|none>        Fixed shuffle seed, or none for a new order
    --shuffler <name>      pcg or mt19937
    --dedup, --no-dedup    Drop or keep repeated colors
    --hue <lo:hi>          Hue range in degrees (single category only)
    --sat <lo:hi>          Saturation range in percent
    --val <lo:hi>          Value range in percent
    --preview <file>       Also write a .png/.bmp swatch preview
    --c-table <file>       Also write a .c/.h table
    --log-level <level>    trace, debug, info, warn, error
    --no-color             Plain log output

    With "all", --preview and --c-table paths must contain {category}.

ENVIRONMENT:
    GOSWATCH_PRESET, GOSWATCH_SEED, GOSWATCH_SHUFFLER, GOSWATCH_DEDUP,
    GOSWATCH_DIR, GOSWATCH_LOG_LEVEL, GOSWATCH_NO_COLOR

EXAMPLES:
    goswatch lands
    goswatch seas --preset dim --seed 42
    goswatch all --dir build --c-table build/{category}.c
    goswatch lakes --preview lakes.png
    goswatch inspect --strict build/*.bin
`)
}
