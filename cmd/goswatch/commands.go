package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/xob0t/GoSwatch/pkg/palette"
	"github.com/xob0t/GoSwatch/pkg/preset"
)

// parseSub parses a subcommand's flags, turning -h into usage on stdout.
func parseSub(fs *flag.FlagSet, args []string, stdout io.Writer) ([]string, bool, error) {
	positional, err := parseInterspersed(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stdout)
		return nil, true, nil
	}
	return positional, false, err
}

func runInspect(args []string, stdout io.Writer) error {
	fs := newFlagSet("inspect")
	strict := fs.Bool("strict", false, "Fail when a table contains repeated colors")
	files, help, err := parseSub(fs, args, stdout)
	if help || err != nil {
		return err
	}
	if len(files) == 0 {
		return usageErrorf("inspect needs at least one .bin file")
	}

	var dupFiles []string
	for _, path := range files {
		p, err := palette.ReadFile(path)
		if err != nil {
			return err
		}
		s := palette.Stats(p)
		fmt.Fprintf(stdout, "%s\n", path)
		fmt.Fprintf(stdout, "  colors:     %d (%d unique, %d repeated)\n", s.Count, s.Unique, s.Duplicates)
		fmt.Fprintf(stdout, "  xxh64:      %016x\n", s.Digest)
		if s.Count > 0 {
			fmt.Fprintf(stdout, "  hue:        %.1f..%.1f\n", s.Hue.Min, s.Hue.Max)
			fmt.Fprintf(stdout, "  saturation: %.3f..%.3f\n", s.Saturation.Min, s.Saturation.Max)
			fmt.Fprintf(stdout, "  value:      %.3f..%.3f\n", s.Value.Min, s.Value.Max)
			fmt.Fprintf(stdout, "  first:      %s\n", p[0].Hex())
		}
		if s.Duplicates > 0 {
			dupFiles = append(dupFiles, path)
		}
	}

	if *strict && len(dupFiles) > 0 {
		return fmt.Errorf("repeated colors in %q", dupFiles)
	}
	return nil
}

func runSample(args []string, stdout io.Writer) error {
	fs := newFlagSet("sample")
	dir := fs.String("dir", "", "Directory holding the .bin tables (default: current directory)")
	n := fs.Int("n", 1, "Number of colors to draw")
	positional, help, err := parseSub(fs, args, stdout)
	if help || err != nil {
		return err
	}
	if len(positional) != 1 {
		return usageErrorf("sample needs exactly one category")
	}
	cat, err := palette.ParseCategory(positional[0])
	if err != nil {
		return usageErrorf("%v", err)
	}
	if *n < 1 {
		return usageErrorf("-n must be at least 1")
	}

	env, err := preset.LoadEnv()
	if err != nil {
		return err
	}
	o := options{dir: *dir}
	alloc, err := palette.LoadAllocator(o.outputDir(env))
	if err != nil {
		return err
	}

	for range *n {
		c, ok := alloc.Next(cat)
		if ok {
			fmt.Fprintln(stdout, c.Hex())
		} else {
			fmt.Fprintf(stdout, "%s (fallback)\n", c.Hex())
		}
	}
	return nil
}

func runSchema(args []string, stdout io.Writer) error {
	fs := newFlagSet("schema")
	name := fs.String("preset", "", "Built-in preset or preset file")
	positional, help, err := parseSub(fs, args, stdout)
	if help || err != nil {
		return err
	}
	if len(positional) > 0 {
		return usageErrorf("schema takes no positional arguments")
	}

	p, err := preset.Load(*name)
	if err != nil {
		return err
	}
	warnings, err := preset.Validate(p)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Warn("%s", w)
	}
	fmt.Fprint(stdout, preset.FormatSchema(p))
	fmt.Fprintf(stdout, "\nBuilt-in presets: %v\n", preset.BuiltinNames())
	return nil
}

func runInit(args []string, stdout io.Writer) error {
	fs := newFlagSet("init")
	out := fs.String("out", "preset.yaml", "Where to write the sample preset")
	force := fs.Bool("force", false, "Overwrite an existing file")
	positional, help, err := parseSub(fs, args, stdout)
	if help || err != nil {
		return err
	}
	if len(positional) > 0 {
		return usageErrorf("init takes no positional arguments")
	}

	if _, err := os.Stat(*out); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *out)
	}
	if err := os.WriteFile(*out, []byte(preset.ExampleYAML()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	fmt.Fprintf(stdout, "Wrote %s\n", *out)
	return nil
}
