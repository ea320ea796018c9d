//go:build js && wasm

// GoSwatch WASM — In-browser table generation.
// Compiled with: GOOS=js GOARCH=wasm go build -o goswatch.wasm ./clients/wasm/
package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"syscall/js"

	"github.com/xob0t/GoSwatch/pkg/generator"
	"github.com/xob0t/GoSwatch/pkg/palette"
	"github.com/xob0t/GoSwatch/pkg/preset"
)

// Tables produced by goGeneratePalette, served one color at a time by
// goNextColor.
var (
	alloc     = palette.NewAllocator(nil)
	generated sync.Map // palette.Category -> struct{}
)

func main() {
	fmt.Println("GoSwatch WASM loaded")

	js.Global().Set("goGeneratePalette", js.FuncOf(generatePalette))
	js.Global().Set("goPalettePreview", js.FuncOf(palettePreview))
	js.Global().Set("goNextColor", js.FuncOf(nextColor))
	js.Global().Set("goSchema", js.FuncOf(schema))
	js.Global().Set("goReady", js.ValueOf(true))

	// Block forever (WASM must not exit).
	select {}
}

// loadPreset accepts a built-in name, or preset YAML/JSON text merged onto
// the default preset. There is no filesystem to read preset files from.
func loadPreset(spec string) (*preset.Preset, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		spec = preset.DefaultName
	}
	p, ok := preset.Builtin(spec)
	if !ok {
		file, err := preset.Parse([]byte(spec))
		if err != nil {
			return nil, err
		}
		base, _ := preset.Builtin(preset.DefaultName)
		p = preset.Merge(base, file)
	}
	if _, err := preset.Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// build generates one category's table from (category, preset) arguments.
func build(args []js.Value) (palette.Category, palette.Palette, error) {
	if len(args) < 1 {
		return 0, nil, fmt.Errorf("need category")
	}
	cat, err := palette.ParseCategory(args[0].String())
	if err != nil {
		return 0, nil, err
	}
	spec := ""
	if len(args) > 1 && args[1].Type() == js.TypeString {
		spec = args[1].String()
	}
	p, err := loadPreset(spec)
	if err != nil {
		return 0, nil, err
	}
	cfg, err := preset.Resolve(p, cat)
	if err != nil {
		return 0, nil, err
	}
	colors, err := palette.Generate(cfg)
	if err != nil {
		return 0, nil, err
	}
	return cat, colors, nil
}

// goGeneratePalette(category, preset) — return the table as a Uint8Array.
func generatePalette(this js.Value, args []js.Value) interface{} {
	cat, colors, err := build(args)
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	alloc.Set(cat, colors)
	generated.Store(cat, struct{}{})

	data := colors.Bytes()
	arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)
	return arr
}

// goPalettePreview(category, preset) — render and return base64 PNG.
func palettePreview(this js.Value, args []js.Value) interface{} {
	cat, colors, err := build(args)
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	var buf bytes.Buffer
	if err := generator.GenerateToWriter(&buf, ".png", colors, generator.Options{Category: cat}); err != nil {
		return js.ValueOf("error: preview: " + err.Error())
	}
	return js.ValueOf(base64.StdEncoding.EncodeToString(buf.Bytes()))
}

// goNextColor(category) — next unused "#rrggbb" from generated tables.
func nextColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: need category")
	}
	cat, err := palette.ParseCategory(args[0].String())
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	if _, ok := generated.Load(palette.Unknown); !ok {
		if _, ok := generated.Load(cat); !ok {
			return js.ValueOf("error: no " + cat.String() + " or unknowns table generated yet")
		}
	}
	c, _ := alloc.Next(cat)
	return js.ValueOf(c.Hex())
}

// goSchema(preset) — describe the effective configuration.
func schema(this js.Value, args []js.Value) interface{} {
	spec := ""
	if len(args) > 0 && args[0].Type() == js.TypeString {
		spec = args[0].String()
	}
	p, err := loadPreset(spec)
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}
	return js.ValueOf(preset.FormatSchema(p))
}
