// ctable.go — C source tables, the form in which the map tools link the
// palettes: an unsigned char array of packed R,G,B bytes and its byte size.
package generator

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/xob0t/GoSwatch/pkg/palette"
)

// bytesPerLine keeps four records per line of generated source.
const bytesPerLine = 4 * palette.RecordSize

var cIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func checkSymbol(sym string) error {
	if !cIdent.MatchString(sym) {
		return fmt.Errorf("invalid C symbol %q", sym)
	}
	return nil
}

// writeCSource emits the array definition and its _SIZE constant.
func writeCSource(w io.Writer, p palette.Palette, opts Options) error {
	sym := opts.symbol()
	if err := checkSymbol(sym); err != nil {
		return err
	}
	data := p.Bytes()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "/* Code generated by goswatch. DO NOT EDIT. */\n")
	fmt.Fprintf(bw, "/* %s: %d colors */\n\n", opts.Category, len(p))
	fmt.Fprintf(bw, "const unsigned char %s[] = {\n", sym)
	if len(data) == 0 {
		// C forbids empty initializers; _SIZE stays 0.
		fmt.Fprintf(bw, "\t0\n")
	}
	for i := 0; i < len(data); i += bytesPerLine {
		bw.WriteString("\t")
		for _, b := range data[i:min(i+bytesPerLine, len(data))] {
			fmt.Fprintf(bw, "0x%02x,", b)
		}
		bw.WriteString("\n")
	}
	fmt.Fprintf(bw, "};\n\n")
	fmt.Fprintf(bw, "const unsigned int %s_SIZE = %d;\n", sym, len(data))
	return bw.Flush()
}

// writeCHeader emits extern declarations matching writeCSource.
func writeCHeader(w io.Writer, _ palette.Palette, opts Options) error {
	sym := opts.symbol()
	if err := checkSymbol(sym); err != nil {
		return err
	}
	guard := sym + "_H"

	_, err := fmt.Fprintf(w, `/* Code generated by goswatch. DO NOT EDIT. */

#ifndef %[1]s
# define %[1]s

#ifdef __cplusplus
extern "C" {
#endif

/* All %[2]s color values, packed R,G,B. */
extern const unsigned char %[3]s[];
/* The size of %[3]s in bytes. */
extern const unsigned int  %[3]s_SIZE;

#ifdef __cplusplus
}
#endif

#endif
`, guard, opts.Category, sym)
	return err
}
