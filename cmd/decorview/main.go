// Command decorview renders a line of sample text decorated with merged
// spans to the terminal, as a minimal consumer of the decor package.
package main

import (
	"fmt"
	"log"
	"os"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
	"golang.org/x/term"

	"github.com/dshills/decorset/internal/decor"
)

const sampleText = "func main() { fmt.Println(\"hello, 世界\") }"

func main() {
	if err := Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run renders sampleText with a fixed demo set of decorations. It falls
// back to a plain-text dump when stdout is not a terminal.
func Run() error {
	spans := demoSpans()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return renderPlain(sampleText, spans)
	}
	return renderTerminal(sampleText, spans)
}

func demoSpans() []decor.DecoratedRange {
	set := decor.Of(
		mustRange(0, 4, decor.RangeSpec{Attributes: map[string]string{"style": "bold"}}),
		mustRange(13, 26, decor.RangeSpec{Attributes: map[string]string{"style": "italic"}, TagName: "call"}),
		mustRange(27, 35, decor.RangeSpec{Attributes: map[string]string{"style": "string"}, Collapsed: true}),
	)
	return decor.DecoratedSpansInRange([]decor.DecorationSet{set}, 0, len(sampleText))
}

func mustRange(from, to int, spec decor.RangeSpec) decor.Decoration {
	d, err := decor.Range(from, to, spec)
	if err != nil {
		log.Fatalf("decorview: building demo decoration: %v", err)
	}
	return d
}

func renderPlain(text string, spans []decor.DecoratedRange) error {
	fmt.Println(text)
	for _, s := range spans {
		fmt.Printf("[%d, %d) style=%q tag=%q collapsed=%v\n", s.From, s.To, s.Attributes["style"], s.TagName, s.Collapsed)
	}
	return nil
}

func renderTerminal(text string, spans []decor.DecoratedRange) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("decorview: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("decorview: init screen: %w", err)
	}
	defer screen.Fini()

	screen.Clear()
	drawLine(screen, text, spans)
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// drawLine paints text one grapheme cluster at a time, advancing the
// column by each cluster's display width and applying the style of
// whichever decorated span covers its starting byte offset. Collapsed
// spans are drawn as a single blended placeholder cell instead of their
// covered text.
func drawLine(screen tcell.Screen, text string, spans []decor.DecoratedRange) {
	col := 0
	offset := 0
	remaining := text
	for len(remaining) > 0 {
		cluster, rest, width, _ := uniseg.FirstGraphemeClusterInString(remaining, -1)
		span := spanAt(spans, offset)

		if span != nil && span.Collapsed {
			screen.SetContent(col, 0, '…', nil, collapsedStyle())
			col++
			skip := span.To - offset
			offset += skip
			remaining = advancePast(text, offset)
			continue
		}

		r, _ := utf8.DecodeRuneInString(cluster)
		screen.SetContent(col, 0, r, nil, styleFor(span))
		col += width
		offset += len(cluster)
		remaining = rest
	}
}

func advancePast(text string, offset int) string {
	if offset >= len(text) {
		return ""
	}
	return text[offset:]
}

func spanAt(spans []decor.DecoratedRange, offset int) *decor.DecoratedRange {
	for i := range spans {
		if offset >= spans[i].From && offset < spans[i].To {
			return &spans[i]
		}
	}
	return nil
}

func styleFor(span *decor.DecoratedRange) tcell.Style {
	base := tcell.StyleDefault
	if span == nil {
		return base
	}
	switch span.Attributes["style"] {
	case "bold":
		return base.Bold(true)
	case "italic":
		return base.Italic(true)
	case "string":
		return base.Foreground(tcell.ColorGreen)
	default:
		return base
	}
}

// collapsedStyle blends the editor's placeholder background toward yellow
// so a collapsed span reads as elided content rather than plain text.
func collapsedStyle() tcell.Style {
	base, _ := colorful.Hex("#303030")
	tint, _ := colorful.Hex("#806000")
	blended := base.BlendLuv(tint, 0.5)
	r, g, b := blended.RGB255()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b))).Foreground(tcell.ColorWhite)
}
