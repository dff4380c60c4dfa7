package pdfwriter

import (
	"fmt"
	"strings"

	"github.com/chinmay-sawant/legalcompose/internal/model"
	"github.com/chinmay-sawant/legalcompose/internal/pagenum"
)

// pageState is the per-page state machine from spec §4.7:
// Initial -> Page-Open -> Text-Object-Open -> Text-Object-Closed -> Page-Closed.
type pageState int

const (
	statePageOpen pageState = iota
	stateTextOpen
	stateTextClosed
)

// contentBuilder accumulates one page's content-stream operators and
// enforces BT/ET pairing and balanced q/Q stack discipline.
type contentBuilder struct {
	buf        strings.Builder
	state      pageState
	curFont    model.Font
	curSize    float64
	fontSet    bool
	qDepth     int
	fontsUsed  map[model.Font]bool
}

func newContentBuilder(fontsUsed map[model.Font]bool) *contentBuilder {
	return &contentBuilder{state: statePageOpen, fontsUsed: fontsUsed}
}

func (c *contentBuilder) beginText() {
	if c.state != stateTextOpen {
		c.buf.WriteString("BT\n")
		c.state = stateTextOpen
		c.fontSet = false
	}
}

func (c *contentBuilder) endText() {
	if c.state == stateTextOpen {
		c.buf.WriteString("ET\n")
		c.state = stateTextClosed
	}
}

// showText positions and draws a single text run at absolute PDF
// coordinates (bottom-left origin), setting font/size if either
// changed since the last run on this page.
func (c *contentBuilder) showText(font model.Font, size, x, y float64, text string) (encodingWarning bool) {
	c.beginText()
	c.fontsUsed[font] = true
	if !c.fontSet || font != c.curFont || size != c.curSize {
		fmt.Fprintf(&c.buf, "/%s %s Tf\n", resourceName(font), trimFloat(size))
		c.curFont = font
		c.curSize = size
		c.fontSet = true
	}
	fmt.Fprintf(&c.buf, "1 0 0 1 %s %s Tm\n", trimFloat(x), trimFloat(y))
	encoded, replaced := EncodeWinAnsi(text)
	fmt.Fprintf(&c.buf, "(%s) Tj\n", encoded)
	return replaced > 0
}

// drawLine draws a straight vector line within its own q/Q graphics
// state, per spec §4.7 ("signature lines open/close a graphics state
// around line drawing").
func (c *contentBuilder) drawLine(x1, y1, x2, y2, width float64) {
	c.endText()
	c.buf.WriteString("q\n")
	fmt.Fprintf(&c.buf, "%s w\n", trimFloat(width))
	fmt.Fprintf(&c.buf, "%s %s m\n", trimFloat(x1), trimFloat(y1))
	fmt.Fprintf(&c.buf, "%s %s l\n", trimFloat(x2), trimFloat(y2))
	c.buf.WriteString("S\n")
	c.buf.WriteString("Q\n")
}

// finish closes any open text object and returns the finished content
// stream bytes.
func (c *contentBuilder) finish() []byte {
	c.endText()
	return []byte(c.buf.String())
}

func resourceName(f model.Font) string {
	switch f {
	case model.FontTimesRoman:
		return "F1"
	case model.FontTimesBold:
		return "F2"
	case model.FontTimesItalic:
		return "F3"
	case model.FontTimesBoldItalic:
		return "F4"
	default:
		return "F1"
	}
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// pageNumberText renders the configured page-number string for a
// physical 1-based page number (spec §4.7: "formatted per the document
// type ... with optional prefix/suffix, 10 pt Times-Roman").
func pageNumberText(format model.PageNumberFormat, physicalPage int) string {
	return pagenum.Format(format, pagenum.DisplayNumber(format, physicalPage))
}
