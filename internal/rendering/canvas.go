package rendering

import (
	"fmt"
	"html"
	"math"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/lbsa71/cv-generator/internal/layout"
)

// avgCharWidthFactor approximates the average glyph width of a proportional
// font as a fraction of its point size. Wrapping estimates derived from it
// are deterministic, which matters more here than typographic precision:
// Chromium re-wraps the text anyway, the canvas only has to agree with
// itself about page breaks.
const avgCharWidthFactor = 0.5

// lineHeightFactor converts a font size into the vertical extent of one line.
const lineHeightFactor = 1.2

// PageCanvas implements layout.Canvas by accumulating absolutely positioned
// HTML elements inside fixed-size page containers. The resulting document is
// self-paginated, so printing it to PDF yields one PDF page per canvas page.
type PageCanvas struct {
	pages []*strings.Builder
}

// NewPageCanvas returns a canvas holding a single empty page.
func NewPageCanvas() *PageCanvas {
	c := &PageCanvas{}
	c.StartNewPage()
	return c
}

// PageCount reports how many pages have been started.
func (c *PageCanvas) PageCount() int {
	return len(c.pages)
}

func (c *PageCanvas) PageContentHeight() float64 {
	return layout.PageHeight - layout.PageMargin
}

func (c *PageCanvas) StartNewPage() {
	c.pages = append(c.pages, &strings.Builder{})
}

func (c *PageCanvas) current() *strings.Builder {
	return c.pages[len(c.pages)-1]
}

func (c *PageCanvas) DrawText(text string, x, y, width float64, style layout.TextStyle) float64 {
	lines := c.MeasureWrappedLines(text, width, style)
	height := float64(lines)*style.Size*lineHeightFactor + style.LineGap

	body := html.EscapeString(text)
	if style.Link != "" {
		body = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(style.Link), body)
	}

	fmt.Fprintf(c.current(),
		`<div style="position:absolute;left:%.2fpt;top:%.2fpt;width:%.2fpt;%s">%s</div>`+"\n",
		x, y, width, cssFor(style), body)

	return height
}

func (c *PageCanvas) DrawImage(ref string, x, y, width float64) float64 {
	// Images are laid out square; object-fit crops rather than distorts.
	fmt.Fprintf(c.current(),
		`<img src="%s" style="position:absolute;left:%.2fpt;top:%.2fpt;width:%.2fpt;height:%.2fpt;object-fit:cover;border-radius:4pt;" alt="">`+"\n",
		html.EscapeString(filepath.Base(ref)), x, y, width, width)
	return width
}

func (c *PageCanvas) MeasureWrappedLines(text string, width float64, style layout.TextStyle) int {
	charsPerLine := width / (style.Size * avgCharWidthFactor)
	if charsPerLine < 1 {
		charsPerLine = 1
	}
	lines := int(math.Ceil(float64(utf8.RuneCountInString(text)) / charsPerLine))
	if lines < 1 {
		lines = 1
	}
	return lines
}

// HTML assembles the accumulated pages into a complete printable document.
func (c *PageCanvas) HTML() string {
	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	fmt.Fprintf(&doc,
		"@page { size: A4; margin: 0; }\n"+
			"html, body { margin: 0; padding: 0; }\n"+
			".page { position: relative; width: %.2fpt; height: %.2fpt; overflow: hidden; page-break-after: always; }\n"+
			".page:last-child { page-break-after: auto; }\n"+
			"a { color: inherit; }\n",
		layout.PageWidth, layout.PageHeight)
	doc.WriteString("</style>\n</head>\n<body>\n")
	for _, page := range c.pages {
		doc.WriteString(`<div class="page">` + "\n")
		doc.WriteString(page.String())
		doc.WriteString("</div>\n")
	}
	doc.WriteString("</body>\n</html>\n")
	return doc.String()
}

func cssFor(style layout.TextStyle) string {
	var css strings.Builder
	font := style.Font
	if font == "" {
		font = "Helvetica"
	}
	fmt.Fprintf(&css, "font-family:%s,Arial,sans-serif;font-size:%.2fpt;line-height:%.2f;",
		font, style.Size, lineHeightFactor)
	if style.Bold {
		css.WriteString("font-weight:bold;")
	}
	if style.Color != "" {
		css.WriteString("color:" + style.Color + ";")
	}
	if style.Align != "" {
		css.WriteString("text-align:" + style.Align + ";")
	}
	if style.Underline {
		css.WriteString("text-decoration:underline;")
	}
	return css.String()
}
