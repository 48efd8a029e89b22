// Package markdown renders goal notes to HTML.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

type Parser struct {
	md goldmark.Markdown
}

// NewParser builds a GFM parser. Raw HTML in the source is omitted from the
// output because goldmark is not configured with WithUnsafe.
func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
		),
	)

	return &Parser{
		md: md,
	}
}

func (p *Parser) Parse(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := p.md.Convert(source, &buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var notes = NewParser()

// Notes renders goal notes with the shared parser.
func Notes(source string) (string, error) {
	html, err := notes.Parse([]byte(source))
	if err != nil {
		return "", err
	}
	return string(html), nil
}
