// Package highlight renders source code into standalone HTML documents.
package highlight

import (
	"bytes"
	"errors"
	"fmt"
	"html"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

var (
	ErrUnknownLanguage = errors.New("highlight: unknown language")
	ErrUnknownStyle    = errors.New("highlight: unknown style")
)

// Options control a single rendering.
type Options struct {
	Language    string
	Style       string
	LineNumbers bool   // render a line-number table next to the code
	Title       string // shown as the page title and an <h2> heading when non-empty
}

const documentHead = `<!DOCTYPE html>
<html>
<head>
  <title>%s</title>
  <meta http-equiv="content-type" content="text/html; charset=utf-8">
  <style type="text/css">
%s  </style>
</head>
<body>
`

const documentTail = `</body>
</html>
`

// Render highlights code and wraps the fragment in a full HTML page with
// the style's CSS inlined.
func Render(code string, opts Options) (string, error) {
	lexer := lexerFor(opts.Language)
	if lexer == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, opts.Language)
	}
	style, ok := styles.Registry[opts.Style]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, opts.Style)
	}

	formatter := chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.WithLineNumbers(opts.LineNumbers),
		chromahtml.LineNumbersInTable(opts.LineNumbers),
		chromahtml.TabWidth(8),
	)

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("highlight: tokenise: %w", err)
	}

	var css, body bytes.Buffer
	if err := formatter.WriteCSS(&css, style); err != nil {
		return "", fmt.Errorf("highlight: write css: %w", err)
	}
	if err := formatter.Format(&body, style, iterator); err != nil {
		return "", fmt.Errorf("highlight: format: %w", err)
	}

	var doc bytes.Buffer
	title := html.EscapeString(opts.Title)
	fmt.Fprintf(&doc, documentHead, title, css.String())
	if opts.Title != "" {
		fmt.Fprintf(&doc, "<h2>%s</h2>\n\n", title)
	}
	doc.Write(body.Bytes())
	doc.WriteString("\n")
	doc.WriteString(documentTail)
	return doc.String(), nil
}
