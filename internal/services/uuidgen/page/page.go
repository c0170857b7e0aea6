// Package page renders the single HTML document the service delivers.
//
// The document is self-contained: the stylesheet and script from the static
// package are inlined, and the values the script shares with the identifier
// package (layout template, batch cap, count pattern, message prefixes) are
// passed as data attributes so both sides stay in agreement.
package page

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/a-h/templ"
	"github.com/louisbranch/uuidgen/internal/identifier"
	"github.com/louisbranch/uuidgen/internal/services/uuidgen/static"
)

const (
	styleAsset  = "uuidgen.css"
	scriptAsset = "uuidgen.js"
)

// Config holds the values baked into the document.
type Config struct {
	Title              string
	Template           string
	MaxBatch           int
	CountPattern       string
	ConfirmationPrefix string
	DenialPrefix       string
}

// DefaultConfig returns the document settings derived from the identifier package.
func DefaultConfig() Config {
	return Config{
		Title:              "UUID Generator",
		Template:           identifier.Template,
		MaxBatch:           identifier.MaxBatch,
		CountPattern:       identifier.CountPattern,
		ConfirmationPrefix: identifier.ConfirmationPrefix,
		DenialPrefix:       identifier.DenialPrefix,
	}
}

// Render builds the complete document once. Callers keep the returned bytes
// and serve them unchanged.
func Render(ctx context.Context, cfg Config) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	style, err := fs.ReadFile(static.FS, styleAsset)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", styleAsset, err)
	}
	script, err := fs.ReadFile(static.FS, scriptAsset)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", scriptAsset, err)
	}

	var buf bytes.Buffer
	content := Generator(cfg, string(script))
	if err := Layout(cfg.Title, string(style)).Render(templ.WithChildren(ctx, content), &buf); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

// inlineStyle and inlineScript write embedded assets verbatim; templ would
// otherwise treat element bodies as escaped text.
func inlineStyle(css string) templ.Component {
	return rawElement("style", css)
}

func inlineScript(js string) templ.Component {
	return rawElement("script", js)
}

func rawElement(tag, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag+">"); err != nil {
			return err
		}
		if err := templ.Raw(body).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}
