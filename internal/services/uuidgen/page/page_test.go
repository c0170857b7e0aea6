package page

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/uuidgen/internal/identifier"
)

func TestRenderContainsWorkflowControls(t *testing.T) {
	t.Parallel()

	doc, err := Render(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	body := string(doc)
	if !strings.HasPrefix(body, "<!doctype html>") {
		t.Fatalf("document does not start with doctype: %q", body[:min(len(body), 40)])
	}
	for _, marker := range []string{
		`<title>UUID Generator</title>`,
		`<input type="number" id="uuidCount"`,
		`id="generate"`,
		`<table id="uuidTable">`,
		`<th>#</th>`,
		`<th>UUID</th>`,
		`data-template="` + identifier.Template + `"`,
		`data-max-batch="1000"`,
		`data-count-pattern="` + identifier.CountPattern + `"`,
		`data-confirm-prefix="UUID copied to clipboard: "`,
		`navigator.clipboard`,
		`function generateUUID()`,
		`</html>`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("document missing marker %q", marker)
		}
	}
}

func TestRenderStartsWithEmptyTable(t *testing.T) {
	t.Parallel()

	doc, err := Render(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(doc), "<tbody></tbody>") {
		t.Fatal("expected an empty table body")
	}
}

func TestRenderStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Render(ctx, DefaultConfig()); !errors.Is(err, context.Canceled) {
		t.Fatalf("Render() error = %v, want %v", err, context.Canceled)
	}
}

func TestInlineScriptIsNotEscaped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := inlineScript(`if (a < b && c) {}`).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got, want := buf.String(), `<script>if (a < b && c) {}</script>`; got != want {
		t.Fatalf("inlineScript = %q, want %q", got, want)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := Render(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := Render(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("expected identical documents across renders")
	}
}

func TestGeneratorEscapesAttributes(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Title = `<b>"x"</b>`
	cfg.ConfirmationPrefix = `copied "`
	var buf bytes.Buffer
	if err := Generator(cfg, "").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	body := buf.String()
	if strings.Contains(body, `<b>`) {
		t.Fatalf("title was not escaped: %q", body)
	}
	if !strings.Contains(body, `data-confirm-prefix="copied &#34;"`) {
		t.Fatalf("attribute was not escaped: %q", body)
	}
}

func TestLayoutRendersChildren(t *testing.T) {
	t.Parallel()

	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<main id="child"></main>`)
		return err
	})
	var buf bytes.Buffer
	if err := Layout("T", "body{}").Render(templ.WithChildren(context.Background(), child), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	body := buf.String()
	for _, marker := range []string{`<title>T</title>`, "body{}", `<main id="child"></main>`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("layout missing marker %q: %q", marker, body)
		}
	}
}
