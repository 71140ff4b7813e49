package cvpdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goliatone/go-cvgen/cv"
)

func TestParseLengthInches(t *testing.T) {
	tests := []struct {
		value   string
		want    float64
		wantErr bool
	}{
		{value: "1in", want: 1},
		{value: "2.54cm", want: 1},
		{value: "25.4mm", want: 1},
		{value: "72pt", want: 1},
		{value: "96px", want: 1},
		{value: "15mm", want: 15.0 / 25.4},
		{value: "0.5", want: 0.5},
		{value: " 10 mm ", want: 10.0 / 25.4},
		{value: "", wantErr: true},
		{value: "abc", wantErr: true},
		{value: "10furlong", wantErr: true},
		{value: "-5mm", wantErr: true},
	}

	for _, tc := range tests {
		got, err := parseLengthInches(tc.value)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseLengthInches(%q): expected error, got %f", tc.value, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseLengthInches(%q): %v", tc.value, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("parseLengthInches(%q) = %f, want %f", tc.value, got, tc.want)
		}
	}
}

func TestBuildPrintParams(t *testing.T) {
	opts := cv.PageOptions{
		Format:  "a4",
		Margins: cv.Margins{Top: "15mm", Right: "15mm", Bottom: "15mm", Left: "15mm"},
		Timeout: 30 * time.Second,
	}

	params, err := buildPrintParams(opts)
	if err != nil {
		t.Fatalf("buildPrintParams: %v", err)
	}
	if math.Abs(params.PaperWidth-8.27) > 1e-9 || math.Abs(params.PaperHeight-11.69) > 1e-9 {
		t.Fatalf("expected A4 paper, got %fx%f", params.PaperWidth, params.PaperHeight)
	}
	if !params.PrintBackground {
		t.Fatalf("expected background printing enabled")
	}
	if params.DisplayHeaderFooter {
		t.Fatalf("expected browser header/footer disabled")
	}
	if params.Scale != 1.0 {
		t.Fatalf("expected scale 1.0, got %f", params.Scale)
	}
	wantMargin := 15.0 / 25.4
	for name, got := range map[string]float64{
		"top":    params.MarginTop,
		"right":  params.MarginRight,
		"bottom": params.MarginBottom,
		"left":   params.MarginLeft,
	} {
		if math.Abs(got-wantMargin) > 1e-9 {
			t.Fatalf("margin %s = %f, want %f", name, got, wantMargin)
		}
	}
}

func TestBuildPrintParamsRejectsUnknownFormat(t *testing.T) {
	opts := cv.PageOptions{
		Format:  "Tabloid",
		Margins: cv.Margins{Top: "1in", Right: "1in", Bottom: "1in", Left: "1in"},
	}
	if _, err := buildPrintParams(opts); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestBlockedURLPatterns(t *testing.T) {
	patterns := blockedURLPatterns("http://*:*/*", "https://*:*/*")
	if len(patterns) != 2 {
		t.Fatalf("expected 2 patterns, got %d", len(patterns))
	}
	for i, want := range []string{"http://*:*/*", "https://*:*/*"} {
		if patterns[i].URLPattern != want {
			t.Fatalf("pattern %d = %q, want %q", i, patterns[i].URLPattern, want)
		}
		if !patterns[i].Block {
			t.Fatalf("pattern %d is not marked as blocking", i)
		}
	}
}

func TestEnsureBrowserRestartsAfterBrowserLoss(t *testing.T) {
	engine := NewChromiumEngine()
	defer engine.Close()

	dead, cancel := context.WithCancel(context.Background())
	cancel()
	engine.mu.Lock()
	engine.started = true
	engine.browserCtx = dead
	engine.mu.Unlock()

	ctx, err := engine.ensureBrowser()
	if err != nil {
		t.Fatalf("ensureBrowser: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatalf("expected a live browser context after restart, got %v", ctx.Err())
	}
	if ctx == dead {
		t.Fatalf("expected the dead context to be replaced")
	}
}

func TestAllocatorOptionsFromArgs(t *testing.T) {
	options := allocatorOptionsFromArgs([]string{
		"--no-sandbox",
		"disable-gpu",
		"--lang=en-US",
		"",
		"--",
	})
	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}
}

func chromeBinaryPath(t *testing.T) string {
	t.Helper()
	path := os.Getenv("CHROME_BIN")
	if path == "" {
		t.Skip("CHROME_BIN not set; skipping chromium smoke test")
	}
	return path
}

func TestChromiumGenerateSmoke(t *testing.T) {
	engine := NewChromiumEngine()
	engine.BrowserPath = chromeBinaryPath(t)
	defer engine.Close()

	doc := cv.Assemble("<h1>Smoke Test</h1><p>hello</p>", "h1 { color: navy; }")
	pdf, err := engine.Generate(context.Background(), doc, cv.PageOptions{}.Normalize())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected a PDF payload, got %d bytes", len(pdf))
	}
}

func TestChromiumRestartsAfterClose(t *testing.T) {
	engine := NewChromiumEngine()
	engine.BrowserPath = chromeBinaryPath(t)
	defer engine.Close()

	doc := cv.Assemble("<p>first</p>", "")
	if _, err := engine.Generate(context.Background(), doc, cv.PageOptions{}.Normalize()); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	if err := engine.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	doc = cv.Assemble("<p>second</p>", "")
	pdf, err := engine.Generate(context.Background(), doc, cv.PageOptions{}.Normalize())
	if err != nil {
		t.Fatalf("generate after close: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected a PDF after restart")
	}
}

// transparent 1x1 PNG.
var tinyPNG = func() []byte {
	payload, err := base64.StdEncoding.DecodeString(
		"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")
	if err != nil {
		panic(err)
	}
	return payload
}()

func TestChromiumGenerateWaitsForRemoteAssets(t *testing.T) {
	engine := NewChromiumEngine()
	engine.BrowserPath = chromeBinaryPath(t)
	defer engine.Close()

	var served int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		atomic.AddInt32(&served, 1)
		w.Header().Set("Content-Type", "image/png")
		w.Write(tinyPNG)
	}))
	defer srv.Close()

	doc := cv.Assemble(cv.Markup(`<h1>Jane</h1><img src="`+srv.URL+`/photo.png" alt="">`), "")
	pdf, err := engine.Generate(context.Background(), doc, cv.PageOptions{}.Normalize())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected a PDF payload")
	}
	if atomic.LoadInt32(&served) == 0 {
		t.Fatalf("expected the image to be fetched before printing")
	}
}

func TestChromiumGenerateTimeout(t *testing.T) {
	engine := NewChromiumEngine()
	engine.BrowserPath = chromeBinaryPath(t)
	defer engine.Close()

	opts := cv.PageOptions{}.Normalize()
	opts.Timeout = time.Nanosecond

	doc := cv.Assemble("<p>slow</p>", "")
	_, err := engine.Generate(context.Background(), doc, opts)
	if err == nil {
		t.Fatalf("expected timeout")
	}
	if kind := cv.KindFromError(err); kind != cv.KindTimeout {
		t.Fatalf("expected timeout kind, got %s", kind)
	}
}
