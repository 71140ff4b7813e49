package cvpdf

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/goliatone/go-cvgen/cv"
)

const pdfScale = 1.0

var lengthPattern = regexp.MustCompile(`^\s*([0-9]+(?:\.[0-9]+)?)\s*([a-zA-Z]*)\s*$`)

var pageSizesInches = map[string]struct {
	width  float64
	height float64
}{
	"A3":     {width: 11.69, height: 16.54},
	"A4":     {width: 8.27, height: 11.69},
	"A5":     {width: 5.83, height: 8.27},
	"LETTER": {width: 8.5, height: 11},
	"LEGAL":  {width: 8.5, height: 14},
}

// ChromiumEngine renders assembled CV documents to PDF using a single
// persistent headless Chromium instance. The browser starts lazily on the
// first Generate call and is reused by every subsequent call; each call
// gets its own isolated tab context so concurrent renders never share
// state. After Close the engine re-initializes transparently on the next
// Generate.
type ChromiumEngine struct {
	BrowserPath string
	Headless    bool
	Args        []string
	Logger      cv.Logger

	mu            sync.Mutex
	started       bool
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// NewChromiumEngine creates an engine with headless defaults.
func NewChromiumEngine() *ChromiumEngine {
	return &ChromiumEngine{Headless: true, Logger: cv.NopLogger{}}
}

// Generate renders the document into PDF bytes. The tab context created
// for this call is destroyed on every exit path, including errors, so
// contexts never leak into the shared browser.
func (e *ChromiumEngine) Generate(ctx context.Context, doc cv.Document, opts cv.PageOptions) ([]byte, error) {
	if e == nil {
		return nil, cv.NewError(cv.KindInternal, "chromium engine is nil", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	opts = opts.Normalize()

	browserCtx, err := e.ensureBrowser()
	if err != nil {
		return nil, cv.NewError(cv.KindEngine, "chromium engine init failed", err)
	}

	tabCtx, cancelTab := chromedp.NewContext(browserCtx)
	defer cancelTab()

	execCtx, cancelReq := context.WithCancel(tabCtx)
	defer cancelReq()
	go func() {
		select {
		case <-ctx.Done():
			cancelReq()
		case <-execCtx.Done():
		}
	}()

	execCtx, cancelTimeout := context.WithTimeout(execCtx, opts.Timeout)
	defer cancelTimeout()

	params, err := buildPrintParams(opts)
	if err != nil {
		return nil, err
	}

	var pdf []byte
	actions := []chromedp.Action{}
	if opts.BlockExternalAssets {
		actions = append(actions,
			network.Enable(),
			network.SetBlockedURLs().WithURLPatterns(blockedURLPatterns(
				"http://*:*/*",
				"https://*:*/*",
			)),
		)
	}

	actions = append(actions,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if err := page.SetLifecycleEventsEnabled(true).Do(ctx); err != nil {
				return err
			}

			// The listener must be installed before the content is set
			// so a fast networkIdle event is not missed.
			idle := make(chan struct{}, 1)
			listenCtx, stopListening := context.WithCancel(ctx)
			defer stopListening()
			chromedp.ListenTarget(listenCtx, func(ev any) {
				lifecycle, ok := ev.(*page.EventLifecycleEvent)
				if !ok || lifecycle.Name != "networkIdle" {
					return
				}
				select {
				case idle <- struct{}{}:
				default:
				}
			})

			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			if err := page.SetDocumentContent(tree.Frame.ID, string(doc)).Do(ctx); err != nil {
				return err
			}

			// Embedded or remote assets must finish loading before print,
			// bounded by the request timeout on ctx.
			select {
			case <-idle:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = params.Do(ctx)
			return err
		}),
	)

	if err := chromedp.Run(execCtx, actions...); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			return nil, cv.NewError(cv.KindTimeout, "pdf render timed out", err)
		}
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return nil, cv.NewError(cv.KindInternal, "pdf render canceled", err)
		}
		return nil, cv.NewError(cv.KindEngine, "chromium pdf render failed", err)
	}
	return pdf, nil
}

// Close tears down the persistent browser. Safe to call repeatedly; the
// next Generate call starts a fresh instance.
func (e *ChromiumEngine) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closeLocked()
	return nil
}

func (e *ChromiumEngine) closeLocked() {
	if e.browserCancel != nil {
		e.browserCancel()
	}
	if e.allocCancel != nil {
		e.allocCancel()
	}
	e.started = false
	e.allocCtx = nil
	e.allocCancel = nil
	e.browserCtx = nil
	e.browserCancel = nil
}

// ensureBrowser starts the shared browser exactly once per lifecycle.
// Racing first callers serialize on the mutex and observe the single
// initialization; a sync.Once would prevent restart after Close. A dead
// browser context (the process crashed or was killed) is discarded and
// replaced the same way, so a crash costs one failed call at most.
func (e *ChromiumEngine) ensureBrowser() (context.Context, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		if e.browserCtx != nil && e.browserCtx.Err() == nil {
			return e.browserCtx, nil
		}
		if e.Logger != nil {
			e.Logger.Infof("chromium browser context lost, restarting")
		}
		e.closeLocked()
	}

	options := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if e.BrowserPath != "" {
		options = append(options, chromedp.ExecPath(e.BrowserPath))
	}
	options = append(options, chromedp.Flag("headless", e.Headless))
	options = append(options, allocatorOptionsFromArgs(e.Args)...)

	e.allocCtx, e.allocCancel = chromedp.NewExecAllocator(context.Background(), options...)
	e.browserCtx, e.browserCancel = chromedp.NewContext(e.allocCtx)
	if e.allocCtx == nil || e.browserCtx == nil {
		return nil, errors.New("chromium allocator unavailable")
	}
	e.started = true

	if e.Logger != nil {
		e.Logger.Debugf("chromium engine started (headless=%v)", e.Headless)
	}
	return e.browserCtx, nil
}

func buildPrintParams(opts cv.PageOptions) (*page.PrintToPDFParams, error) {
	params := page.PrintToPDF().
		WithScale(pdfScale).
		WithPrintBackground(true).
		WithDisplayHeaderFooter(false)

	size, ok := pageSizesInches[strings.ToUpper(opts.Format)]
	if !ok {
		return nil, cv.NewError(cv.KindValidation, fmt.Sprintf("unsupported page format: %s", opts.Format), nil)
	}
	params = params.WithPaperWidth(size.width).WithPaperHeight(size.height)

	top, err := parseLengthInches(opts.Margins.Top)
	if err != nil {
		return nil, err
	}
	right, err := parseLengthInches(opts.Margins.Right)
	if err != nil {
		return nil, err
	}
	bottom, err := parseLengthInches(opts.Margins.Bottom)
	if err != nil {
		return nil, err
	}
	left, err := parseLengthInches(opts.Margins.Left)
	if err != nil {
		return nil, err
	}

	return params.
		WithMarginTop(top).
		WithMarginRight(right).
		WithMarginBottom(bottom).
		WithMarginLeft(left), nil
}

func parseLengthInches(value string) (float64, error) {
	matches := lengthPattern.FindStringSubmatch(value)
	if len(matches) != 3 {
		return 0, cv.NewError(cv.KindValidation, fmt.Sprintf("invalid margin length: %s", value), nil)
	}

	raw := matches[1]
	unit := strings.ToLower(matches[2])
	if unit == "" {
		unit = "in"
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, cv.NewError(cv.KindValidation, fmt.Sprintf("invalid margin length: %s", value), err)
	}

	switch unit {
	case "in":
		return amount, nil
	case "cm":
		return amount / 2.54, nil
	case "mm":
		return amount / 25.4, nil
	case "pt":
		return amount / 72.0, nil
	case "px":
		return amount / 96.0, nil
	default:
		return 0, cv.NewError(cv.KindValidation, fmt.Sprintf("unsupported margin unit: %s", unit), nil)
	}
}

// blockedURLPatterns converts URLPattern strings into block rules for
// Network.setBlockedURLs.
func blockedURLPatterns(patterns ...string) []*network.BlockPattern {
	out := make([]*network.BlockPattern, 0, len(patterns))
	for _, pattern := range patterns {
		out = append(out, &network.BlockPattern{URLPattern: pattern, Block: true})
	}
	return out
}

func allocatorOptionsFromArgs(args []string) []chromedp.ExecAllocatorOption {
	options := make([]chromedp.ExecAllocatorOption, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		arg = strings.TrimPrefix(arg, "--")
		if arg == "" {
			continue
		}
		if name, value, ok := strings.Cut(arg, "="); ok {
			options = append(options, chromedp.Flag(name, value))
			continue
		}
		options = append(options, chromedp.Flag(arg, true))
	}
	return options
}
