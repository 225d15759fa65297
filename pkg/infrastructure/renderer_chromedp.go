package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 at 96 DPI; device scale factor 2 keeps text crisp in the raster output.
const (
	paperWidthIn   = 8.27
	paperHeightIn  = 11.69
	marginIn       = 0.5
	viewportWidth  = 794
	viewportHeight = 1123
	deviceScale    = 2.0
)

// launchStrategy selects how Chrome is started for a render.
type launchStrategy int

const (
	launchFull launchStrategy = iota
	launchServerless
)

type ChromedpRenderer struct {
	// ChromePath overrides the full-browser binary location (CHROME_PATH).
	ChromePath string
	// ServerlessChromePath is the serverless-optimized Chromium binary used
	// when running inside a function runtime.
	ServerlessChromePath string
	Timeout              time.Duration
	log                  *slog.Logger
}

func NewChromedpRenderer(chromePath, serverlessPath string, log *slog.Logger) *ChromedpRenderer {
	if log == nil {
		log = slog.Default()
	}
	return &ChromedpRenderer{
		ChromePath:           chromePath,
		ServerlessChromePath: serverlessPath,
		Timeout:              60 * time.Second,
		log:                  log,
	}
}

// pickStrategy chooses the launch strategy for the current environment. A
// serverless runtime without the optimized binary installed falls back to the
// full browser with a warning instead of failing.
func (r *ChromedpRenderer) pickStrategy() launchStrategy {
	if !inServerlessRuntime() {
		return launchFull
	}
	if r.ServerlessChromePath == "" {
		r.log.Warn("serverless runtime detected but no serverless chrome path configured, using full browser")
		return launchFull
	}
	if _, err := os.Stat(r.ServerlessChromePath); err != nil {
		r.log.Warn("serverless chrome binary not installed, falling back to full browser",
			"path", r.ServerlessChromePath, "err", err)
		return launchFull
	}
	return launchServerless
}

func inServerlessRuntime() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" || os.Getenv("FUNCTION_TARGET") != ""
}

func (r *ChromedpRenderer) allocatorOptions(strategy launchStrategy) []chromedp.ExecAllocatorOption {
	switch strategy {
	case launchServerless:
		// reduced flag set for single-shot rendering inside a function runtime
		return []chromedp.ExecAllocatorOption{
			chromedp.ExecPath(r.ServerlessChromePath),
			chromedp.Flag("headless", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("single-process", true),
			chromedp.Flag("no-zygote", true),
			chromedp.Flag("hide-scrollbars", true),
		}
	default:
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)
		if r.ChromePath != "" {
			opts = append(opts, chromedp.ExecPath(r.ChromePath))
		}
		return opts
	}
}

// RenderHTMLToPDF loads the composed HTML in a fresh headless browser, waits
// for the network to go idle (remote profile images), and prints the page to
// an A4 PDF. The browser process is torn down on every exit path via the
// deferred context cancels.
func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	strategy := r.pickStrategy()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.allocatorOptions(strategy)...)
	defer cancelAlloc()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(cctx, timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-render-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("write html: %w", err)
	}

	idle := make(chan struct{})
	var idleOnce bool
	chromedp.ListenTarget(runCtx, func(ev interface{}) {
		if e, ok := ev.(*page.EventLifecycleEvent); ok && e.Name == "networkIdle" && !idleOnce {
			idleOnce = true
			close(idle)
		}
	})

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.EmulateViewport(viewportWidth, viewportHeight, chromedp.EmulateScale(deviceScale)),
		chromedp.ActionFunc(func(ctx context.Context) error {
			return page.SetLifecycleEventsEnabled(true).Do(ctx)
		}),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// let outstanding resource loads settle, bounded so a dead image
			// URL cannot stall the render
			select {
			case <-idle:
				return nil
			case <-time.After(5 * time.Second):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				WithPreferCSSPageSize(false).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	if !strings.HasPrefix(string(pdfBuf), "%PDF") {
		return nil, fmt.Errorf("render pdf: invalid output (len=%d)", len(pdfBuf))
	}
	return pdfBuf, nil
}
