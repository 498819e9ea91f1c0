package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Renderer turns an HTML document into PDF bytes
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// PaperSize in inches
type PaperSize struct {
	Width  float64
	Height float64
}

var (
	A4 = PaperSize{Width: 8.27, Height: 11.7}
	A5 = PaperSize{Width: 5.83, Height: 8.27}
)

// ChromeRenderer prints pages with a headless Chrome started per render
type ChromeRenderer struct {
	execPath string
	timeout  time.Duration
	paper    PaperSize
}

// NewChromeRenderer creates a renderer. An empty execPath lets chromedp find
// Chrome on PATH.
func NewChromeRenderer(execPath string, timeout time.Duration, paper PaperSize) *ChromeRenderer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromeRenderer{execPath: execPath, timeout: timeout, paper: paper}
}

func (r *ChromeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	opts := chromedp.DefaultExecAllocatorOptions[:]
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancel := context.WithTimeout(browserCtx, r.timeout)
	defer cancel()

	var pdfBuf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(r.paper.Width).
				WithPaperHeight(r.paper.Height).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf: render failed: %w", err)
	}
	return pdfBuf, nil
}
