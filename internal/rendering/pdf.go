package rendering

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// printTimeout bounds a single print run, browser startup included.
const printTimeout = 60 * time.Second

// paper size in inches, A4.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// PrintHTMLToPDF renders an HTML document in a headless Chromium and returns
// the printed PDF bytes. Assets are local files the document references by
// basename (the profile photo); they are copied next to the document before
// navigation. Requires Chrome/Chromium on the system, honoring CHROME_PATH.
func PrintHTMLToPDF(ctx context.Context, htmlDoc string, assets []string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, printTimeout)
	defer cancelTimeout()

	tmpDir, err := os.MkdirTemp("", "cvgen-print-")
	if err != nil {
		return nil, &BrowserError{Message: "creating scratch directory", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(htmlDoc), 0o644); err != nil {
		return nil, &BrowserError{Message: "writing document", Cause: err}
	}
	for _, asset := range assets {
		if err := copyFile(asset, filepath.Join(tmpDir, filepath.Base(asset))); err != nil {
			return nil, &BrowserError{Message: "staging asset " + asset, Cause: err}
		}
	}

	var pdfBuf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &BrowserError{Message: "printing to PDF", Cause: err}
	}
	return pdfBuf, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
