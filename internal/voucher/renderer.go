package voucher

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"
)

// A4 paper, inches
const (
	paperWidth  = 8.27
	paperHeight = 11.69
	pageMargin  = 0.4
)

// Renderer turns a booking record into a PDF voucher on local storage.
type Renderer struct {
	config utils.VoucherConfig
	tmpl   *template.Template
	log    *zap.Logger
}

// NewRenderer creates the voucher storage directory if absent.
func NewRenderer(config utils.VoucherConfig, log *zap.Logger) (*Renderer, error) {
	if err := os.MkdirAll(config.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create voucher dir %s: %w", config.Dir, err)
	}

	return &Renderer{
		config: config,
		tmpl:   parseVoucherTemplate(),
		log:    log.With(zap.String("component", "voucher_renderer")),
	}, nil
}

// Render produces <dir>/<id>.pdf for the booking and returns its path.
// It returns only after the file has been flushed to storage.
func (r *Renderer) Render(ctx context.Context, booking *entity.Booking) (string, error) {
	html, err := r.voucherHTML(booking)
	if err != nil {
		return "", fmt.Errorf("execute voucher template: %w", err)
	}

	pdfBuf, err := r.renderPDF(ctx, html)
	if err != nil {
		r.log.Error("Voucher rendering failed",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return "", fmt.Errorf("render voucher %s: %w", booking.ID.String(), err)
	}

	path := filepath.Join(r.config.Dir, booking.VoucherFilename())
	if err := writeFileSynced(path, pdfBuf); err != nil {
		r.log.Error("Voucher write failed",
			zap.Error(err),
			zap.String("path", path),
		)
		return "", fmt.Errorf("write voucher %s: %w", path, err)
	}

	r.log.Info("Voucher rendered",
		zap.String("booking_id", booking.ID.String()),
		zap.String("path", path),
		zap.Int("bytes", len(pdfBuf)),
	)

	return path, nil
}

// renderPDF prints the HTML to PDF in a fresh headless Chrome instance.
func (r *Renderer) renderPDF(ctx context.Context, html string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "voucher-chrome-*")
	if err != nil {
		return nil, fmt.Errorf("create chrome user data dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	allocatorOptions := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserDataDir(tmpDir),
		// Force software rendering in minimal container environments.
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-gpu-compositing", true),
		chromedp.Flag("disable-features", "Vulkan,UseSkiaRenderer"),
		chromedp.Flag("use-gl", "swiftshader"),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.config.ChromePath != "" {
		allocatorOptions = append(allocatorOptions, chromedp.ExecPath(r.config.ChromePath))
	}
	if r.config.ChromeNoSandbox {
		allocatorOptions = append(allocatorOptions, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocatorOptions...)
	defer allocCancel()

	chromeCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := time.Duration(r.config.RenderTimeout) * time.Second
	chromeCtx, cancel = context.WithTimeout(chromeCtx, timeout)
	defer cancel()

	var pdfBuf []byte
	actions := []chromedp.Action{
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frame, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frame.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(pageMargin).
				WithMarginBottom(pageMargin).
				WithMarginLeft(pageMargin).
				WithMarginRight(pageMargin).
				Do(ctx)
			return err
		}),
	}

	if err := chromedp.Run(chromeCtx, actions...); err != nil {
		return nil, err
	}
	return pdfBuf, nil
}

// writeFileSynced flushes the file to disk before returning.
func writeFileSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
