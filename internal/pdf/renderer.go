package pdf

import (
	"context"
	"fmt"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// Renderer converts a rendered HTML page into a PDF byte stream.
type Renderer interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

type wkhtmlRenderer struct{}

// NewRenderer creates a Renderer backed by wkhtmltopdf. binaryPath
// overrides lookup of the wkhtmltopdf binary on PATH when non-empty.
// Output uses an A3 page with 10 mm margins on every side.
func NewRenderer(binaryPath string) Renderer {
	if binaryPath != "" {
		wkhtmltopdf.SetPath(binaryPath)
	}
	return &wkhtmlRenderer{}
}

func (r *wkhtmlRenderer) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA3)
	pdfg.MarginTop.Set(10)
	pdfg.MarginBottom.Set(10)
	pdfg.MarginLeft.Set(10)
	pdfg.MarginRight.Set(10)

	pdfg.AddPage(wkhtmltopdf.NewPageReader(strings.NewReader(html)))

	if err := pdfg.CreateContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return pdfg.Bytes(), nil
}
