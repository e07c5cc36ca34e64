package renderer

import "context"

// PDFRenderer turns a rendered HTML document into a PDF byte stream.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}
