package resume

import (
	"sync"

	"github.com/ledongthuc/pdf"
)

// Document is a caller-owned buffer plus its declared format.
type Document struct {
	Data []byte
	Type Kind
}

// ExtractorOptions configures the decoding engines.
type ExtractorOptions struct {
	// PDFDebug turns on the PDF engine's own diagnostic output.
	PDFDebug bool
}

// Extractor linearizes documents into plain text. It keeps no per-document
// state, so one Extractor may serve concurrent calls.
type Extractor struct {
	opts ExtractorOptions
	once sync.Once
}

// pdfEngine guards the process-wide PDF engine switch; the first Init wins.
var pdfEngine sync.Once

func NewExtractor(opts ExtractorOptions) *Extractor {
	return &Extractor{opts: opts}
}

// Init configures the decoding engines. It is safe to call repeatedly and is
// invoked by Extract before first use.
func (e *Extractor) Init() {
	e.once.Do(func() {
		pdfEngine.Do(func() {
			pdf.DebugOn = e.opts.PDFDebug
		})
	})
}

// Extract returns the document's textual content in document order.
func (e *Extractor) Extract(doc Document) (string, error) {
	e.Init()
	switch doc.Type {
	case KindPDF:
		return extractPDFText(doc.Data)
	case KindDOCX:
		return extractDocxText(doc.Data)
	case KindPlainText:
		return decodePlainText(doc.Data), nil
	case KindUnsupported:
		return "", &Error{Kind: UnsupportedFormat}
	}
	return "", newError(UnsupportedFormat, "unknown document kind %d", int(doc.Type))
}
