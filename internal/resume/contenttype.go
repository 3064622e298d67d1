package resume

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Kind is the declared format of a document.
type Kind int

const (
	KindUnsupported Kind = iota
	KindPDF
	KindDOCX
	KindPlainText
)

const (
	MimePDF       = "application/pdf"
	MimeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC       = "application/msword"
	MimePlainText = "text/plain"
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindDOCX:
		return "docx"
	case KindPlainText:
		return "plain-text"
	default:
		return "unsupported"
	}
}

// ParseContentType maps a declared MIME type onto a Kind. Parameters such as
// charset are ignored. Legacy DOC shares the DOCX path.
func ParseContentType(contentType string) Kind {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}
	switch mediaType {
	case MimePDF:
		return KindPDF
	case MimeDOCX, MimeDOC:
		return KindDOCX
	case MimePlainText:
		return KindPlainText
	}
	return KindUnsupported
}

// SniffContentType guesses a MIME type from the leading bytes. It is meant for
// callers that have no declared type at all, never to second-guess one.
func SniffContentType(data []byte) string {
	return mimetype.Detect(data).String()
}
