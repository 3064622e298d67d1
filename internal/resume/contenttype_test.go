package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContentType(t *testing.T) {
	testCases := map[string]Kind{
		"application/pdf":           KindPDF,
		"Application/PDF":           KindPDF,
		MimeDOCX:                    KindDOCX,
		"application/msword":        KindDOCX,
		"text/plain":                KindPlainText,
		"text/plain; charset=utf-8": KindPlainText,
		"text/html":                 KindUnsupported,
		"image/png":                 KindUnsupported,
		"":                          KindUnsupported,
		"not a mime type":           KindUnsupported,
	}
	for contentType, want := range testCases {
		assert.Equal(t, want, ParseContentType(contentType), "content type %q", contentType)
	}
}

func TestSniffContentType(t *testing.T) {
	assert.Equal(t, KindPDF, ParseContentType(SniffContentType(buildPDF(t, []string{"Skills: Go"}))))
	assert.Equal(t, KindPlainText, ParseContentType(SniffContentType([]byte("Skills:\n- Go\n- Rust\n"))))
	assert.Equal(t, KindUnsupported, ParseContentType(SniffContentType([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pdf", KindPDF.String())
	assert.Equal(t, "docx", KindDOCX.String())
	assert.Equal(t, "plain-text", KindPlainText.String())
	assert.Equal(t, "unsupported", KindUnsupported.String())
}
