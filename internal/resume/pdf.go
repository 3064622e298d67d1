package resume

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFText joins each page's text runs with single spaces and ends
// every page with a newline. The engine panics on some malformed inputs; those
// are reported as corrupt documents like any other parse failure.
func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = newError(CorruptDocument, "pdf engine: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", newError(CorruptDocument, "failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			return "", newError(CorruptDocument, "page %d of %d is missing", i, numPages)
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", newError(CorruptDocument, "failed to read page %d: %w", i, err)
		}
		textBuilder.WriteString(strings.Join(textRuns(pageText), " "))
		textBuilder.WriteByte('\n')
	}
	return textBuilder.String(), nil
}

// textRuns splits the engine's page output into its non-blank runs.
func textRuns(pageText string) []string {
	var runs []string
	for _, line := range strings.Split(pageText, "\n") {
		if run := strings.TrimSpace(line); run != "" {
			runs = append(runs, run)
		}
	}
	return runs
}
