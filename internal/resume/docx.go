package resume

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// extractDocxText opens the word package and flattens the main document part
// to raw paragraph text, one paragraph per line.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", newError(CorruptDocument, "failed to parse docx: %w", err)
	}
	defer doc.Close()

	text, err := paragraphText(doc.Editable().GetContent())
	if err != nil {
		return "", newError(CorruptDocument, "failed to read document xml: %w", err)
	}
	return text, nil
}

// paragraphText walks WordprocessingML and keeps only run text. Table cells
// are ordinary paragraphs here, and drawings contribute nothing unless they
// carry a text box. Compatibility fallbacks repeat the preferred content and
// are skipped.
func paragraphText(documentXML string) (string, error) {
	if strings.TrimSpace(documentXML) == "" {
		return "", errors.New("empty document part")
	}
	dec := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		b        strings.Builder
		inText   bool
		runDepth int
		skip     int
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if skip > 0 || t.Name.Local == "Fallback" {
				skip++
				continue
			}
			switch t.Name.Local {
			case "r":
				runDepth++
			case "t":
				inText = true
			case "tab":
				if runDepth > 0 {
					b.WriteByte('\t')
				}
			case "br", "cr":
				if runDepth > 0 {
					b.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if skip > 0 {
				skip--
				continue
			}
			switch t.Name.Local {
			case "r":
				runDepth--
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText && skip == 0 {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
