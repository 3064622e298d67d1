package resume

import (
	"github.com/rs/zerolog/log"
)

// Process runs one upload through extraction and section parsing. Nil
// extractor or parser fall back to the defaults.
func Process(ex *Extractor, p *Parser, data []byte, contentType string) ([]string, error) {
	if ex == nil {
		ex = NewExtractor(ExtractorOptions{})
	}
	if p == nil {
		p = defaultParser
	}

	kind := ParseContentType(contentType)
	if kind == KindUnsupported {
		return nil, newError(UnsupportedFormat, "content type %q", contentType)
	}

	text, err := ex.Extract(Document{Data: data, Type: kind})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("kind", kind.String()).Int("bytes", len(data)).Int("chars", len(text)).Msg("extracted text")

	skills, err := p.Parse(text)
	if err != nil {
		return nil, err
	}
	log.Debug().Strs("skills", skills).Msg("parsed skills")
	return skills, nil
}
