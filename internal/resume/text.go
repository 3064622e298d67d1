package resume

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodePlainText decodes UTF-8, or UTF-16 when a byte order mark says so.
// Each invalid byte becomes U+FFFD; decoding never fails.
func decodePlainText(data []byte) string {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	// the UTF-8 and UTF-16 decoders replace bad input instead of erroring
	out, _, _ := transform.Bytes(decoder, data)
	return string(out)
}
