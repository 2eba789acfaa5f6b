// Package extract isolates the JSON payload inside raw descriptor-emitter
// output. Emitters log startup noise before the document; the validator core
// only accepts pure JSON, so callers run their captured text through here
// first.
package extract

import (
	"fmt"
	"regexp"
)

// Everything up to the first '{' is noise; the payload runs through the
// last '}' in the text.
var payload = regexp.MustCompile(`(?s)^[^{]*(\{.*\})`)

// JSON returns the JSON object embedded in raw, stripping any leading
// non-JSON text. It fails when raw contains no object at all.
func JSON(raw string) (string, error) {
	m := payload.FindStringSubmatch(raw)
	if m == nil {
		return "", fmt.Errorf("no JSON object found in %d bytes of output", len(raw))
	}
	return m[1], nil
}
