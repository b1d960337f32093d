package parsers

import (
	"bytes"
	"encoding/json"
)

var (
	escapedSlash = []byte(`\/`)
	plainSlash   = []byte(`/`)
)

// DecodeEscaped unmarshals a Steam Community Market response body.
//
// Steam escapes forward slashes in the HTML fragments it embeds inside
// JSON strings ("results_html", listing descriptions, image URLs). The
// standard decoder handles a single level of escaping fine, but Steam
// sometimes double-escapes slashes inside those pre-rendered fragments,
// which leaves literal `\/` sequences in the decoded strings. Flattening
// them before decoding keeps every consumer of these bodies agreeing on
// what a URL looks like.
func DecodeEscaped(data []byte, v any) error {
	return json.Unmarshal(bytes.ReplaceAll(data, escapedSlash, plainSlash), v)
}
