// Package extract pulls a JSON document out of model output that may wrap
// it in a ```json fenced block.
package extract

import (
	"bytes"
	"encoding/json"
	"regexp"
)

// fencePattern matches the first ```json fenced block. The capture is the
// block's interior with surrounding whitespace trimmed.
var fencePattern = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")

// Raw returns the JSON document found in text.
//
// When text contains a non-empty ```json fenced block, only the block is
// considered: if it is not valid JSON the result is a failure, and the
// whole text is not tried. Otherwise the whole text must be valid JSON.
func Raw(text string) (json.RawMessage, bool) {
	if m := fencePattern.FindStringSubmatch(text); m != nil && m[1] != "" {
		return validate([]byte(m[1]))
	}
	return validate([]byte(text))
}

// JSON is Raw followed by decoding. Numbers decode as json.Number so that
// re-encoding does not alter them.
func JSON(text string) (any, bool) {
	raw, ok := Raw(text)
	if !ok {
		return nil, false
	}
	v, err := Decode(raw)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Decode decodes raw with json.Number for numbers.
func Decode(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func validate(b []byte) (json.RawMessage, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || !json.Valid(b) {
		return nil, false
	}
	return json.RawMessage(b), true
}
