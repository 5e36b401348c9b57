package ingest

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// textDecoder is one strategy of the ordered decoding chain. Strategies are
// tried in declaration order; the first success wins and no further validation
// of the decoded content happens.
type textDecoder struct {
	name   string
	decode func([]byte) (string, bool)
}

var textDecoders = []textDecoder{
	{
		name: "utf-8",
		decode: func(b []byte) (string, bool) {
			if !utf8.Valid(b) {
				return "", false
			}
			return string(b), true
		},
	},
	{
		// ISO-8859-1 is a total byte-to-rune mapping, so this strategy also
		// absorbs the latin-1 alias the legacy exports advertise.
		name: "iso-8859-1",
		decode: func(b []byte) (string, bool) {
			out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
			if err != nil {
				return "", false
			}
			return string(out), true
		},
	},
}

// DecodeText decodes a raw upload of unknown encoding into a text buffer.
// It returns the decoded text and the name of the strategy that succeeded.
func DecodeText(data []byte) (string, string, error) {
	for _, d := range textDecoders {
		if text, ok := d.decode(data); ok {
			return text, d.name, nil
		}
	}
	return "", "", fmt.Errorf("no decoder accepted the file content")
}
