package spectrum

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is one named candidate in the decode order. Instrument
// exports arrive without any encoding declaration, so decoding is a
// greedy first-success scan over an ordered candidate list.
type Encoding struct {
	// Name identifies the candidate in config files and error messages.
	Name string

	// enc is the x/text decoder, or nil for plain UTF-8 validation.
	enc encoding.Encoding
}

// Decode attempts to decode data with this candidate. It reports false
// when the bytes are not valid in this encoding.
func (e Encoding) Decode(data []byte) (string, bool) {
	if e.enc == nil {
		if !utf8.Valid(data) {
			return "", false
		}
		return strings.TrimPrefix(string(data), "\ufeff"), true
	}

	out, err := e.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	// The x/text decoders substitute U+FFFD for undecodable bytes
	// instead of returning an error, so a replacement rune in the
	// output means the candidate did not fit.
	s := string(out)
	if strings.ContainsRune(s, utf8.RuneError) {
		return "", false
	}
	return strings.TrimPrefix(s, "\ufeff"), true
}

// DefaultEncodings returns the built-in decode order: GBK, UTF-8, Big5,
// then UTF-16. GBK leads because the exports this tool was built for
// come from instruments that write GBK preambles.
func DefaultEncodings() []Encoding {
	return []Encoding{
		{Name: "gbk", enc: simplifiedchinese.GBK},
		{Name: "utf-8"},
		{Name: "big5", enc: traditionalchinese.Big5},
		{Name: "utf-16", enc: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	}
}

// EncodingsByName resolves configured encoding names into candidates,
// preserving the given order. Unknown names are an error.
func EncodingsByName(names []string) ([]Encoding, error) {
	known := make(map[string]Encoding)
	for _, e := range DefaultEncodings() {
		known[e.Name] = e
	}
	// Common spelling variants.
	known["utf8"] = known["utf-8"]
	known["utf16"] = known["utf-16"]

	result := make([]Encoding, 0, len(names))
	for _, name := range names {
		e, ok := known[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown encoding %q (use gbk, utf-8, big5, or utf-16)", name)
		}
		result = append(result, e)
	}
	return result, nil
}
