package worldbank

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"indicatorfetcher/internal/fetcher"
)

var utf8Decoder = unicode.UTF8BOM

// DecodeText turns a raw response body into JSON text.
// A leading byte order mark is dropped, invalid UTF-8 is rejected, and every
// single quote is replaced by a double quote. The provider has been seen to emit
// single-quoted JSON.
//
// TODO: only rewrite quotes that delimit strings; the blanket swap also turns
// apostrophes inside values (e.g. "Cote d'Ivoire") into quotes and breaks the JSON.
func DecodeText(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fetcher.NewDecodeError("response is not valid UTF-8", nil)
	}

	text, _, err := transform.Bytes(utf8Decoder.NewDecoder(), raw)
	if err != nil {
		return "", fetcher.NewDecodeError("failed to decode response text", err)
	}

	return strings.ReplaceAll(string(text), "'", `"`), nil
}
