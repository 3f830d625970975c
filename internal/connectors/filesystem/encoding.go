package filesystem

import "unicode/utf8"

// decode resolves the byte content to a string. Valid UTF-8 passes
// through; anything else is treated as Latin-1, which maps every byte
// to a rune and therefore never fails.
func decode(data []byte) (content, encoding string) {
	if utf8.Valid(data) {
		return string(data), "utf-8"
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes), "latin-1"
}
