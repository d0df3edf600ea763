package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnreadable is returned when no candidate decoder accepts the whole file.
var ErrUnreadable = errors.New("no candidate encoding could decode the file")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decoder turns raw file bytes into text, failing on any byte it cannot map.
type Decoder struct {
	Name   string
	Decode func(content []byte) (string, error)
}

// DefaultDecoders returns the fallback chain: UTF-8, then latin-1, then cp1252.
func DefaultDecoders() []Decoder {
	return []Decoder{
		{Name: "utf-8", Decode: decodeUTF8},
		{Name: "latin-1", Decode: charmapDecoder(charmap.ISO8859_1, nil)},
		// Python's cp1252 leaves these five bytes undefined.
		{Name: "cp1252", Decode: charmapDecoder(charmap.Windows1252, []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D})},
	}
}

func decodeUTF8(content []byte) (string, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		for i := 0; i < len(content); {
			r, size := utf8.DecodeRune(content[i:])
			if r == utf8.RuneError && size <= 1 {
				return "", fmt.Errorf("invalid utf-8 byte 0x%02x at offset %d", content[i], i)
			}
			i += size
		}
	}
	return string(content), nil
}

func charmapDecoder(cm *charmap.Charmap, undefined []byte) func([]byte) (string, error) {
	return func(content []byte) (string, error) {
		for i, b := range content {
			if bytes.IndexByte(undefined, b) >= 0 || cm.DecodeByte(b) == utf8.RuneError {
				return "", fmt.Errorf("byte 0x%02x at offset %d has no mapping in %s", b, i, cm)
			}
		}

		out, err := cm.NewDecoder().Bytes(content)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

// decode tries every decoder in order and returns the first full decode.
func decode(content []byte, decoders []Decoder) (string, string, error) {
	errs := make([]error, 0, len(decoders))
	for _, d := range decoders {
		text, err := d.Decode(content)
		if err == nil {
			return text, d.Name, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", d.Name, err))
	}

	return "", "", fmt.Errorf("%w: %w", ErrUnreadable, errors.Join(errs...))
}
