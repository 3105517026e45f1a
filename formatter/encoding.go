package formatter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// Encoding names a supported output text encoding.
type Encoding string

const (
	EncodingASCII   Encoding = "us-ascii"
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF16LE Encoding = "utf-16le"
	EncodingUTF16BE Encoding = "utf-16be"
	EncodingUTF32   Encoding = "utf-32"
	// EncodingUTF7 is recognized for configuration compatibility but
	// rejected at encode time: no maintained Go encoder exists and the
	// encoding is obsolete.
	EncodingUTF7 Encoding = "utf-7"
)

// ParseEncoding maps a user-supplied encoding name to an Encoding.
// The empty string means UTF-8.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "us-ascii", "ascii":
		return EncodingASCII, nil
	case "utf-16le", "utf16le":
		return EncodingUTF16LE, nil
	case "utf-16be", "utf16be":
		return EncodingUTF16BE, nil
	case "utf-32", "utf32":
		return EncodingUTF32, nil
	case "utf-7", "utf7":
		return EncodingUTF7, nil
	}
	return "", fmt.Errorf("unknown encoding %q", name)
}

// declared returns the encoding name written into the XML declaration.
// UTF-16 byte order is carried by the BOM, not the declaration.
func (e Encoding) declared() string {
	switch e {
	case EncodingASCII:
		return "US-ASCII"
	case EncodingUTF16LE, EncodingUTF16BE:
		return "UTF-16"
	case EncodingUTF32:
		return "UTF-32"
	}
	return "UTF-8"
}

// Encode prepends the XML declaration and converts the UTF-8 body to the
// requested text encoding. ASCII output keeps the byte stream 7-bit by
// escaping non-ASCII characters as numeric character references.
func Encode(body []byte, enc Encoding) ([]byte, error) {
	decl := "<?xml version=\"1.0\" encoding=\"" + enc.declared() + "\"?>\n"
	full := append([]byte(decl), body...)

	switch enc {
	case EncodingUTF8:
		return full, nil
	case EncodingASCII:
		// Corrupt input must fail loudly, not turn into U+FFFD references.
		if !utf8.Valid(full) {
			return nil, fmt.Errorf("document text is not valid UTF-8")
		}
		return escapeNonASCII(full), nil
	case EncodingUTF16LE:
		return transformBytes(full, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))
	case EncodingUTF16BE:
		return transformBytes(full, unicode.UTF16(unicode.BigEndian, unicode.UseBOM))
	case EncodingUTF32:
		return transformBytes(full, utf32.UTF32(utf32.BigEndian, utf32.UseBOM))
	case EncodingUTF7:
		return nil, fmt.Errorf("utf-7 output is not supported; use one of us-ascii, utf-8, utf-16le, utf-16be, utf-32")
	}
	return nil, fmt.Errorf("unknown encoding %q", string(enc))
}

func transformBytes(data []byte, enc encoding.Encoding) ([]byte, error) {
	out, _, err := transform.Bytes(enc.NewEncoder(), data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func escapeNonASCII(data []byte) []byte {
	var b strings.Builder
	b.Grow(len(data))
	for _, r := range string(data) {
		if r < 0x80 {
			b.WriteByte(byte(r))
		} else {
			fmt.Fprintf(&b, "&#x%X;", r)
		}
	}
	return []byte(b.String())
}
