package shell

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/soradev/custom-cmd/internal/logging/events"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Encoding decodes raw shell output into text.
type Encoding struct {
	Name string
	enc  encoding.Encoding // nil means UTF-8
}

// UTF8 is the identity decoding used for UTF-8 consoles.
var UTF8 = Encoding{Name: "UTF-8"}

// Windows console code pages mapped by number.
var codePages = map[int]encoding.Encoding{
	437:  charmap.CodePage437,
	850:  charmap.CodePage850,
	852:  charmap.CodePage852,
	855:  charmap.CodePage855,
	858:  charmap.CodePage858,
	860:  charmap.CodePage860,
	862:  charmap.CodePage862,
	863:  charmap.CodePage863,
	865:  charmap.CodePage865,
	866:  charmap.CodePage866,
	874:  charmap.Windows874,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,
}

// Decode converts b to text, replacing invalid sequences with U+FFFD.
func (e Encoding) Decode(b []byte) string {
	if e.enc == nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	out, err := e.enc.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}

// LookupEncoding resolves a console encoding name such as "cp850",
// "UTF-8" or "ISO-8859-15".
func LookupEncoding(name string) (Encoding, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Encoding{}, fmt.Errorf("empty encoding name")
	}
	lower := strings.ToLower(trimmed)
	switch lower {
	case "utf-8", "utf8", "cp65001":
		return UTF8, nil
	}
	if strings.HasPrefix(lower, "cp") {
		n, err := strconv.Atoi(lower[2:])
		if err == nil {
			if enc, ok := codePages[n]; ok {
				return Encoding{Name: lower, enc: enc}, nil
			}
			return Encoding{}, fmt.Errorf("unsupported code page %d", n)
		}
	}
	enc, err := ianaindex.IANA.Encoding(trimmed)
	if err != nil || enc == nil {
		enc, err = ianaindex.MIME.Encoding(trimmed)
	}
	if err != nil {
		return Encoding{}, fmt.Errorf("lookup encoding %q: %w", trimmed, err)
	}
	if enc == nil {
		return Encoding{}, fmt.Errorf("encoding %q has no decoder", trimmed)
	}
	if canonical, cerr := ianaindex.IANA.Name(enc); cerr == nil && strings.EqualFold(canonical, "UTF-8") {
		return UTF8, nil
	}
	return Encoding{Name: trimmed, enc: enc}, nil
}

// DetectEncoding asks the platform for its console encoding once and falls
// back to the platform default when detection fails.
func DetectEncoding() Encoding {
	return detectWith(consoleEncodingName)
}

func detectWith(probe func() (string, error)) Encoding {
	name, err := probe()
	if err == nil {
		if enc, lerr := LookupEncoding(name); lerr == nil {
			events.Shell.Encoding(enc.Name, "detected")
			return enc
		}
	}
	enc, lerr := LookupEncoding(defaultEncodingName)
	if lerr != nil {
		enc = UTF8
	}
	events.Shell.Encoding(enc.Name, "default")
	return enc
}

// charsetFromLocale extracts the charset of a POSIX locale like
// "de_DE.ISO-8859-15@euro".
func charsetFromLocale(locale string) string {
	idx := strings.IndexByte(locale, '.')
	if idx < 0 {
		return ""
	}
	charset := locale[idx+1:]
	if at := strings.IndexByte(charset, '@'); at >= 0 {
		charset = charset[:at]
	}
	return charset
}

// codePageFromChcp parses "Active code page: 850" into "cp850".
func codePageFromChcp(output string) (string, error) {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return "", fmt.Errorf("empty chcp output")
	}
	parts := strings.Split(trimmed, ":")
	number := strings.TrimSpace(parts[len(parts)-1])
	number = strings.TrimRight(number, ".")
	if _, err := strconv.Atoi(number); err != nil {
		return "", fmt.Errorf("unexpected chcp output %q", trimmed)
	}
	return "cp" + number, nil
}
