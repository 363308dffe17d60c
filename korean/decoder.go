// Package korean decodes CP949 text using golang.org/x/text.
package korean

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/krxlist"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Ensure Decoder implements krxlist.LineDecoder at compile time.
var _ krxlist.LineDecoder = (*Decoder)(nil)

// Decoder decodes CP949 (Unified Hangul Code) streams into lines.
// The x/text EUC-KR codec implements the CP949 superset.
type Decoder struct {
	enc encoding.Encoding
}

// NewDecoder creates a new CP949 Decoder.
func NewDecoder() *Decoder {
	return &Decoder{enc: korean.EUCKR}
}

// DecodeLines implements krxlist.LineDecoder. Each line keeps its "\n"
// terminator; "\r\n" is normalised to "\n". A byte sequence that is not
// valid CP949 fails the whole stream with EINVALID.
func (d *Decoder) DecodeLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(transform.NewReader(r, d.enc.NewDecoder()))

	var lines []string
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if line != "" {
			// CP949 has no mapping to U+FFFD, so the decoder only emits it
			// for invalid input.
			if strings.ContainsRune(line, utf8.RuneError) {
				return nil, krxlist.Errorf(krxlist.EINVALID, "invalid CP949 byte sequence on line %d", n)
			}
			if strings.HasSuffix(line, "\r\n") {
				line = line[:len(line)-2] + "\n"
			}
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		} else if err != nil {
			return nil, err
		}
	}
}
