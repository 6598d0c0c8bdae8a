package dataset

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var bom = []byte("\ufeff")

// skipBOM drops a leading UTF-8 byte order mark.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		_, _ = br.Discard(len(bom))
	}
	return br
}

// normalizeKey trims and NFC-normalises an identifier or header.
func normalizeKey(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
