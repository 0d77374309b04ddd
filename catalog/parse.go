package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DataMarker is the sentinel line that starts the record section of an
// inventory file. Lines before it are preamble and ignored.
const DataMarker = "HCDataSetFile_data"

// minFields is the number of quoted fields a record needs.
const minFields = 7

// excludedPose marks alternate-pose images that never enter a catalog.
const excludedPose = "_brazos_arriba"

// maxLineLength caps a single inventory line. Longer lines are skipped.
const maxLineLength = 1 << 20

// Parse reads inventory records from r. Image paths are resolved against
// dataDir. Lines end at "\n", "\r\n" or a lone "\r". Malformed or
// over-long lines are skipped; only read errors are returned.
func Parse(r io.Reader, dataDir string, opts ...Option) ([]Article, error) {
	o := newOptions(opts)

	var (
		articles []Article
		inData   bool
		lineNo   int
		skipped  int
	)

	lr := newLineReader(decode(r))
	for {
		raw, long, err := lr.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: read inventory: %w", err)
		}
		lineNo++
		if long {
			skipped++
			o.logger.Warn("catalog: line too long", "line", lineNo, "limit", maxLineLength)
			continue
		}

		line := strings.TrimSpace(string(raw))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, DataMarker) {
			inData = true
			continue
		}
		if !inData {
			continue
		}

		a, ok := parseRecord(line, dataDir)
		if !ok {
			skipped++
			o.logger.Debug("catalog: skipped record", "line", lineNo)
			continue
		}
		if strings.Contains(a.Image, excludedPose) {
			continue
		}
		articles = append(articles, a)
	}

	if skipped > 0 {
		o.logger.Debug("catalog: malformed records ignored", "count", skipped)
	}
	return articles, nil
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decode strips a leading UTF-8 BOM and drops bytes that are not valid
// UTF-8. Input starting with a UTF-16 BOM is transcoded to UTF-8.
func decode(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(bomUTF8))
	switch {
	case bytes.HasPrefix(head, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
	case bytes.HasPrefix(head, bomUTF16LE), bytes.HasPrefix(head, bomUTF16BE):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	}
	return transform.NewReader(br, dropInvalid{})
}

// dropInvalid is a transform.Transformer that removes invalid UTF-8 bytes
// and keeps everything else, including an encoded U+FFFD.
type dropInvalid struct{ transform.NopResetter }

func (dropInvalid) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	return nDst, nSrc, nil
}

// lineReader splits a stream into lines without holding more than
// maxLineLength bytes of any one line.
type lineReader struct {
	br  *bufio.Reader
	buf []byte
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

// next returns the next line without its terminator. long reports that the
// line exceeded maxLineLength; its content is then truncated and should be
// discarded. The returned slice is valid until the next call.
func (lr *lineReader) next() (line []byte, long bool, err error) {
	lr.buf = lr.buf[:0]
	n := 0
	for {
		c, err := lr.br.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				return lr.buf, n > maxLineLength, nil
			}
			return nil, false, err
		}
		switch c {
		case '\n':
			return lr.buf, n > maxLineLength, nil
		case '\r':
			if next, err := lr.br.Peek(1); err == nil && next[0] == '\n' {
				_, _ = lr.br.ReadByte()
			}
			return lr.buf, n > maxLineLength, nil
		}
		n++
		if n <= maxLineLength {
			lr.buf = append(lr.buf, c)
		}
	}
}

// parseRecord splits a data line on double quotes and maps the non-blank
// fragments to an Article. Returns false for lines with too few fields.
func parseRecord(line, dataDir string) (Article, bool) {
	fields := make([]string, 0, 8)
	for _, p := range strings.Split(line, `"`) {
		if strings.TrimSpace(p) != "" {
			fields = append(fields, p)
		}
	}
	if len(fields) < minFields {
		return Article{}, false
	}

	x, errX := strconv.Atoi(strings.TrimSpace(fields[4]))
	y, errY := strconv.Atoi(strings.TrimSpace(fields[5]))
	if errX != nil || errY != nil {
		x, y = 0, 0
	}

	return Article{
		ID:       fields[0],
		Image:    fields[1],
		Category: fields[2],
		Layer:    fields[3],
		X:        x,
		Y:        y,
		Wearing:  fields[6],
		Path:     filepath.Join(dataDir, fields[1]),
	}, true
}
