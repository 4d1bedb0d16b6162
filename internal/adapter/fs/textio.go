package fs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"ngram/internal/port"
)

// maxLine bounds a single paragraph line; corpora often hold whole chapters
// on one line.
const maxLine = 16 * 1024 * 1024

// ParseParagraphs reads one paragraph per line. Lines are trimmed and blank
// lines are skipped. With lowercase set every paragraph is lowercased.
func ParseParagraphs(r io.Reader, lowercase bool) ([]string, error) {
	var paragraphs []string
	err := scanLines(r, func(line string) {
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		if lowercase {
			line = strings.ToLower(line)
		}
		paragraphs = append(paragraphs, line)
	})
	return paragraphs, err
}

// ReadParagraphs reads the paragraphs of the file at path.
func ReadParagraphs(path string, lowercase bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	paragraphs, err := ParseParagraphs(f, lowercase)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return paragraphs, nil
}

// WriteParagraphs writes one paragraph per line.
func WriteParagraphs(w io.Writer, paragraphs []string) error {
	return writeLines(w, paragraphs)
}

// ReadWordList reads one entry per line, trimming surrounding whitespace and
// skipping blank lines.
func ReadWordList(r io.Reader) ([]string, error) {
	return ParseParagraphs(r, false)
}

// WriteWordList writes one entry per line.
func WriteWordList(w io.Writer, words []string) error {
	return writeLines(w, words)
}

// ReadTSV reads tab-separated rows. Blank lines are skipped; trailing
// carriage returns are dropped.
func ReadTSV(r io.Reader) ([][]string, error) {
	var rows [][]string
	err := scanLines(r, func(line string) {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			return
		}
		rows = append(rows, strings.Split(line, "\t"))
	})
	return rows, err
}

// WriteTSV writes rows with fields joined by tabs. Fields must not contain
// tabs or newlines.
func WriteTSV(w io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(w)
	for i, row := range rows {
		for _, field := range row {
			if strings.ContainsAny(field, "\t\n") {
				return fmt.Errorf("row %d: field %q contains a tab or newline", i, field)
			}
		}
		if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func scanLines(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ParagraphReader reads paragraph files with a fixed lowercase setting.
type ParagraphReader struct {
	lowercase bool
}

func NewParagraphReader(lowercase bool) *ParagraphReader {
	return &ParagraphReader{lowercase: lowercase}
}

func (r *ParagraphReader) ReadParagraphs(path string) ([]string, error) {
	return ReadParagraphs(path, r.lowercase)
}

var _ port.ParagraphReader = (*ParagraphReader)(nil)
