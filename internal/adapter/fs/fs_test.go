package fs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestParseParagraphs(t *testing.T) {
	input := "  Alice was tired.  \n\n\t\nShe SAT down.\r\n"

	got, err := ParseParagraphs(strings.NewReader(input), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice was tired.", "She SAT down."}, got)

	got, err = ParseParagraphs(strings.NewReader(input), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice was tired.", "she sat down."}, got)
}

func TestParseParagraphs_LongLine(t *testing.T) {
	long := strings.Repeat("word ", 40000)
	got, err := ParseParagraphs(strings.NewReader(long), false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, strings.TrimSpace(long), got[0])
}

func TestReadParagraphs_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.txt")
	writeFile(t, path, "One.\nTwo.\n")

	reader := NewParagraphReader(true)
	got, err := reader.ReadParagraphs(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one.", "two."}, got)

	_, err = ReadParagraphs(filepath.Join(t.TempDir(), "missing.txt"), false)
	assert.Error(t, err)
}

func TestWriteParagraphs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteParagraphs(&buf, []string{"a b", "c"}))
	assert.Equal(t, "a b\nc\n", buf.String())

	back, err := ParseParagraphs(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a b", "c"}, back)
}

func TestWordList(t *testing.T) {
	words, err := ReadWordList(strings.NewReader("alice\n  rabbit \n\nhatter\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "rabbit", "hatter"}, words)

	var buf bytes.Buffer
	require.NoError(t, WriteWordList(&buf, words))
	assert.Equal(t, "alice\nrabbit\nhatter\n", buf.String())
}

func TestTSV(t *testing.T) {
	rows, err := ReadTSV(strings.NewReader("a b\t-0.5\r\n\nc\t-1\textra\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a b", "-0.5"}, {"c", "-1", "extra"}}, rows)

	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, [][]string{{"x y", "1"}, {"z", "2"}}))
	assert.Equal(t, "x y\t1\nz\t2\n", buf.String())

	err = WriteTSV(&bytes.Buffer{}, [][]string{{"bad\tfield"}})
	assert.Error(t, err)
}

func TestWalker(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "b")
	writeFile(t, filepath.Join(root, "sub", "c.md"), "c")
	writeFile(t, filepath.Join(root, ".ngram", "d.txt"), "d")
	writeFile(t, filepath.Join(root, "skip", "e.txt"), "e")

	w := NewWalker([]string{"**/*.txt"}, []string{"**/.ngram/**", "skip/**"})
	files, err := w.Walk(root)
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(root, f.Path)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{"a.txt", "sub/b.txt"}, rel)
	assert.Equal(t, int64(1), files[0].Size)
}

func TestWalker_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.md")
	writeFile(t, path, "hello")

	files, err := NewWalker([]string{"**/*.txt"}, nil).Walk(path)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, path, files[0].Path)
}

func TestWalker_MissingRoot(t *testing.T) {
	_, err := NewWalker(nil, nil).Walk(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
