package runlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintfEchoesAndRecords(t *testing.T) {
	var out bytes.Buffer
	l := New(&out)
	l.Printf("Fitted Line: %s\n", "y = 2x")
	l.Add("a\n", "b\n")

	assert.Equal(t, "Fitted Line: y = 2x\na\nb\n", out.String())
	assert.Equal(t, []string{"Fitted Line: y = 2x\n", "a\n", "b\n"}, l.Lines())
	assert.Equal(t, out.String(), l.String())
}

func TestSilentLog(t *testing.T) {
	l := New(nil)
	l.Printf("kept\n")
	assert.Equal(t, "kept\n", l.String())
}

func TestHeader(t *testing.T) {
	l := New(nil)
	l.Header("scatter", []string{"a.txt", "b.txt"}, "rerun")
	lines := l.Lines()
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "sepplot scatter: ")
	assert.Equal(t, "Input: a.txt\n", lines[1])
	assert.Equal(t, "Runtime note: rerun\n", lines[3])
	assert.Equal(t, "\n", lines[4])
}

func TestWrite(t *testing.T) {
	l := New(nil)
	l.Printf("one\n")
	l.Printf("two\n")

	dir := filepath.Join(t.TempDir(), "output", "run")
	path, err := l.Write(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(b))
}
