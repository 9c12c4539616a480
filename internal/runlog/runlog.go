// Package runlog keeps the human readable record of one run: what was read,
// what was fitted and where the figure went. Every line is echoed to the
// console as it is added and the whole record can be written next to the
// figure as log.txt.
package runlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileName is the name of the written log.
const FileName = "log.txt"

type Log struct {
	lines []string
	out   io.Writer
}

// New returns a log echoing to out. A nil out keeps the log silent.
func New(out io.Writer) *Log {
	return &Log{out: out}
}

// Header opens the record with the command, its inputs and the time.
func (l *Log) Header(command string, inputs []string, note string) {
	l.Printf("sepplot %s: %s\n", command, time.Now().Format("2006-Jan-02 15:04:05"))
	for _, in := range inputs {
		l.Printf("Input: %s\n", in)
	}
	if note != "" {
		l.Printf("Runtime note: %s\n", note)
	}
	l.Printf("\n")
}

// Printf formats a line, echoes it and keeps it for the record.
func (l *Log) Printf(format string, args ...any) {
	str := fmt.Sprintf(format, args...)
	l.lines = append(l.lines, str)
	if l.out != nil {
		fmt.Fprint(l.out, str)
	}
}

// Add appends lines that already end in a newline, such as a fit report.
func (l *Log) Add(lines ...string) {
	for _, line := range lines {
		l.Printf("%s", line)
	}
}

func (l *Log) Lines() []string {
	return l.lines
}

func (l *Log) String() string {
	return strings.Join(l.lines, "")
}

// Write stores the record as dir/log.txt, creating dir if needed, and
// returns the file's path.
func (l *Log) Write(dir string) (path string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path = filepath.Join(dir, FileName)
	txt, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := txt.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(txt)
	for _, line := range l.lines {
		if _, err := w.WriteString(line); err != nil {
			return "", err
		}
	}
	return path, w.Flush()
}
