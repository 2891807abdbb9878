// Package auditlog writes the human-readable, fixed-width run logs.
//
// A Log is created (truncating any previous file) at the start of a run,
// receives a header, one line per record and a footer, and is closed when the
// run ends. A single handle is held for the whole run.
package auditlog

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// TimeLayout is used for every timestamp written to a log.
const TimeLayout = "2006-01-02 15:04:05"

// Rule separates the header and footer from the records.
var Rule = strings.Repeat("-", 49)

// Column is a left-aligned, space-padded table column.
type Column struct {
	Title string
	Width int
}

type Log struct {
	path    string
	f       *os.File
	columns []Column
}

// Create truncates or creates path.
func Create(path string, columns []Column) (*Log, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating log %s: %w", path, err)
	}
	return &Log{path: path, f: f, columns: columns}, nil
}

func (l *Log) Path() string { return l.path }

// Header writes the title, a rule, the column titles and another rule.
func (l *Log) Header(title string) error {
	titles := make([]string, len(l.columns))
	for i, c := range l.columns {
		titles[i] = c.Title
	}
	return l.write(title, Rule, l.format(titles), Rule)
}

// Row writes one record. Missing values render as blanks, extra values are dropped.
func (l *Log) Row(values ...string) error {
	return l.write(l.format(values))
}

// Line writes free text as its own line.
func (l *Log) Line(text string) error {
	return l.write(text)
}

// Footer writes the closing rule and a completion line.
func (l *Log) Footer(text string) error {
	return l.write(Rule, text)
}

// Close is safe to call more than once.
func (l *Log) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

func (l *Log) format(values []string) string {
	cells := make([]string, len(l.columns))
	for i, c := range l.columns {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		cells[i] = fmt.Sprintf("%-*s", c.Width, v)
	}
	return strings.Join(cells, " ")
}

func (l *Log) write(lines ...string) error {
	if l.f == nil {
		return fmt.Errorf("writing log %s: %w", l.path, os.ErrClosed)
	}
	for _, line := range lines {
		if _, err := l.f.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("writing log %s: %w", l.path, err)
		}
	}
	return nil
}

// Timestamp formats t in local time.
func Timestamp(t time.Time) string {
	return t.Local().Format(TimeLayout)
}
