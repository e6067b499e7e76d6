// Package metadata parses the "tag : value" listing printed by exiftool
// into a lookup table.
package metadata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Well-known tags as printed by exiftool. The long form is emitted by the
// default listing, the short form by `exiftool -s`.
const (
	TagDateTimeOriginal = "Date/Time Original"
	TagCreateDate       = "Create Date"
	TagCameraModel      = "Camera Model Name"
	TagFileName         = "File Name"

	ShortDateTimeOriginal = "DateTimeOriginal"
	ShortCreateDate       = "CreateDate"
	ShortCameraModel      = "Model"
	ShortFileName         = "FileName"
)

// Aliases lists, per canonical tag, every tag name that carries the same value.
// Lookup tries them in order.
var Aliases = map[string][]string{
	TagDateTimeOriginal: {TagDateTimeOriginal, TagCreateDate, ShortDateTimeOriginal, ShortCreateDate},
	TagCameraModel:      {TagCameraModel, ShortCameraModel},
	TagFileName:         {TagFileName, ShortFileName},
}

// separator matches padding before the colon and at least one blank after it.
var separator = regexp.MustCompile(`\s*:\s`)

// Record maps tag names to values for a single file. It is never modified
// after Parse returns it.
type Record struct {
	fields map[string]string
}

// Parse reads a dump line by line. Lines without a separator are skipped and
// later duplicates overwrite earlier ones.
func Parse(r io.Reader) (*Record, error) {
	rec := &Record{fields: make(map[string]string)}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			rec.add(line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read metadata dump: %w", err)
		}
	}
	return rec, nil
}

// ParseString is Parse over an in-memory dump.
func ParseString(s string) *Record {
	rec := &Record{fields: make(map[string]string)}
	for _, line := range strings.Split(s, "\n") {
		rec.add(line)
	}
	return rec
}

// ParseFile reads and parses the dump stored at path.
func ParseFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata dump: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// FromMap builds a record from an existing map. The map is copied.
func FromMap(m map[string]string) *Record {
	rec := &Record{fields: make(map[string]string, len(m))}
	for k, v := range m {
		rec.fields[k] = v
	}
	return rec
}

func (r *Record) add(line string) {
	tag, value, ok := splitLine(strings.TrimRight(line, "\r\n"))
	if !ok {
		return
	}
	r.fields[tag] = value
}

func splitLine(line string) (tag, value string, ok bool) {
	loc := separator.FindStringIndex(line)
	if loc == nil {
		return "", "", false
	}
	tag = strings.TrimSpace(line[:loc[0]])
	value = strings.TrimSpace(line[loc[1]:])
	return tag, value, true
}

// Get returns the value stored under exactly this tag name.
func (r *Record) Get(tag string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.fields[tag]
	return v, ok
}

// Lookup resolves a canonical tag through its aliases. The first alias
// present in the record wins.
func (r *Record) Lookup(tag string) (string, bool) {
	names, ok := Aliases[tag]
	if !ok {
		return r.Get(tag)
	}
	for _, name := range names {
		if v, ok := r.Get(name); ok {
			return v, true
		}
	}
	return "", false
}

// Len returns the number of distinct tags.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Tags returns a copy of the underlying map.
func (r *Record) Tags() map[string]string {
	out := make(map[string]string, r.Len())
	if r == nil {
		return out
	}
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}
