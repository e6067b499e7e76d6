package pattern

import "fmt"

// ErrCompile is returned by Compile for an unterminated or unknown placeholder.
type ErrCompile struct {
	Template string
	Pos      int    // byte offset of the opening brace
	Text     string // offending text, including the brace
	Reason   string
}

func (e ErrCompile) Error() string {
	return fmt.Sprintf("invalid pattern %q at position %d: %s %q", e.Template, e.Pos, e.Reason, e.Text)
}

// ErrMissingField is returned when a placeholder needs a tag the dump lacks.
type ErrMissingField struct {
	Field string
}

func (e ErrMissingField) Error() string {
	return fmt.Sprintf("metadata field %q not found", e.Field)
}

// ErrMalformedTimestamp is returned when the capture timestamp cannot be parsed.
type ErrMalformedTimestamp struct {
	Field string
	Value string
}

func (e ErrMalformedTimestamp) Error() string {
	return fmt.Sprintf("metadata field %q has malformed timestamp %q", e.Field, e.Value)
}

// ErrNoImageNumber is returned for {r} when the filename has no digit run.
type ErrNoImageNumber struct {
	Filename string
}

func (e ErrNoImageNumber) Error() string {
	return fmt.Sprintf("no image number in filename %q", e.Filename)
}
