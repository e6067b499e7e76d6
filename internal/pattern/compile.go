package pattern

import (
	"strings"
)

// Segment is either literal text or a single placeholder.
// Token is zero for literal segments.
type Segment struct {
	Literal string
	Token   Token
}

// IsLiteral reports whether the segment is plain text.
func (s Segment) IsLiteral() bool {
	return s.Token == 0
}

// Pattern is a compiled template.
type Pattern struct {
	source    string
	segments  []Segment
	needsTime bool
	needsFile bool
	needsCam  bool
}

// Compile parses template into a Pattern. It fails on the first unknown or
// unterminated placeholder.
func Compile(template string) (*Pattern, error) {
	p := &Pattern{source: template}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			p.segments = append(p.segments, Segment{Literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(template); {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			lit.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			lit.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return nil, ErrCompile{Template: template, Pos: i, Text: template[i:], Reason: "unterminated placeholder"}
			}
			name := template[i+1 : i+1+end]
			tok, ok := LookupToken(name)
			if !ok {
				return nil, ErrCompile{Template: template, Pos: i, Text: template[i : i+end+2], Reason: "unknown placeholder"}
			}
			flush()
			p.add(tok)
			i += end + 2
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()

	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(template string) *Pattern {
	p, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) add(tok Token) {
	p.segments = append(p.segments, Segment{Token: tok})
	switch {
	case tok.usesTimestamp():
		p.needsTime = true
	case tok.usesFilename():
		p.needsFile = true
	case tok == TokCameraModel:
		p.needsCam = true
	}
}

// String returns the template the pattern was compiled from.
func (p *Pattern) String() string {
	return p.source
}

// Segments returns a copy of the compiled segments in output order.
func (p *Pattern) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Tokens returns the placeholders used by the pattern, in order of first use.
func (p *Pattern) Tokens() []Token {
	var out []Token
	seen := make(map[Token]bool)
	for _, s := range p.segments {
		if s.IsLiteral() || seen[s.Token] {
			continue
		}
		seen[s.Token] = true
		out = append(out, s.Token)
	}
	return out
}
