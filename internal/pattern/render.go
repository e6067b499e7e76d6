package pattern

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mydehq/exifname/internal/metadata"
)

// Context is the per-file input to Render.
type Context struct {
	Record   *metadata.Record
	Filename string // original file name; falls back to the File Name tag when empty
}

// values holds everything resolved for one Render call.
type values struct {
	when   time.Time
	name   nameParts
	source string
	camera string
}

// Render evaluates the pattern for one file. On error the returned string
// is always empty.
func (p *Pattern) Render(ctx Context) (string, error) {
	v, err := p.resolve(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, seg := range p.segments {
		if seg.IsLiteral() {
			b.WriteString(seg.Literal)
			continue
		}
		s, err := v.format(seg.Token)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// resolve looks up the inputs the pattern's placeholders need, and only those.
func (p *Pattern) resolve(ctx Context) (values, error) {
	var v values

	if p.needsTime {
		raw, ok := ctx.Record.Lookup(metadata.TagDateTimeOriginal)
		if !ok {
			return v, ErrMissingField{Field: metadata.TagDateTimeOriginal}
		}
		t, ok := parseTimestamp(raw)
		if !ok {
			return v, ErrMalformedTimestamp{Field: metadata.TagDateTimeOriginal, Value: raw}
		}
		v.when = t
	}

	if p.needsFile {
		v.source = ctx.Filename
		if v.source == "" {
			name, ok := ctx.Record.Lookup(metadata.TagFileName)
			if !ok {
				return v, ErrMissingField{Field: metadata.TagFileName}
			}
			v.source = name
		}
		v.name = splitName(v.source)
	}

	if p.needsCam {
		model, ok := ctx.Record.Lookup(metadata.TagCameraModel)
		if !ok {
			return v, ErrMissingField{Field: metadata.TagCameraModel}
		}
		v.camera = sanitizeComponent(model)
	}

	return v, nil
}

func (v values) format(tok Token) (string, error) {
	switch tok {
	case TokYear4:
		return fmt.Sprintf("%04d", v.when.Year()), nil
	case TokYear2:
		return pad2(v.when.Year() % 100), nil
	case TokMonth:
		return pad2(int(v.when.Month())), nil
	case TokDay:
		return pad2(v.when.Day()), nil
	case TokTimeCompact:
		return pad2(v.when.Hour()) + pad2(v.when.Minute()) + pad2(v.when.Second()), nil
	case TokHour24:
		return pad2(v.when.Hour()), nil
	case TokHour12:
		return pad2(hour12(v.when.Hour())), nil
	case TokMinute:
		return pad2(v.when.Minute()), nil
	case TokSecond:
		return pad2(v.when.Second()), nil
	case TokWeekNumber:
		return pad2(isoWeek(v.when)), nil
	case TokWeekday:
		return weekdayAbbrev(v.when), nil
	case TokPrefix:
		return v.name.Prefix, nil
	case TokImageNumber:
		if v.name.Number == "" {
			return "", ErrNoImageNumber{Filename: v.source}
		}
		return v.name.Number, nil
	case TokExtension:
		return v.name.Ext, nil
	case TokCameraModel:
		return v.camera, nil
	}
	// Compile only emits tokens from Vocabulary.
	panic(fmt.Sprintf("pattern: unhandled token %d", int(tok)))
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
