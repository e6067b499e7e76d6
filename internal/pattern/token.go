package pattern

import "fmt"

// Token identifies one placeholder of the template language.
type Token int

const (
	TokYear4 Token = iota + 1
	TokYear2
	TokMonth
	TokDay
	TokTimeCompact
	TokHour24
	TokHour12
	TokMinute
	TokSecond
	TokWeekNumber
	TokWeekday
	TokPrefix
	TokImageNumber
	TokExtension
	TokCameraModel
)

// TokenInfo describes a placeholder for help output.
type TokenInfo struct {
	Token       Token
	Name        string
	Description string
	Example     string
}

// Vocabulary lists every placeholder in the order shown to users.
var Vocabulary = []TokenInfo{
	{TokYear4, "Y", "4-digit year", "2023"},
	{TokYear2, "y", "2-digit year", "23"},
	{TokMonth, "m", "month (01-12)", "07"},
	{TokDay, "D", "day of month (01-31)", "04"},
	{TokTimeCompact, "t", "time HHMMSS", "150809"},
	{TokHour24, "H", "hour (00-23)", "15"},
	{TokHour12, "h", "hour (01-12)", "03"},
	{TokMinute, "M", "minutes (00-59)", "08"},
	{TokSecond, "S", "seconds (00-59)", "09"},
	{TokWeekNumber, "W", "ISO week number (01-53)", "27"},
	{TokWeekday, "a", "abbreviated weekday name", "Tue"},
	{TokPrefix, "f", "filename prefix before the image number", "IMG_"},
	{TokImageNumber, "r", "image number from the filename", "1234"},
	{TokExtension, "e", "file extension without the dot", "JPG"},
	{TokCameraModel, "T2", "camera model name", "Canon EOS 5D"},
}

var byName = func() map[string]Token {
	m := make(map[string]Token, len(Vocabulary))
	for _, info := range Vocabulary {
		m[info.Name] = info.Token
	}
	return m
}()

// LookupToken returns the token spelled name inside braces.
func LookupToken(name string) (Token, bool) {
	t, ok := byName[name]
	return t, ok
}

// Name returns the placeholder spelling without braces.
func (t Token) Name() string {
	for _, info := range Vocabulary {
		if info.Token == t {
			return info.Name
		}
	}
	return fmt.Sprintf("Token(%d)", int(t))
}

func (t Token) String() string {
	return "{" + t.Name() + "}"
}

// usesTimestamp reports whether rendering t needs the capture timestamp.
func (t Token) usesTimestamp() bool {
	switch t {
	case TokYear4, TokYear2, TokMonth, TokDay, TokTimeCompact,
		TokHour24, TokHour12, TokMinute, TokSecond, TokWeekNumber, TokWeekday:
		return true
	}
	return false
}

// usesFilename reports whether rendering t needs the original filename.
func (t Token) usesFilename() bool {
	switch t {
	case TokPrefix, TokImageNumber, TokExtension:
		return true
	}
	return false
}
