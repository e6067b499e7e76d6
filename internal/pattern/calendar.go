package pattern

import "time"

// weekdayNames is indexed by time.Weekday and does not depend on locale.
var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Accepted capture timestamp layouts. Fractional seconds after the seconds
// field are accepted by time.Parse without an explicit layout.
var timestampLayouts = []string{
	"2006:01:02 15:04:05",
	"2006:01:02 15:04:05Z07:00",
	"2006:01:02 15:04:05-0700",
}

// parseTimestamp reads the exiftool date/time form. A zone offset, if any,
// is kept so wall-clock fields stay as recorded.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// weekdayAbbrev returns the three-letter English weekday name.
func weekdayAbbrev(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

// isoWeek returns the ISO 8601 week number (1-53).
func isoWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// hour12 maps 0-23 onto a 12-hour clock without AM/PM: 0 and 12 become 12.
func hour12(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return h
}
