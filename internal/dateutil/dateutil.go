// Package dateutil formats dates with Django-style patterns and renders
// human "time since" durations, under an explicitly passed language.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when a blog has no pattern configured.
const DefaultDateFormat = "d M, Y"

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "Y-m-d",
	"european": "d/m/Y",
	"us":       "m/d/Y",
	"long":     "F j, Y",
	"short":    DefaultDateFormat,
}

// ValidateDateFormat checks a pattern before use.
// Returns ErrInvalidDateFormat if the pattern is too long or ends with a
// dangling backslash escape.
func ValidateDateFormat(format string) error {
	if len(format) > MaxDateFormatLength {
		return fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}
	if trailingBackslashes(format)%2 == 1 {
		return fmt.Errorf("%w: dangling escape at end of %q", ErrInvalidDateFormat, format)
	}
	return nil
}

func trailingBackslashes(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n
}

// FormatDate formats t with a Django-style pattern in the given language.
// A zero time formats as "". An empty pattern means DefaultDateFormat and
// a preset name (iso, european, us, long, short) expands to its pattern.
//
// Supported characters: d j D l w S z m n M b F E N y Y H G h g i s A a U
// O T e. A backslash escapes the next character. Anything else is literal.
func FormatDate(t time.Time, format, lang string) (string, error) {
	if t.IsZero() {
		return "", nil
	}
	if format == "" {
		format = DefaultDateFormat
	}
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	if err := ValidateDateFormat(format); err != nil {
		return "", err
	}

	loc := LocaleFor(lang)

	var result strings.Builder
	result.Grow(len(format) + 16)

	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '\\' {
			i++
			result.WriteRune(runes[i])
			continue
		}
		result.WriteString(formatChar(t, c, loc))
	}
	return result.String(), nil
}

// formatChar renders one pattern character. Unknown characters are literal.
func formatChar(t time.Time, c rune, loc *Locale) string {
	switch c {
	// Day
	case 'd':
		return fmt.Sprintf("%02d", t.Day())
	case 'j':
		return strconv.Itoa(t.Day())
	case 'D':
		return loc.DaysShort[t.Weekday()]
	case 'l':
		return loc.Days[t.Weekday()]
	case 'w':
		return strconv.Itoa(int(t.Weekday()))
	case 'S':
		return englishOrdinal(t.Day())
	case 'z':
		return strconv.Itoa(t.YearDay())

	// Month
	case 'm':
		return fmt.Sprintf("%02d", int(t.Month()))
	case 'n':
		return strconv.Itoa(int(t.Month()))
	case 'M', 'N':
		return loc.MonthsShort[t.Month()-1]
	case 'b':
		return strings.ToLower(loc.MonthsShort[t.Month()-1])
	case 'F', 'E':
		return loc.Months[t.Month()-1]

	// Year
	case 'y':
		return fmt.Sprintf("%02d", t.Year()%100)
	case 'Y':
		return strconv.Itoa(t.Year())

	// Time
	case 'H':
		return fmt.Sprintf("%02d", t.Hour())
	case 'G':
		return strconv.Itoa(t.Hour())
	case 'h':
		return fmt.Sprintf("%02d", hour12(t.Hour()))
	case 'g':
		return strconv.Itoa(hour12(t.Hour()))
	case 'i':
		return fmt.Sprintf("%02d", t.Minute())
	case 's':
		return fmt.Sprintf("%02d", t.Second())
	case 'A':
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case 'a':
		if t.Hour() < 12 {
			return "a.m."
		}
		return "p.m."
	case 'U':
		return strconv.FormatInt(t.Unix(), 10)

	// Timezone
	case 'O':
		return t.Format("-0700")
	case 'T':
		return t.Format("MST")
	case 'e':
		return t.Location().String()
	}
	return string(c)
}

func hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}

// englishOrdinal returns st, nd, rd or th for a day of the month.
func englishOrdinal(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// Formatter exposes FormatDate and TimeSince as methods so callers can
// depend on an interface.
type Formatter struct{}

// FormatDate calls the package-level FormatDate.
func (Formatter) FormatDate(t time.Time, format, lang string) (string, error) {
	return FormatDate(t, format, lang)
}

// TimeSince calls the package-level TimeSince.
func (Formatter) TimeSince(from, to time.Time, lang string) string {
	return TimeSince(from, to, lang)
}
