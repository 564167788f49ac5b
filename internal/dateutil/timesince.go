package dateutil

import (
	"strconv"
	"strings"
	"time"
)

// nbsp keeps "3 days" from wrapping across lines.
const nbsp = "\u00a0"

var timeChunks = [6]time.Duration{
	365 * 24 * time.Hour,
	30 * 24 * time.Hour,
	7 * 24 * time.Hour,
	24 * time.Hour,
	time.Hour,
	time.Minute,
}

// TimeSince renders the duration between from and to as at most two
// adjacent units, e.g. "2 weeks, 3 days". Non-positive durations render as
// "0 minutes". Numbers and units are joined by a non-breaking space.
func TimeSince(from, to time.Time, lang string) string {
	loc := LocaleFor(lang)
	delta := to.Sub(from)
	if delta < time.Minute {
		return unitString(loc, 5, 0)
	}

	for i, chunk := range timeChunks {
		count := int(delta / chunk)
		if count == 0 {
			continue
		}
		parts := []string{unitString(loc, i, count)}
		if i+1 < len(timeChunks) {
			rest := delta - time.Duration(count)*chunk
			if next := int(rest / timeChunks[i+1]); next != 0 {
				parts = append(parts, unitString(loc, i+1, next))
			}
		}
		return strings.Join(parts, ", ")
	}
	return unitString(loc, 5, 0)
}

func unitString(loc *Locale, unit, n int) string {
	name := loc.Units[unit].one
	if loc.Plural(n) {
		name = loc.Units[unit].other
	}
	return strconv.Itoa(n) + nbsp + name
}
