package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var sample = time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC) // Friday

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		lang   string
		want   string
	}{
		// Defaults and presets
		{name: "empty format uses default", format: "", want: "07 Mar, 2025"},
		{name: "default pattern", format: "d M, Y", want: "07 Mar, 2025"},
		{name: "iso preset", format: "iso", want: "2025-03-07"},
		{name: "long preset", format: "long", want: "March 7, 2025"},
		{name: "preset is case-insensitive", format: "ISO", want: "2025-03-07"},

		// Day tokens
		{name: "j is unpadded day", format: "j", want: "7"},
		{name: "D is short weekday", format: "D", want: "Fri"},
		{name: "l is full weekday", format: "l", want: "Friday"},
		{name: "w is weekday number", format: "w", want: "5"},
		{name: "S is ordinal suffix", format: "jS", want: "7th"},
		{name: "z is day of year", format: "z", want: "66"},

		// Month and year tokens
		{name: "m is padded month", format: "m", want: "03"},
		{name: "n is unpadded month", format: "n", want: "3"},
		{name: "F is full month", format: "F", want: "March"},
		{name: "b is lowercase short month", format: "b", want: "mar"},
		{name: "y is two-digit year", format: "y", want: "25"},

		// Time tokens
		{name: "24h clock", format: "H:i:s", want: "15:04:05"},
		{name: "12h clock", format: "g:i A", want: "3:04 PM"},
		{name: "padded 12h clock", format: "h a", want: "03 p.m."},
		{name: "timezone offset", format: "O", want: "+0000"},

		// Literals and escapes
		{name: "unknown characters are literal", format: "Y/m/d @ #", want: "2025/03/07 @ #"},
		{name: "backslash escapes a token", format: `\Y Y`, want: "Y 2025"},
		{name: "escaped backslash", format: `\\`, want: `\`},

		// Localization
		{name: "french month names", format: "j F Y", lang: "fr", want: "7 mars 2025"},
		{name: "german weekday", format: "l", lang: "de", want: "Freitag"},
		{name: "regional tag matches base language", format: "F", lang: "pt-BR", want: "março"},
		{name: "unsupported language falls back to english", format: "F", lang: "ja", want: "March"},
		{name: "malformed tag falls back to english", format: "F", lang: "!!", want: "March"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FormatDate(sample, tt.format, tt.lang)
			if err != nil {
				t.Fatalf("FormatDate(%q) error = %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("FormatDate(%q, %q) = %q, want %q", tt.format, tt.lang, got, tt.want)
			}
		})
	}
}

func TestFormatDate_ZeroTime(t *testing.T) {
	t.Parallel()

	got, err := FormatDate(time.Time{}, "Y", "en")
	if err != nil {
		t.Fatalf("FormatDate() error = %v", err)
	}
	if got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty", got)
	}
}

func TestFormatDate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
	}{
		{"dangling escape", `Y\`},
		{"too long", strings.Repeat("Y", MaxDateFormatLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := FormatDate(sample, tt.format, "")
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("FormatDate(%q) error = %v, want ErrInvalidDateFormat", tt.format, err)
			}
		})
	}
}

func TestEnglishOrdinal(t *testing.T) {
	t.Parallel()

	tests := map[int]string{1: "st", 2: "nd", 3: "rd", 4: "th", 11: "th", 12: "th", 13: "th", 21: "st", 22: "nd", 23: "rd", 31: "st"}
	for day, want := range tests {
		if got := englishOrdinal(day); got != want {
			t.Errorf("englishOrdinal(%d) = %q, want %q", day, got, want)
		}
	}
}

func TestTimeSince(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		lang string
		want string
	}{
		{name: "future renders zero", from: now.Add(time.Hour), want: "0 minutes"},
		{name: "under a minute renders zero", from: now.Add(-30 * time.Second), want: "0 minutes"},
		{name: "single minute", from: now.Add(-time.Minute), want: "1 minute"},
		{name: "hours and minutes", from: now.Add(-(2*time.Hour + 5*time.Minute)), want: "2 hours, 5 minutes"},
		{name: "adjacent unit only", from: now.Add(-(3*24*time.Hour + 5*time.Minute)), want: "3 days"},
		{name: "weeks and days", from: now.Add(-(15 * 24 * time.Hour)), want: "2 weeks, 1 day"},
		{name: "years and months", from: now.Add(-(400 * 24 * time.Hour)), want: "1 year, 1 month"},
		{name: "french singular for one", from: now.Add(-time.Hour), lang: "fr", want: "1 heure"},
		{name: "french zero is singular", from: now, lang: "fr", want: "0 minute"},
		{name: "german plural", from: now.Add(-(48 * time.Hour)), lang: "de", want: "2 Tage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := strings.ReplaceAll(TimeSince(tt.from, now, tt.lang), nbsp, " ")
			if got != tt.want {
				t.Errorf("TimeSince() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeSince_NonBreakingSpace(t *testing.T) {
	t.Parallel()

	now := time.Now()
	got := TimeSince(now.Add(-3*24*time.Hour), now, "en")
	if got != "3\u00a0days" {
		t.Errorf("TimeSince() = %q, want number and unit joined by U+00A0", got)
	}
}
