// pkg/profile/dates.go

package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateComponents is the structured form of one raw date field. Each
// component is a fixed-width digit string or empty. An all-empty value
// means the input was unparsable, which is not an error.
type DateComponents struct {
	Day       string
	Month     string
	Year      string
	YearShort string
}

func (d DateComponents) IsZero() bool {
	return d.Day == "" && d.Month == "" && d.Year == "" && d.YearShort == ""
}

// layouts tried in order when digit-stripping alone is ambiguous.
// Day-first formats come before month-first, matching how the inputs
// are documented to users.
var dateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"01/02/2006",
	"2006-01-02",
	"2006/01/02",
	"02/01/06",
	"02-01-06",
}

var bareYearRe = regexp.MustCompile(`(19|20)\d{2}`)

// ParseDate turns one human-entered date string into DateComponents.
//
// Strategy: strip every non-digit and branch on what is left. Eight
// digits read as DDMMYYYY, six as DDMMYY with the century assumed
// "20", four as DDMM with no year. When the positional read produces an
// impossible day or month, or the digit count fits no branch, the raw
// string is retried against an ordered list of explicit layouts, then
// scanned for a bare 1900-2099 year. Anything still unparsed yields the
// zero value; callers must treat that as success.
func ParseDate(raw string) DateComponents {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DateComponents{}
	}

	digits := digitsOnly(trimmed)
	switch len(digits) {
	case 8:
		if dc, ok := fromParts(digits[0:2], digits[2:4], digits[4:8]); ok {
			return dc
		}
	case 6:
		if dc, ok := fromParts(digits[0:2], digits[2:4], "20"+digits[4:6]); ok {
			return dc
		}
	case 4:
		if dc, ok := fromParts(digits[0:2], digits[2:4], ""); ok {
			return dc
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return fromTime(t)
		}
	}

	if year := bareYearRe.FindString(trimmed); year != "" {
		return DateComponents{Year: year, YearShort: year[2:4]}
	}

	return DateComponents{}
}

// fromParts validates a positional day/month/year read. A year-less
// read (DDMM) is allowed; an impossible day or month rejects the whole
// read so the caller can fall through to explicit layouts.
func fromParts(day, month, year string) (DateComponents, bool) {
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return DateComponents{}, false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return DateComponents{}, false
	}

	dc := DateComponents{Day: day, Month: month}
	if year != "" {
		y, err := strconv.Atoi(year)
		if err != nil || y < 1900 || y > 2099 {
			return DateComponents{}, false
		}
		dc.Year = year
		dc.YearShort = year[2:4]
	}
	return dc, true
}

func fromTime(t time.Time) DateComponents {
	year := fmt.Sprintf("%04d", t.Year())
	return DateComponents{
		Day:       fmt.Sprintf("%02d", t.Day()),
		Month:     fmt.Sprintf("%02d", int(t.Month())),
		Year:      year,
		YearShort: year[2:4],
	}
}
