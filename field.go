package ach

import (
	"strconv"
	"strings"
	"time"
)

// recordLength is the fixed width of every NACHA record.
const recordLength = 94

// dateYYMMDD is the two-digit-year date layout used by file and batch
// headers.
const dateYYMMDD = "060102"

// leftJustify pads s with trailing spaces to width, truncating longer
// values to fit the field.
func leftJustify(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// rightJustify pads s with leading spaces to width, truncating longer
// values to fit the field.
func rightJustify(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// numeric renders v as a zero-padded decimal string of exactly width
// digits. Values wider than the field keep the low-order digits; this is
// the truncation rule control fields such as the entry hash rely on.
func numeric(v int64, width int) string {
	if v < 0 {
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	if len(s) > width {
		return s[len(s)-width:]
	}
	return strings.Repeat("0", width-len(s)) + s
}

// achInt parses s leniently: leading spaces are skipped, an optional sign
// and the longest run of leading digits are consumed, and anything else
// yields zero. Trailing garbage is ignored rather than reported so that
// space-padded and partially filled numeric fields read as their numeric
// prefix.
func achInt(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0
	}
	n, err := strconv.Atoi(s[start:j])
	if err != nil {
		return 0
	}
	return n
}

// ordinalDate resolves a 1-based day of year within year. The second
// return value is false for ordinals that fall outside the year, such as
// day 366 of a non-leap year.
func ordinalDate(year, day int) (time.Time, bool) {
	if day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day-1)
	if t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

// descriptiveDateFormats are the layouts accepted for the loosely
// formatted company descriptive date. Originating institutions disagree on
// this field, so parse failures leave the value absent instead of failing
// the batch.
var descriptiveDateFormats = []string{
	dateYYMMDD,
	"Jan 02",
	"Jan  2",
	"01/02/06",
}

// parseDescriptiveDate parses the six character descriptive date field,
// returning the zero value when no known layout matches.
func parseDescriptiveDate(s string) DescriptiveDate {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return DescriptiveDate{}
	}
	for _, layout := range descriptiveDateFormats {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return DescriptiveDateFromTime(t)
		}
	}
	return DescriptiveDate{}
}
