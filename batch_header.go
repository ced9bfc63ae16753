package ach

import (
	"fmt"
	"strings"
	"time"
)

// defaultStandardEntryClassCode is used when no SEC code has been set.
const defaultStandardEntryClassCode = "PPD"

// DescriptiveDate is a company descriptive date: either a calendar date or
// free text such as the same-day marker "SD1300". The zero value means the
// field is absent and serializes as spaces.
type DescriptiveDate struct {
	date time.Time
	text string
}

// DescriptiveDateFromTime builds a calendar descriptive date.
func DescriptiveDateFromTime(t time.Time) DescriptiveDate {
	return DescriptiveDate{date: t}
}

// DescriptiveDateFromText builds a free-text descriptive date. The text is
// upper-cased on serialization.
func DescriptiveDateFromText(s string) DescriptiveDate {
	return DescriptiveDate{text: s}
}

// IsZero reports whether the descriptive date is absent.
func (d DescriptiveDate) IsZero() bool {
	return d.date.IsZero() && d.text == ""
}

// Date returns the calendar date and whether one is held.
func (d DescriptiveDate) Date() (time.Time, bool) {
	return d.date, !d.date.IsZero()
}

func (d DescriptiveDate) ach() string {
	switch {
	case !d.date.IsZero():
		return d.date.Format(dateYYMMDD)
	case d.text != "":
		return strings.ToUpper(leftJustify(d.text, 6))
	default:
		return strings.Repeat(" ", 6)
	}
}

// BatchHeader is the '5' record opening a batch.
//
// The company identification is stored as the verbatim ten character field
// and exposed through two views: CompanyIdentification strips a leading
// tax-ID marker digit, FullCompanyIdentification returns the raw field.
// The standard entry class code goes through a validating setter and
// defaults to PPD when unset.
type BatchHeader struct {
	ServiceClassCode             int
	CompanyName                  string
	CompanyDiscretionaryData     string
	CompanyEntryDescription      string
	CompanyDescriptiveDate       DescriptiveDate
	EffectiveEntryDate           time.Time
	SettlementDate               time.Time // zero when absent
	OriginatingDFIIdentification string
	BatchNumber                  int // zero means unassigned

	companyIdentification  string
	standardEntryClassCode string
}

// SetCompanyIdentification stores the verbatim ten character company
// identification field.
func (h *BatchHeader) SetCompanyIdentification(id string) {
	h.companyIdentification = id
}

// CompanyIdentification returns the identification with a leading tax-ID
// marker digit ('1') removed.
func (h *BatchHeader) CompanyIdentification() string {
	return strings.TrimPrefix(h.companyIdentification, "1")
}

// FullCompanyIdentification returns the identification field exactly as
// stored, marker digit included.
func (h *BatchHeader) FullCompanyIdentification() string {
	return h.companyIdentification
}

// SetStandardEntryClassCode validates and stores the SEC code. The code
// must be exactly three characters and is normalized to upper case.
func (h *BatchHeader) SetStandardEntryClassCode(code string) error {
	if len(code) != 3 {
		return &ValidationError{
			Field:  "standard entry class code",
			Reason: fmt.Sprintf("%q must be exactly 3 characters", code),
		}
	}
	h.standardEntryClassCode = strings.ToUpper(code)
	return nil
}

// StandardEntryClassCode returns the SEC code, defaulting to PPD when
// unset.
func (h *BatchHeader) StandardEntryClassCode() string {
	if h.standardEntryClassCode == "" {
		return defaultStandardEntryClassCode
	}
	return h.standardEntryClassCode
}

// parse populates the header from a '5' line. The transmission time of the
// file header drives settlement date inference: the field carries only a
// day of year, so an ordinal earlier than the transmission day is taken to
// settle in the following year.
func (h *BatchHeader) parse(line string, transmitted time.Time) error {
	h.ServiceClassCode = achInt(line[1:4])
	h.CompanyName = strings.TrimSpace(line[4:20])
	h.CompanyDiscretionaryData = strings.TrimSpace(line[20:40])
	h.companyIdentification = line[40:50]
	if err := h.SetStandardEntryClassCode(strings.TrimSpace(line[50:53])); err != nil {
		return err
	}
	h.CompanyEntryDescription = strings.TrimSpace(line[53:63])
	h.CompanyDescriptiveDate = parseDescriptiveDate(line[63:69])

	effective, err := time.Parse(dateYYMMDD, line[69:75])
	if err != nil {
		return &ValidationError{
			Field:  "effective entry date",
			Reason: fmt.Sprintf("%q is not a yymmdd date", line[69:75]),
		}
	}
	h.EffectiveEntryDate = effective

	if day := achInt(line[75:78]); day > 0 {
		year := transmitted.Year()
		if day < transmitted.YearDay() {
			year++
		}
		if t, ok := ordinalDate(year, day); ok {
			h.SettlementDate = t
		}
	}

	h.OriginatingDFIIdentification = strings.TrimSpace(line[79:87])
	return nil
}

func (h *BatchHeader) achLine() string {
	scc := h.ServiceClassCode
	if scc == 0 {
		scc = 200
	}
	settlement := strings.Repeat(" ", 3)
	if !h.SettlementDate.IsZero() {
		settlement = numeric(int64(h.SettlementDate.YearDay()), 3)
	}

	var b strings.Builder
	b.Grow(recordLength)
	b.WriteByte('5')
	b.WriteString(numeric(int64(scc), 3))
	b.WriteString(leftJustify(h.CompanyName, 16))
	b.WriteString(leftJustify(h.CompanyDiscretionaryData, 20))
	b.WriteString(leftJustify(h.companyIdentification, 10))
	b.WriteString(h.StandardEntryClassCode())
	b.WriteString(leftJustify(h.CompanyEntryDescription, 10))
	b.WriteString(h.CompanyDescriptiveDate.ach())
	b.WriteString(h.EffectiveEntryDate.Format(dateYYMMDD))
	b.WriteString(settlement)
	b.WriteByte('1') // originator status code
	b.WriteString(leftJustify(h.OriginatingDFIIdentification, 8))
	b.WriteString(numeric(int64(h.BatchNumber), 7))
	return b.String()
}
