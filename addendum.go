package ach

import "strings"

// AddendumKind is the closed set of addendum variants, selected by the two
// character type code when the record is constructed.
type AddendumKind int

const (
	// AddendumGeneric carries payment related data (type code 05 and any
	// code that is not 98 or 99).
	AddendumGeneric AddendumKind = iota
	// AddendumNotificationOfChange is a type code 98 record.
	AddendumNotificationOfChange
	// AddendumReturn is a type code 99 record.
	AddendumReturn
)

// String returns a human-readable name for the addendum kind.
func (k AddendumKind) String() string {
	switch k {
	case AddendumNotificationOfChange:
		return "notification of change"
	case AddendumReturn:
		return "return"
	default:
		return "addendum"
	}
}

// Addendum is a '7' record attached to an entry detail.
type Addendum struct {
	Kind                      AddendumKind
	TypeCode                  string
	PaymentData               string
	SequenceNumber            int
	EntryDetailSequenceNumber int
}

// NewAddendum builds an addendum whose kind is selected by the type code:
// "98" is a notification of change, "99" a return, anything else generic.
func NewAddendum(typeCode string) *Addendum {
	kind := AddendumGeneric
	switch typeCode {
	case "98":
		kind = AddendumNotificationOfChange
	case "99":
		kind = AddendumReturn
	}
	return &Addendum{Kind: kind, TypeCode: typeCode}
}

func parseAddendum(line string) *Addendum {
	a := NewAddendum(line[1:3])
	a.PaymentData = strings.TrimSpace(line[3:83])
	a.SequenceNumber = achInt(line[83:87])
	a.EntryDetailSequenceNumber = achInt(line[87:94])
	return a
}

// ChangeCode returns the three character change code of a notification of
// change, or "" for other kinds.
func (a *Addendum) ChangeCode() string {
	if a.Kind != AddendumNotificationOfChange || len(a.PaymentData) < 3 {
		return ""
	}
	return a.PaymentData[:3]
}

// ReturnCode returns the three character return reason code of a return
// addendum, or "" for other kinds.
func (a *Addendum) ReturnCode() string {
	if a.Kind != AddendumReturn || len(a.PaymentData) < 3 {
		return ""
	}
	return a.PaymentData[:3]
}

// ReturnDescription returns the NACHA rules description for the return
// reason code, or "" when the addendum is not a return or the code is
// unknown.
func (a *Addendum) ReturnDescription() string {
	return ReturnCodeDescription(a.ReturnCode())
}

func (a *Addendum) achLine() string {
	typeCode := a.TypeCode
	if typeCode == "" {
		typeCode = "05"
	}

	var b strings.Builder
	b.Grow(recordLength)
	b.WriteByte('7')
	b.WriteString(leftJustify(typeCode, 2))
	b.WriteString(leftJustify(a.PaymentData, 80))
	b.WriteString(numeric(int64(a.SequenceNumber), 4))
	b.WriteString(numeric(int64(a.EntryDetailSequenceNumber), 7))
	return b.String()
}
