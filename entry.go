package ach

import "strings"

// creditTransactionCodes classifies the transaction codes that move money
// to the receiver. Everything else with a non-empty code is a debit.
var creditTransactionCodes = map[string]bool{
	"21": true, "22": true, "23": true, "24": true,
	"31": true, "32": true, "33": true, "34": true,
	"41": true, "42": true, "43": true, "44": true,
	"51": true, "52": true, "53": true, "54": true,
}

// EntryDetail is a '6' record: one payment instruction within a batch,
// with amounts held in integer minor units (cents).
type EntryDetail struct {
	TransactionCode              string
	RoutingNumber                string // nine characters, check digit included
	AccountNumber                string
	Amount                       int
	IndividualIDNumber           string
	IndividualName               string
	OriginatingDFIIdentification string
	TraceNumber                  int
	Addenda                      []*Addendum
}

// AddAddendum appends an addendum, preserving encounter order.
func (e *EntryDetail) AddAddendum(a *Addendum) {
	e.Addenda = append(e.Addenda, a)
}

// RecordsCount is the number of wire records this entry produces: the
// entry itself plus its addenda. File-level entry counts sum this value.
func (e *EntryDetail) RecordsCount() int {
	return 1 + len(e.Addenda)
}

// IsCredit reports whether the transaction code credits the receiving
// account.
func (e *EntryDetail) IsCredit() bool {
	return creditTransactionCodes[e.TransactionCode]
}

// IsDebit reports whether the transaction code debits the receiving
// account.
func (e *EntryDetail) IsDebit() bool {
	return e.TransactionCode != "" && !e.IsCredit()
}

// hash is this entry's contribution to the batch entry hash: the integer
// value of the first eight routing digits, check digit excluded.
func (e *EntryDetail) hash() int {
	rn := e.RoutingNumber
	if len(rn) > 8 {
		rn = rn[:8]
	}
	return achInt(rn)
}

func (e *EntryDetail) parse(line string) {
	e.TransactionCode = line[1:3]
	e.RoutingNumber = line[3:12]
	e.AccountNumber = strings.TrimSpace(line[12:29])
	e.Amount = achInt(line[29:39])
	e.IndividualIDNumber = strings.TrimSpace(line[39:54])
	e.IndividualName = strings.TrimSpace(line[54:76])
	e.OriginatingDFIIdentification = strings.TrimSpace(line[79:87])
	e.TraceNumber = achInt(line[87:94])
}

func (e *EntryDetail) achLine() string {
	indicator := byte('0')
	if len(e.Addenda) > 0 {
		indicator = '1'
	}

	var b strings.Builder
	b.Grow(recordLength)
	b.WriteByte('6')
	b.WriteString(leftJustify(e.TransactionCode, 2))
	b.WriteString(leftJustify(e.RoutingNumber, 9))
	b.WriteString(leftJustify(e.AccountNumber, 17))
	b.WriteString(numeric(int64(e.Amount), 10))
	b.WriteString(leftJustify(e.IndividualIDNumber, 15))
	b.WriteString(leftJustify(e.IndividualName, 22))
	b.WriteString("  ") // discretionary data
	b.WriteByte(indicator)
	b.WriteString(leftJustify(e.OriginatingDFIIdentification, 8))
	b.WriteString(numeric(int64(e.TraceNumber), 7))
	return b.String()
}
