package ach

import "strings"

// BatchControl is the '8' record closing a batch. Its numeric fields are
// derived from the batch's entries at serialization time and are never
// authored directly; values found on input are discarded and rederived.
type BatchControl struct {
	ServiceClassCode             int
	EntryCount                   int
	EntryHash                    int
	DebitTotal                   int
	CreditTotal                  int
	CompanyIdentification        string
	OriginatingDFIIdentification string
	BatchNumber                  int
}

func (c *BatchControl) achLine() string {
	scc := c.ServiceClassCode
	if scc == 0 {
		scc = 200
	}

	var b strings.Builder
	b.Grow(recordLength)
	b.WriteByte('8')
	b.WriteString(numeric(int64(scc), 3))
	b.WriteString(numeric(int64(c.EntryCount), 6))
	b.WriteString(numeric(int64(c.EntryHash), 10))
	b.WriteString(numeric(int64(c.DebitTotal), 12))
	b.WriteString(numeric(int64(c.CreditTotal), 12))
	b.WriteString(leftJustify(c.CompanyIdentification, 10))
	b.WriteString(strings.Repeat(" ", 25)) // message authentication code, reserved
	b.WriteString(leftJustify(c.OriginatingDFIIdentification, 8))
	b.WriteString(numeric(int64(c.BatchNumber), 7))
	return b.String()
}

// FileControl is the '9' record closing a file. All counts and totals are
// recomputed from the batches on every serialization. Filler is the
// 39 character reserved region; acknowledgement files from some banks
// carry a response code there, which parsing captures and serialization
// preserves.
type FileControl struct {
	BatchCount  int
	BlockCount  int
	EntryCount  int
	EntryHash   int
	DebitTotal  int
	CreditTotal int
	Filler      string
}

func (c *FileControl) achLine() string {
	var b strings.Builder
	b.Grow(recordLength)
	b.WriteByte('9')
	b.WriteString(numeric(int64(c.BatchCount), 6))
	b.WriteString(numeric(int64(c.BlockCount), 6))
	b.WriteString(numeric(int64(c.EntryCount), 8))
	b.WriteString(numeric(int64(c.EntryHash), 10))
	b.WriteString(numeric(int64(c.DebitTotal), 12))
	b.WriteString(numeric(int64(c.CreditTotal), 12))
	b.WriteString(leftJustify(c.Filler, 39))
	return b.String()
}

// ninesRecord pads a serialized file to a multiple of ten records. It is
// stateless and created only during serialization.
type ninesRecord struct{}

func (ninesRecord) achLine() string {
	return strings.Repeat("9", recordLength)
}
