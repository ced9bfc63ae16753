package ach

// Batch groups a batch header, its ordered entries, and the derived
// control record. Totals are computed lazily when the batch is rendered,
// never cached across mutations.
type Batch struct {
	Header  *BatchHeader
	Entries []*EntryDetail
	Control *BatchControl
}

// NewBatch returns an empty batch with a fresh header and control record.
func NewBatch() *Batch {
	return &Batch{
		Header:  &BatchHeader{},
		Control: &BatchControl{},
	}
}

// AddEntry appends an entry to the batch. Totals are not recomputed here;
// they are derived when the batch is serialized.
func (b *Batch) AddEntry(e *EntryDetail) {
	b.Entries = append(b.Entries, e)
}

// totals derives the batch control figures from the current entries:
// debit and credit sums, the summed routing-number hash, and the record
// count including addenda.
func (b *Batch) totals() (debit, credit, hash, count int) {
	for _, e := range b.Entries {
		if e.IsCredit() {
			credit += e.Amount
		} else if e.IsDebit() {
			debit += e.Amount
		}
		hash += e.hash()
		count += e.RecordsCount()
	}
	return debit, credit, hash, count
}

// refreshControl rederives the control record from the header and the
// current entries.
func (b *Batch) refreshControl() {
	if b.Control == nil {
		b.Control = &BatchControl{}
	}
	debit, credit, hash, count := b.totals()
	b.Control.ServiceClassCode = b.Header.ServiceClassCode
	b.Control.EntryCount = count
	b.Control.EntryHash = hash
	b.Control.DebitTotal = debit
	b.Control.CreditTotal = credit
	b.Control.CompanyIdentification = b.Header.FullCompanyIdentification()
	b.Control.OriginatingDFIIdentification = b.Header.OriginatingDFIIdentification
	b.Control.BatchNumber = b.Header.BatchNumber
}

// records returns the batch's wire records in mandatory order: header,
// each entry immediately followed by its addenda, control.
func (b *Batch) records() []achRecord {
	b.refreshControl()
	recs := make([]achRecord, 0, 2+len(b.Entries))
	recs = append(recs, b.Header)
	for _, e := range b.Entries {
		recs = append(recs, e)
		for _, a := range e.Addenda {
			recs = append(recs, a)
		}
	}
	return append(recs, b.Control)
}
