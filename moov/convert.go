// Package moov converts between this module's lenient file model and the
// strict github.com/moov-io/ach model, for callers that need full NACHA
// validation or interchange with moov tooling.
//
// The two models disagree on addenda detail: this module stores the raw
// 80-character payment-related region, while moov-io/ach decomposes
// notification-of-change and return addenda into named fields. Conversion
// is therefore best effort for those variants: the change or return code
// survives, and the remaining payment data is carried in the corrected
// data or addenda information field.
//
// moov-io/ach validates aggressively on Batch.Create and File.Create;
// files that this module's lenient parser accepts may still fail
// conversion, and the validation error is returned as-is.
package moov

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	moovach "github.com/moov-io/ach"

	"github.com/paynearme/ach"
)

// FromFile converts a parsed file to a moov-io/ach file, building its
// batch and file control records.
func FromFile(f *ach.File) (*moovach.File, error) {
	if f == nil {
		return nil, errors.New("file cannot be nil")
	}
	// Resolve batch numbers and control totals before converting.
	_ = f.String()

	out := moovach.NewFile()
	out.Header.ImmediateDestination = f.Header.ImmediateDestination
	out.Header.ImmediateOrigin = f.Header.ImmediateOrigin
	out.Header.FileCreationDate = f.Header.TransmissionDatetime.Format("060102")
	out.Header.FileCreationTime = f.Header.TransmissionDatetime.Format("1504")
	out.Header.FileIDModifier = f.Header.FileIDModifier
	if out.Header.FileIDModifier == "" {
		out.Header.FileIDModifier = "A"
	}
	out.Header.ImmediateDestinationName = f.Header.ImmediateDestinationName
	out.Header.ImmediateOriginName = f.Header.ImmediateOriginName
	out.Header.ReferenceCode = f.Header.ReferenceCode

	for i, b := range f.Batches {
		batch, err := convertBatch(b)
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", i+1, err)
		}
		out.AddBatch(batch)
	}

	if err := out.Create(); err != nil {
		return nil, fmt.Errorf("failed to build file control: %w", err)
	}
	return out, nil
}

func convertBatch(b *ach.Batch) (moovach.Batcher, error) {
	bh := moovach.NewBatchHeader()
	bh.ServiceClassCode = b.Header.ServiceClassCode
	if bh.ServiceClassCode == 0 {
		bh.ServiceClassCode = moovach.MixedDebitsAndCredits
	}
	bh.CompanyName = b.Header.CompanyName
	bh.CompanyDiscretionaryData = b.Header.CompanyDiscretionaryData
	bh.CompanyIdentification = b.Header.CompanyIdentification()
	bh.StandardEntryClassCode = b.Header.StandardEntryClassCode()
	bh.CompanyEntryDescription = b.Header.CompanyEntryDescription
	if !b.Header.EffectiveEntryDate.IsZero() {
		bh.EffectiveEntryDate = b.Header.EffectiveEntryDate.Format("060102")
	}
	bh.ODFIIdentification = b.Header.OriginatingDFIIdentification
	bh.BatchNumber = b.Header.BatchNumber

	batch, err := moovach.NewBatch(bh)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch: %w", err)
	}

	for _, e := range b.Entries {
		entry, err := convertEntry(e, bh.ODFIIdentification)
		if err != nil {
			return nil, err
		}
		batch.AddEntry(entry)
	}

	if err := batch.Create(); err != nil {
		return nil, fmt.Errorf("failed to build batch control: %w", err)
	}
	return batch, nil
}

func convertEntry(e *ach.EntryDetail, odfi string) (*moovach.EntryDetail, error) {
	code, err := strconv.Atoi(e.TransactionCode)
	if err != nil {
		return nil, fmt.Errorf("transaction code %q is not numeric", e.TransactionCode)
	}

	entry := moovach.NewEntryDetail()
	entry.TransactionCode = code
	entry.SetRDFI(e.RoutingNumber)
	entry.DFIAccountNumber = e.AccountNumber
	entry.Amount = e.Amount
	entry.IdentificationNumber = e.IndividualIDNumber
	entry.IndividualName = e.IndividualName
	entry.SetTraceNumber(odfi, e.TraceNumber)

	for _, a := range e.Addenda {
		entry.AddendaRecordIndicator = 1
		switch a.Kind {
		case ach.AddendumNotificationOfChange:
			noc := moovach.NewAddenda98()
			noc.ChangeCode = a.ChangeCode()
			noc.OriginalTrace = entry.TraceNumber
			noc.OriginalDFI = entry.RDFIIdentification
			noc.CorrectedData = truncate(dataAfterCode(a), 29)
			noc.TraceNumber = entry.TraceNumber
			entry.Category = moovach.CategoryNOC
			entry.Addenda98 = noc
		case ach.AddendumReturn:
			ret := moovach.NewAddenda99()
			ret.ReturnCode = a.ReturnCode()
			ret.OriginalTrace = entry.TraceNumber
			ret.OriginalDFI = entry.RDFIIdentification
			ret.AddendaInformation = truncate(dataAfterCode(a), 44)
			ret.TraceNumber = entry.TraceNumber
			entry.Category = moovach.CategoryReturn
			entry.Addenda99 = ret
		default:
			addenda := moovach.NewAddenda05()
			addenda.PaymentRelatedInformation = a.PaymentData
			addenda.SequenceNumber = a.SequenceNumber
			if addenda.SequenceNumber == 0 {
				addenda.SequenceNumber = 1
			}
			addenda.EntryDetailSequenceNumber = a.EntryDetailSequenceNumber
			entry.AddAddenda05(addenda)
		}
	}
	return entry, nil
}

// ToFile converts a moov-io/ach file to this module's model by rendering
// it in wire format and reparsing. Control records are rebuilt first.
func ToFile(m *moovach.File) (*ach.File, error) {
	if m == nil {
		return nil, errors.New("file cannot be nil")
	}
	if err := m.Create(); err != nil {
		return nil, fmt.Errorf("failed to build control records: %w", err)
	}

	var buf bytes.Buffer
	if err := moovach.NewWriter(&buf).Write(m); err != nil {
		return nil, fmt.Errorf("failed to render file: %w", err)
	}

	f, err := ach.Parse(buf.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered file: %w", err)
	}
	return f, nil
}

// dataAfterCode returns the payment data with the leading three character
// change or return code removed.
func dataAfterCode(a *ach.Addendum) string {
	if len(a.PaymentData) <= 3 {
		return ""
	}
	return strings.TrimSpace(a.PaymentData[3:])
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
