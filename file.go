// Package ach reads and writes files in the NACHA ACH electronic-payment
// interchange format: strictly positional 94-character records organized
// as a file header, one or more batches (header, entry details, optional
// addenda, control), and a file control record, padded with all-nines
// filler records to a block of ten.
//
// # Parsing
//
// [Parse] accepts line-delimited text (LF or CRLF) or one contiguous
// string of 94-character records, which some banks deliver as a single
// unbroken line. Input is expected to be clean ASCII; character-set
// repair is a caller concern. Batch and file control totals found on
// input are never trusted — they are rederived from the entries on every
// serialization. A file control line in an acknowledgement file may carry
// a bank response code in its reserved region; parsing captures it in
// [FileControl.Filler] and serialization preserves it.
//
// # Serialization
//
// [File.String] renders the wire format: batch numbers are assigned in
// sequence order where unset, control totals are recomputed, the record
// count is padded to a multiple of ten with nines records, and the output
// is newline-delimited with every line exactly 94 characters.
//
// # Reading compressed input
//
// Banks frequently deliver ACH files gzip-, bzip2-, xz-, or
// zstd-compressed. Use [Read] with a [FileType] (or [DetectFileType] on
// the path) to decompress and parse in one step.
//
// # Example usage
//
//	f, err := ach.Parse(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(f.Report())
//	normalized := f.String()
package ach

import (
	"strings"

	"github.com/tiendc/go-deepcopy"
)

// achRecord is any record that renders itself as one 94-character line.
type achRecord interface {
	achLine() string
}

// File is an in-memory NACHA file: one header, ordered batches, and a
// control record whose totals are rederived on every serialization. A
// File is not safe for concurrent use; each instance expects a single
// logical owner.
type File struct {
	Header  *FileHeader
	Batches []*Batch
	Control *FileControl
}

// NewFile returns an empty file with fresh header and control records.
func NewFile() *File {
	return &File{
		Header:  &FileHeader{},
		Control: &FileControl{},
	}
}

// AddBatch appends a batch. Insertion order determines serialized batch
// numbers.
func (f *File) AddBatch(b *Batch) {
	f.Batches = append(f.Batches, b)
}

// Parse reads a NACHA file from raw text. The text may be line-delimited
// or one contiguous run of 94-character records. The first unrecognized
// record type code aborts parsing with an [UnrecognizedTypeCodeError]; no
// partial file is returned. After parsing, the file is serialized once as
// a normalization pass, which assigns batch numbers and derives control
// totals.
func Parse(data string) (*File, error) {
	f := NewFile()
	if err := f.parse(data); err != nil {
		return nil, err
	}
	return f, nil
}

// parse implements the type-code dispatch state machine. An entry outside
// an open batch or an addendum outside an entry is a hard parse error.
func (f *File) parse(data string) error {
	if !strings.Contains(data, "\n") {
		data = chunkFixed(data)
	}

	var batch *Batch
	var entry *EntryDetail

	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		raw := line
		if len(line) < recordLength {
			line = leftJustify(line, recordLength)
		}

		switch line[0] {
		case '1':
			f.Header.parse(line)
		case '5':
			if batch != nil {
				f.Batches = append(f.Batches, batch)
			}
			batch = NewBatch()
			entry = nil
			if err := batch.Header.parse(line, f.Header.TransmissionDatetime); err != nil {
				return err
			}
		case '6':
			if batch == nil {
				return ErrEntryOutsideBatch
			}
			entry = &EntryDetail{}
			entry.parse(line)
			batch.AddEntry(entry)
		case '7':
			if entry == nil {
				return ErrAddendumOutsideEntry
			}
			entry.AddAddendum(parseAddendum(line))
		case '8':
			// Batch control totals are always rederived, never trusted
			// from input.
		case '9':
			if isNinesPadding(line) {
				continue
			}
			f.Control = &FileControl{Filler: line[55:94]}
		default:
			return &UnrecognizedTypeCodeError{TypeCode: line[0], Line: raw}
		}
	}

	if batch != nil {
		f.Batches = append(f.Batches, batch)
	}

	// Normalization pass: assign batch numbers and derive control totals
	// so the parsed file is immediately consistent.
	_ = f.String()
	return nil
}

// String serializes the file in wire format. Unset batch numbers are
// assigned from the batch sequence (1-based), nines records pad the total
// to a multiple of ten, and every control total is recomputed from the
// batches. Output is newline-delimited with a trailing newline. Repeated
// calls are idempotent except that batch numbers, once assigned, stay
// assigned.
func (f *File) String() string {
	records := []achRecord{f.Header}
	for i, b := range f.Batches {
		if b.Header.BatchNumber == 0 {
			b.Header.BatchNumber = i + 1
		}
		records = append(records, b.records()...)
	}
	records = append(records, f.Control)

	nines := (10 - len(records)%10) % 10
	for range nines {
		records = append(records, ninesRecord{})
	}

	f.Control.BatchCount = len(f.Batches)
	f.Control.BlockCount = len(records) / 10
	f.Control.EntryCount = 0
	f.Control.DebitTotal = 0
	f.Control.CreditTotal = 0
	f.Control.EntryHash = 0
	for _, b := range f.Batches {
		for _, e := range b.Entries {
			f.Control.EntryCount += e.RecordsCount()
		}
		f.Control.DebitTotal += b.Control.DebitTotal
		f.Control.CreditTotal += b.Control.CreditTotal
		f.Control.EntryHash += b.Control.EntryHash
	}

	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, r.achLine())
	}
	out := strings.Join(lines, "\r\n") + "\r\n"
	// Addenda handling assumes CRLF internally; the published text is
	// newline-only.
	return strings.ReplaceAll(out, "\r\n", "\n")
}

// Copy returns a deep copy of the file. Serialization assigns batch
// numbers in place, so copy first to keep an original unassigned.
func (f *File) Copy() (*File, error) {
	out := &File{}
	if err := deepcopy.Copy(out, f); err != nil {
		return nil, err
	}
	// The copier skips unexported fields, and time.Time values only copy
	// correctly by direct struct assignment; the headers hold both.
	if f.Header != nil {
		header := *f.Header
		out.Header = &header
	}
	for i, b := range f.Batches {
		if b.Header != nil {
			header := *b.Header
			out.Batches[i].Header = &header
		}
	}
	return out, nil
}

// chunkFixed re-chunks a file delivered as one unbroken line into
// newline-delimited 94-character records. A trailing partial record is
// dropped.
func chunkFixed(data string) string {
	lines := make([]string, 0, len(data)/recordLength)
	for len(data) >= recordLength {
		lines = append(lines, data[:recordLength])
		data = data[recordLength:]
	}
	return strings.Join(lines, "\n")
}

// isNinesPadding reports whether the line is an all-nines filler record
// rather than a file control record.
func isNinesPadding(line string) bool {
	for i := range len(line) {
		if line[i] != '9' {
			return false
		}
	}
	return true
}
