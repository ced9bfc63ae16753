package moov

import (
	"testing"
	"time"

	moovach "github.com/moov-io/ach"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paynearme/ach"
)

// fixtureFile builds a file that satisfies moov-io/ach validation:
// real routing numbers and a fully populated PPD batch.
func fixtureFile(t *testing.T) *ach.File {
	t.Helper()

	f := ach.NewFile()
	f.Header = &ach.FileHeader{
		ImmediateDestination:     "231380104",
		ImmediateOrigin:          "121042882",
		TransmissionDatetime:     time.Date(2025, time.September, 1, 13, 0, 0, 0, time.UTC),
		ImmediateDestinationName: "Destination Bank",
		ImmediateOriginName:      "Origin Company",
	}

	b := ach.NewBatch()
	b.Header.ServiceClassCode = 200
	b.Header.CompanyName = "Origin Company"
	b.Header.CompanyEntryDescription = "PAYROLL"
	b.Header.EffectiveEntryDate = time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)
	b.Header.OriginatingDFIIdentification = "12104288"
	b.Header.SetCompanyIdentification("1121042882")
	require.NoError(t, b.Header.SetStandardEntryClassCode("PPD"))

	b.AddEntry(&ach.EntryDetail{
		TransactionCode:              "27",
		RoutingNumber:                "231380104",
		AccountNumber:                "123456789",
		Amount:                       10000,
		IndividualIDNumber:           "EMP-0042",
		IndividualName:               "Jane Receiver",
		OriginatingDFIIdentification: "12104288",
		TraceNumber:                  1,
	})
	f.AddBatch(b)
	return f
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	m, err := FromFile(fixtureFile(t))
	require.NoError(t, err)

	assert.Equal(t, "231380104", m.Header.ImmediateDestination)
	assert.Equal(t, "121042882", m.Header.ImmediateOrigin)
	assert.Equal(t, "250901", m.Header.FileCreationDate)
	assert.Equal(t, "1300", m.Header.FileCreationTime)
	assert.Equal(t, "A", m.Header.FileIDModifier)

	require.Len(t, m.Batches, 1)
	bh := m.Batches[0].GetHeader()
	assert.Equal(t, moovach.PPD, bh.StandardEntryClassCode)
	assert.Equal(t, "Origin Company", bh.CompanyName)
	assert.Equal(t, "121042882", bh.CompanyIdentification)
	assert.Equal(t, "250902", bh.EffectiveEntryDate)

	entries := m.Batches[0].GetEntries()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, moovach.CheckingDebit, e.TransactionCode)
	assert.Equal(t, "23138010", e.RDFIIdentification)
	assert.Equal(t, "4", e.CheckDigit)
	assert.Equal(t, 10000, e.Amount)
	assert.Equal(t, "121042880000001", e.TraceNumber)
}

func TestFromFile_addenda(t *testing.T) {
	t.Parallel()

	t.Run("generic addenda map to addenda05", func(t *testing.T) {
		t.Parallel()
		f := fixtureFile(t)
		a := ach.NewAddendum("05")
		a.PaymentData = "INVOICE 2025-113"
		a.EntryDetailSequenceNumber = 1
		f.Batches[0].Entries[0].AddAddendum(a)

		m, err := FromFile(f)
		require.NoError(t, err)
		e := m.Batches[0].GetEntries()[0]
		assert.Equal(t, 1, e.AddendaRecordIndicator)
		require.Len(t, e.Addenda05, 1)
		assert.Equal(t, "INVOICE 2025-113", e.Addenda05[0].PaymentRelatedInformation)
		assert.Equal(t, 1, e.Addenda05[0].SequenceNumber)
	})

	t.Run("notification of change maps to addenda98", func(t *testing.T) {
		t.Parallel()
		f := fixtureFile(t)
		require.NoError(t, f.Batches[0].Header.SetStandardEntryClassCode("COR"))
		entry := f.Batches[0].Entries[0]
		entry.TransactionCode = "21"
		entry.Amount = 0
		a := ach.NewAddendum("98")
		a.PaymentData = "C01121042880000001      12104288987654321"
		entry.AddAddendum(a)

		m, err := FromFile(f)
		require.NoError(t, err)
		e := m.Batches[0].GetEntries()[0]
		require.NotNil(t, e.Addenda98)
		assert.Equal(t, "C01", e.Addenda98.ChangeCode)
		assert.Equal(t, moovach.CategoryNOC, e.Category)
	})

	t.Run("return maps to addenda99", func(t *testing.T) {
		t.Parallel()
		f := fixtureFile(t)
		entry := f.Batches[0].Entries[0]
		entry.TransactionCode = "26"
		a := ach.NewAddendum("99")
		a.PaymentData = "R01121042880000001      12104288"
		entry.AddAddendum(a)

		m, err := FromFile(f)
		require.NoError(t, err)
		e := m.Batches[0].GetEntries()[0]
		require.NotNil(t, e.Addenda99)
		assert.Equal(t, "R01", e.Addenda99.ReturnCode)
		assert.Equal(t, moovach.CategoryReturn, e.Category)
	})
}

func TestFromFile_errors(t *testing.T) {
	t.Parallel()

	t.Run("nil file", func(t *testing.T) {
		t.Parallel()
		_, err := FromFile(nil)
		require.Error(t, err)
	})

	t.Run("non-numeric transaction code", func(t *testing.T) {
		t.Parallel()
		f := fixtureFile(t)
		f.Batches[0].Entries[0].TransactionCode = "XX"
		_, err := FromFile(f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not numeric")
	})
}

func TestToFile(t *testing.T) {
	t.Parallel()

	m, err := FromFile(fixtureFile(t))
	require.NoError(t, err)

	f, err := ToFile(m)
	require.NoError(t, err)

	assert.Equal(t, "231380104", f.Header.ImmediateDestination)
	require.Len(t, f.Batches, 1)
	b := f.Batches[0]
	assert.Equal(t, "Origin Company", b.Header.CompanyName)
	assert.Equal(t, "PPD", b.Header.StandardEntryClassCode())

	require.Len(t, b.Entries, 1)
	e := b.Entries[0]
	assert.Equal(t, "27", e.TransactionCode)
	assert.Equal(t, "231380104", e.RoutingNumber)
	assert.Equal(t, 10000, e.Amount)
	assert.Equal(t, 10000, f.Control.DebitTotal)
}

func TestToFile_nil(t *testing.T) {
	t.Parallel()

	_, err := ToFile(nil)
	require.Error(t, err)
}

func TestDataAfterCode(t *testing.T) {
	t.Parallel()

	a := ach.NewAddendum("99")
	a.PaymentData = "R01 trailing detail "
	assert.Equal(t, "trailing detail", dataAfterCode(a))

	a.PaymentData = "R01"
	assert.Empty(t, dataAfterCode(a))
}
