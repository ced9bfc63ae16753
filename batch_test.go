package ach

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_totals(t *testing.T) {
	t.Parallel()

	b := NewBatch()
	b.AddEntry(&EntryDetail{TransactionCode: "27", RoutingNumber: "076401251", Amount: 10000})
	b.AddEntry(&EntryDetail{TransactionCode: "22", RoutingNumber: "231380104", Amount: 2500})
	b.Entries[1].AddAddendum(NewAddendum("05"))

	debit, credit, hash, count := b.totals()
	assert.Equal(t, 10000, debit)
	assert.Equal(t, 2500, credit)
	assert.Equal(t, 7640125+23138010, hash)
	assert.Equal(t, 3, count)
}

func TestBatch_refreshControl(t *testing.T) {
	t.Parallel()

	b := NewBatch()
	b.Header.ServiceClassCode = 225
	b.Header.OriginatingDFIIdentification = "07640125"
	b.Header.BatchNumber = 3
	b.Header.SetCompanyIdentification("1123456789")
	b.AddEntry(&EntryDetail{TransactionCode: "27", RoutingNumber: "076401251", Amount: 10000})

	// Stale values from a previous render must be overwritten.
	b.Control.DebitTotal = 999999
	b.Control.EntryCount = 50

	b.refreshControl()
	assert.Equal(t, 225, b.Control.ServiceClassCode)
	assert.Equal(t, 1, b.Control.EntryCount)
	assert.Equal(t, 7640125, b.Control.EntryHash)
	assert.Equal(t, 10000, b.Control.DebitTotal)
	assert.Equal(t, 0, b.Control.CreditTotal)
	assert.Equal(t, "1123456789", b.Control.CompanyIdentification)
	assert.Equal(t, "07640125", b.Control.OriginatingDFIIdentification)
	assert.Equal(t, 3, b.Control.BatchNumber)
}

func TestBatch_records(t *testing.T) {
	t.Parallel()

	b := NewBatch()
	b.Header.EffectiveEntryDate = time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)
	e := &EntryDetail{TransactionCode: "22", RoutingNumber: "076401251", Amount: 100}
	e.AddAddendum(NewAddendum("05"))
	e.AddAddendum(NewAddendum("05"))
	b.AddEntry(e)
	b.AddEntry(&EntryDetail{TransactionCode: "27", RoutingNumber: "076401251", Amount: 200})

	recs := b.records()
	require.Len(t, recs, 6)
	assert.Equal(t, byte('5'), recs[0].achLine()[0])
	assert.Equal(t, byte('6'), recs[1].achLine()[0])
	assert.Equal(t, byte('7'), recs[2].achLine()[0])
	assert.Equal(t, byte('7'), recs[3].achLine()[0])
	assert.Equal(t, byte('6'), recs[4].achLine()[0])
	assert.Equal(t, byte('8'), recs[5].achLine()[0])
}

func TestBatchControl_achLine(t *testing.T) {
	t.Parallel()

	t.Run("defaults service class to 200", func(t *testing.T) {
		t.Parallel()
		c := &BatchControl{}
		line := c.achLine()
		require.Len(t, line, recordLength)
		assert.Equal(t, "8200", line[:4])
	})

	t.Run("renders derived totals at position", func(t *testing.T) {
		t.Parallel()
		c := &BatchControl{
			ServiceClassCode:             225,
			EntryCount:                   3,
			EntryHash:                    7640125,
			DebitTotal:                   10000,
			CreditTotal:                  2500,
			CompanyIdentification:        "1123456789",
			OriginatingDFIIdentification: "07640125",
			BatchNumber:                  1,
		}
		line := c.achLine()
		require.Len(t, line, recordLength)
		assert.Equal(t, "000003", line[4:10])
		assert.Equal(t, "0007640125", line[10:20])
		assert.Equal(t, "000000010000", line[20:32])
		assert.Equal(t, "000000002500", line[32:44])
		assert.Equal(t, "1123456789", line[44:54])
		assert.Equal(t, "07640125", line[79:87])
		assert.Equal(t, "0000001", line[87:94])
	})
}

func TestFileControl_achLine(t *testing.T) {
	t.Parallel()

	c := &FileControl{
		BatchCount:  1,
		BlockCount:  1,
		EntryCount:  2,
		EntryHash:   30778135,
		DebitTotal:  10000,
		CreditTotal: 2500,
		Filler:      "REJECT01",
	}
	line := c.achLine()
	require.Len(t, line, recordLength)
	assert.Equal(t, "9000001000001000000020030778135", line[:31])
	assert.Equal(t, "REJECT01", line[55:63])
}

func TestNinesRecord(t *testing.T) {
	t.Parallel()

	line := ninesRecord{}.achLine()
	require.Len(t, line, recordLength)
	assert.True(t, isNinesPadding(line))
}
