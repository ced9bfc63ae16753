package ach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryDetail_Direction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   string
		credit bool
		debit  bool
	}{
		{"22", true, false},
		{"32", true, false},
		{"54", true, false},
		{"27", false, true},
		{"37", false, true},
		{"26", false, true},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run("code "+tt.code, func(t *testing.T) {
			t.Parallel()
			e := &EntryDetail{TransactionCode: tt.code}
			assert.Equal(t, tt.credit, e.IsCredit())
			assert.Equal(t, tt.debit, e.IsDebit())
		})
	}
}

func TestEntryDetail_RecordsCount(t *testing.T) {
	t.Parallel()

	e := &EntryDetail{}
	assert.Equal(t, 1, e.RecordsCount())

	e.AddAddendum(NewAddendum("05"))
	e.AddAddendum(NewAddendum("05"))
	assert.Equal(t, 3, e.RecordsCount())
}

func TestEntryDetail_hash(t *testing.T) {
	t.Parallel()

	t.Run("uses the first eight routing digits", func(t *testing.T) {
		t.Parallel()
		e := &EntryDetail{RoutingNumber: "076401251"}
		assert.Equal(t, 7640125, e.hash())
	})

	t.Run("short routing numbers hash as-is", func(t *testing.T) {
		t.Parallel()
		e := &EntryDetail{RoutingNumber: "1234"}
		assert.Equal(t, 1234, e.hash())
	})
}

func TestEntryDetail_roundTrip(t *testing.T) {
	t.Parallel()

	e := &EntryDetail{
		TransactionCode:              "27",
		RoutingNumber:                "076401251",
		AccountNumber:                "123456789",
		Amount:                       10000,
		IndividualIDNumber:           "EMP-0042",
		IndividualName:               "Jane Receiver",
		OriginatingDFIIdentification: "07640125",
		TraceNumber:                  15,
	}
	line := e.achLine()
	require.Len(t, line, recordLength)
	assert.Equal(t, "627", line[:3])
	assert.Equal(t, "0000010000", line[29:39])
	assert.Equal(t, byte('0'), line[78])

	var parsed EntryDetail
	parsed.parse(line)
	assert.Equal(t, *e, parsed)
}

func TestEntryDetail_achLineAddendaIndicator(t *testing.T) {
	t.Parallel()

	e := &EntryDetail{TransactionCode: "22", RoutingNumber: "076401251"}
	e.AddAddendum(NewAddendum("05"))
	assert.Equal(t, byte('1'), e.achLine()[78])
}
