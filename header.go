package ach

import (
	"strings"
	"time"
)

// FileHeader is the single '1' record at the top of a NACHA file. It
// identifies the transmission endpoints and carries the creation
// timestamp the settlement date inference keys off.
type FileHeader struct {
	ImmediateDestination     string
	ImmediateOrigin          string
	TransmissionDatetime     time.Time
	FileIDModifier           string
	ImmediateDestinationName string
	ImmediateOriginName      string
	ReferenceCode            string
}

// parse populates the header from a '1' line. Later '1' lines in a file
// overwrite earlier ones.
func (h *FileHeader) parse(line string) {
	h.ImmediateDestination = strings.TrimSpace(line[3:13])
	h.ImmediateOrigin = strings.TrimSpace(line[13:23])
	h.TransmissionDatetime = time.Date(
		2000+achInt(line[23:25]),
		time.Month(achInt(line[25:27])),
		achInt(line[27:29]),
		achInt(line[29:31]),
		achInt(line[31:33]),
		0, 0, time.UTC,
	)
	h.FileIDModifier = line[33:34]
	h.ImmediateDestinationName = strings.TrimSpace(line[40:63])
	h.ImmediateOriginName = strings.TrimSpace(line[63:86])
	h.ReferenceCode = strings.TrimSpace(line[86:94])
}

func (h *FileHeader) achLine() string {
	modifier := h.FileIDModifier
	if modifier == "" {
		modifier = "A"
	}

	var b strings.Builder
	b.Grow(recordLength)
	b.WriteString("101") // type code, priority code
	b.WriteString(rightJustify(h.ImmediateDestination, 10))
	b.WriteString(rightJustify(h.ImmediateOrigin, 10))
	b.WriteString(h.TransmissionDatetime.Format("0601021504"))
	b.WriteString(leftJustify(modifier, 1))
	b.WriteString("094101") // record size, blocking factor, format code
	b.WriteString(leftJustify(h.ImmediateDestinationName, 23))
	b.WriteString(leftJustify(h.ImmediateOriginName, 23))
	b.WriteString(leftJustify(h.ReferenceCode, 8))
	return b.String()
}
