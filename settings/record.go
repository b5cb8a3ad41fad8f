package settings

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Record identity and version. A record starts with the class id and version,
// followed by the fields in declaration order, little endian.
var (
	RecordClassID = uuid.MustParse("B45089A9-B372-460B-B145-80E6EBF107C3")
)

const (
	RecordMajorVersion uint16 = 1
	RecordMinorVersion uint16 = 0

	headerSize = 16 + 2 + 2
	bodySize   = 4 + 4 + 8 + 1 + 1
	recordSize = headerSize + bodySize
)

var (
	ErrUnsupportedVersion = errors.New("unsupported settings record")
	ErrCorruptRecord      = errors.New("corrupt settings record")
)

type recordBody struct {
	RowCount    uint32
	ColumnCount uint32
	CellSize    uint64
	CreateGroup uint8
	CreateSlab  uint8
}

// MarshalBinary encodes the settings as a versioned record.
func (s Settings) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, recordSize))
	buf.Write(RecordClassID[:])

	body := recordBody{
		RowCount:    s.RowCount,
		ColumnCount: s.ColumnCount,
		CellSize:    math.Float64bits(s.CellSize),
		CreateGroup: boolByte(s.CreateGroup),
		CreateSlab:  boolByte(s.CreateSlab),
	}
	for _, v := range []any{RecordMajorVersion, RecordMinorVersion, body} {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a record written by MarshalBinary.
// Records from a newer major version are rejected; newer minor versions may
// append fields, which are ignored.
func (s *Settings) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("%w: %d bytes", ErrCorruptRecord, len(data))
	}

	classID, err := uuid.FromBytes(data[:16])
	if err != nil || classID != RecordClassID {
		return fmt.Errorf("%w: unknown class %s", ErrUnsupportedVersion, classID)
	}

	r := bytes.NewReader(data[16:])
	var major, minor uint16
	if err := binary.Read(r, binary.LittleEndian, &major); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &minor); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if major != RecordMajorVersion {
		return fmt.Errorf("%w: version %d.%d", ErrUnsupportedVersion, major, minor)
	}

	var body recordBody
	if err := binary.Read(r, binary.LittleEndian, &body); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}

	*s = Settings{
		RowCount:    body.RowCount,
		ColumnCount: body.ColumnCount,
		CellSize:    math.Float64frombits(body.CellSize),
		CreateGroup: body.CreateGroup != 0,
		CreateSlab:  body.CreateSlab != 0,
	}
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
