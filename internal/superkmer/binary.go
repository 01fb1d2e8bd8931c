package superkmer

import (
	"encoding/binary"
	"fmt"
)

// RecordSize is the number of bytes in a binary Superkmer record: start
// (uint64), mint (uint32), size, mpos and rc (one byte each), little-endian.
const RecordSize = 15

// MarshalBinary implements encoding.BinaryMarshaler.
func (s Superkmer) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, RecordSize))
}

// AppendBinary appends the binary record of s to b.
func (s Superkmer) AppendBinary(b []byte) ([]byte, error) {
	if s.Start < 0 {
		return b, fmt.Errorf("negative start %d", s.Start)
	}
	b = binary.LittleEndian.AppendUint64(b, uint64(s.Start))
	b = binary.LittleEndian.AppendUint32(b, s.Mint)
	b = append(b, s.Size, s.MPos, 0)
	if s.RC {
		b[len(b)-1] = 1
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Superkmer) UnmarshalBinary(data []byte) error {
	if len(data) != RecordSize {
		return fmt.Errorf("superkmer record is %d bytes, want %d", len(data), RecordSize)
	}
	if data[14] > 1 {
		return fmt.Errorf("invalid rc flag %d", data[14])
	}
	*s = Superkmer{
		Start: int(binary.LittleEndian.Uint64(data[0:8])),
		Mint:  binary.LittleEndian.Uint32(data[8:12]),
		Size:  data[12],
		MPos:  data[13],
		RC:    data[14] == 1,
	}
	return nil
}
