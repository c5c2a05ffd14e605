package report

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/hupe1980/gopatterns/codec"
	"github.com/hupe1980/gopatterns/internal/compress"
)

const (
	magic   = "GPRP"
	version = 1
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

func checksum(payload []byte) uint32 {
	return crc32.Checksum(payload, castagnoli)
}

// Encode serializes s.
//
// Format:
//
//	Magic (4 bytes) "GPRP"
//	Version (4 bytes)
//	Checksum (4 bytes) - CRC32C of payload
//	CodecLen (1 byte)
//	Codec (bytes)
//	Compression (1 byte)
//	PayloadLength (4 bytes)
//	Payload (bytes)
func Encode(s Snapshot, c codec.Codec, t compress.Type) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}

	raw, err := c.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("report: marshal: %w", err)
	}
	payload, err := compress.Encode(t, raw)
	if err != nil {
		return nil, fmt.Errorf("report: compress: %w", err)
	}

	name := c.Name()
	if len(name) > 255 {
		return nil, fmt.Errorf("report: codec name too long: %q", name)
	}

	out := make([]byte, 0, 4+4+4+1+len(name)+1+4+len(payload))
	out = append(out, magic...)
	out = binary.LittleEndian.AppendUint32(out, version)
	out = binary.LittleEndian.AppendUint32(out, checksum(payload))
	out = append(out, byte(len(name)))
	out = append(out, name...)
	out = append(out, byte(t))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	out = append(out, payload...)
	return out, nil
}

// Header describes how a report blob was encoded.
type Header struct {
	Version     uint32
	Codec       string
	Compression compress.Type
}

// Decode parses a blob produced by Encode.
func Decode(data []byte) (*Snapshot, Header, error) {
	var h Header

	if len(data) < 12 {
		return nil, h, ErrTruncated
	}
	if string(data[:4]) != magic {
		return nil, h, ErrBadMagic
	}
	h.Version = binary.LittleEndian.Uint32(data[4:])
	if h.Version != version {
		return nil, h, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, h.Version, version)
	}
	sum := binary.LittleEndian.Uint32(data[8:])

	rest := data[12:]
	if len(rest) < 1 {
		return nil, h, ErrTruncated
	}
	nameLen := int(rest[0])
	rest = rest[1:]
	if len(rest) < nameLen+1+4 {
		return nil, h, ErrTruncated
	}
	h.Codec = string(rest[:nameLen])
	rest = rest[nameLen:]
	h.Compression = compress.Type(rest[0])
	payloadLen := binary.LittleEndian.Uint32(rest[1:])
	rest = rest[5:]
	if uint32(len(rest)) < payloadLen {
		return nil, h, ErrTruncated
	}
	payload := rest[:payloadLen]

	if checksum(payload) != sum {
		return nil, h, ErrChecksumMismatch
	}

	c, ok := codec.ByName(h.Codec)
	if !ok {
		return nil, h, fmt.Errorf("%w: %q", ErrUnknownCodec, h.Codec)
	}

	raw, err := compress.Decode(h.Compression, payload)
	if err != nil {
		return nil, h, fmt.Errorf("report: decompress: %w", err)
	}

	var s Snapshot
	if err := c.Unmarshal(raw, &s); err != nil {
		return nil, h, fmt.Errorf("report: unmarshal: %w", err)
	}
	return &s, h, nil
}
