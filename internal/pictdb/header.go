package pictdb

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// headerSize is the fixed on-disk size of a header record, H in spec terms:
// db_name(32) + version(4) + numFiles(4) + maxFiles(4) + 4*res(2 each, 8) +
// reserved(12) = 64 bytes.
const headerSize = 64

// header is the single per-file header record, at offset 0.
type header struct {
	name     string
	version  uint32
	numFiles uint32
	maxFiles uint32
	thumbW   uint16
	thumbH   uint16
	smallW   uint16
	smallH   uint16
}

func headerFromBytes(b []byte) (header, error) {
	if len(b) != headerSize {
		return header{}, fmt.Errorf("header record of length %d is not the expected %d", len(b), headerSize)
	}
	h := header{}
	h.name = cStringFromBytes(b[0:32])
	h.version = binary.LittleEndian.Uint32(b[32:36])
	h.numFiles = binary.LittleEndian.Uint32(b[36:40])
	h.maxFiles = binary.LittleEndian.Uint32(b[40:44])
	h.thumbW = binary.LittleEndian.Uint16(b[44:46])
	h.thumbH = binary.LittleEndian.Uint16(b[46:48])
	h.smallW = binary.LittleEndian.Uint16(b[48:50])
	h.smallH = binary.LittleEndian.Uint16(b[50:52])
	// b[52:64] is reserved padding.
	return h, nil
}

func (h header) toBytes() []byte {
	b := make([]byte, headerSize)
	cStringToBytes(b[0:32], h.name)
	binary.LittleEndian.PutUint32(b[32:36], h.version)
	binary.LittleEndian.PutUint32(b[36:40], h.numFiles)
	binary.LittleEndian.PutUint32(b[40:44], h.maxFiles)
	binary.LittleEndian.PutUint16(b[44:46], h.thumbW)
	binary.LittleEndian.PutUint16(b[46:48], h.thumbH)
	binary.LittleEndian.PutUint16(b[48:50], h.smallW)
	binary.LittleEndian.PutUint16(b[50:52], h.smallH)
	return b
}

// writeHeader performs the positioned write of the header (§4.1): seek to 0,
// apply deltaNumFiles and bumpVersion to the in-memory header, then write H
// bytes. Apart from GarbageCollect copying the source's db_version into the
// rebuilt header, this is the only place db_version and num_files are
// mutated.
func (db *DB) writeHeader(deltaNumFiles int32, bumpVersion bool) error {
	if bumpVersion {
		db.header.version++
	}
	db.header.numFiles = uint32(int32(db.header.numFiles) + deltaNumFiles)

	if _, err := db.file.Seek(0, 0); err != nil {
		return newErr("writeHeader", KindIO, err)
	}
	if _, err := db.file.Write(db.header.toBytes()); err != nil {
		return newErr("writeHeader", KindIO, err)
	}
	if bumpVersion {
		setPictdbXattr(db.file, db.header.name, db.header.version)
	}
	return nil
}

func readHeader(f *os.File) (header, error) {
	b := make([]byte, headerSize)
	if _, err := f.Seek(0, 0); err != nil {
		return header{}, newErr("readHeader", KindIO, err)
	}
	if _, err := io.ReadFull(f, b); err != nil {
		return header{}, newErr("readHeader", KindIO, err)
	}
	return headerFromBytes(b)
}
