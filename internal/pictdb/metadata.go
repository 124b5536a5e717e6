package pictdb

import (
	"encoding/binary"
	"fmt"
)

// slotSize is the fixed on-disk size of a metadata record, M in spec terms:
// pictID(128) + sha(32) + resOrig(8) + size[3](12) + offset[3](24) +
// isValid(2) + reserved(2) = 208 bytes.
const slotSize = 208

// validity tags for slot.isValid, matching the original EMPTY/NON_EMPTY.
const (
	tagEmpty    uint16 = 0
	tagNonEmpty uint16 = 1
)

// slot is one fixed-size metadata record, living at byte offset
// headerSize + i*slotSize in the file (§3).
type slot struct {
	pictID   string
	sha      [shaSize]byte
	origW    uint32
	origH    uint32
	size     [nbRes]uint32
	offset   [nbRes]uint64
	isValid  uint16
}

func (s slot) valid() bool {
	return s.isValid == tagNonEmpty
}

func slotFromBytes(b []byte) (slot, error) {
	if len(b) != slotSize {
		return slot{}, fmt.Errorf("metadata record of length %d is not the expected %d", len(b), slotSize)
	}
	s := slot{}
	s.pictID = cStringFromBytes(b[0:128])
	copy(s.sha[:], b[128:160])
	s.origW = binary.LittleEndian.Uint32(b[160:164])
	s.origH = binary.LittleEndian.Uint32(b[164:168])
	s.size[Thumb] = binary.LittleEndian.Uint32(b[168:172])
	s.size[Small] = binary.LittleEndian.Uint32(b[172:176])
	s.size[Orig] = binary.LittleEndian.Uint32(b[176:180])
	s.offset[Thumb] = binary.LittleEndian.Uint64(b[180:188])
	s.offset[Small] = binary.LittleEndian.Uint64(b[188:196])
	s.offset[Orig] = binary.LittleEndian.Uint64(b[196:204])
	s.isValid = binary.LittleEndian.Uint16(b[204:206])
	// b[206:208] is reserved padding.
	return s, nil
}

func (s slot) toBytes() []byte {
	b := make([]byte, slotSize)
	cStringToBytes(b[0:128], s.pictID)
	copy(b[128:160], s.sha[:])
	binary.LittleEndian.PutUint32(b[160:164], s.origW)
	binary.LittleEndian.PutUint32(b[164:168], s.origH)
	binary.LittleEndian.PutUint32(b[168:172], s.size[Thumb])
	binary.LittleEndian.PutUint32(b[172:176], s.size[Small])
	binary.LittleEndian.PutUint32(b[176:180], s.size[Orig])
	binary.LittleEndian.PutUint64(b[180:188], s.offset[Thumb])
	binary.LittleEndian.PutUint64(b[188:196], s.offset[Small])
	binary.LittleEndian.PutUint64(b[196:204], s.offset[Orig])
	binary.LittleEndian.PutUint16(b[204:206], s.isValid)
	return b
}

// slotOffset returns the absolute file offset of slot i, per §3: slot i
// lives at H + i*M.
func (db *DB) slotOffset(i int) int64 {
	return int64(headerSize) + int64(i)*int64(slotSize)
}

// dataRegionStart returns H + max_files*M, the first valid payload offset
// (I6).
func (db *DB) dataRegionStart() int64 {
	return int64(headerSize) + int64(db.header.maxFiles)*int64(slotSize)
}

// writeSlot performs the positioned write of metadata slot i (§4.1).
func (db *DB) writeSlot(i int) error {
	if _, err := db.file.Seek(db.slotOffset(i), 0); err != nil {
		return newErr("writeSlot", KindIO, err)
	}
	if _, err := db.file.Write(db.table[i].toBytes()); err != nil {
		return newErr("writeSlot", KindIO, err)
	}
	return nil
}

// lookup scans the table in ascending index order for the first NON_EMPTY
// slot with the given pict_id (§4.2). Returns -1 if none matches.
func (db *DB) lookup(pictID string) int {
	for i, s := range db.table {
		if s.valid() && s.pictID == pictID {
			return i
		}
	}
	return -1
}

// allocate returns the lowest-index EMPTY slot, or -1 if the table is full
// (§4.2). Backed by a bitset mirroring occupancy so the common case (a
// database nowhere near full) doesn't need a full linear scan.
func (db *DB) allocate() int {
	i, ok := db.occupied.NextClear(0)
	if !ok || int(i) >= len(db.table) {
		return -1
	}
	return int(i)
}

// markOccupied flips the occupancy bitset and slot tag together, keeping
// them in lockstep; see (I1).
func (db *DB) markOccupied(i int, occupied bool) {
	if occupied {
		db.table[i].isValid = tagNonEmpty
		db.occupied.Set(uint(i))
	} else {
		db.table[i].isValid = tagEmpty
		db.occupied.Clear(uint(i))
	}
}
