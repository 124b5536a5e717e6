package pictdb

// Insert inserts payload under pictID into the first free slot of db,
// deduplicating identical content and rejecting duplicate ids (§4.5
// do_insert).
func (db *DB) Insert(payload []byte, pictID string) error {
	if len(pictID) == 0 || len(pictID) > MaxPicID {
		return newErr("Insert", KindInvalidPicID, nil)
	}
	if db.header.numFiles >= db.header.maxFiles {
		return newErr("Insert", KindFullDatabase, nil)
	}

	k := db.allocate()
	if k < 0 {
		return newErr("Insert", KindFullDatabase, nil)
	}

	sum := db.hasher.Sum(payload)
	db.table[k] = slot{
		pictID: pictID,
		sha:    sum,
		size:   [nbRes]uint32{Orig: uint32(len(payload))},
	}
	db.occupied.Set(uint(k))

	outcome, err := db.dedup(k)
	if err != nil {
		return err
	}
	if outcome == outcomeDuplicateID {
		return newErr("Insert", KindDuplicateID, nil)
	}

	if outcome == outcomeFresh {
		width, height, err := db.codec.Dimensions(payload)
		if err != nil {
			db.markOccupied(k, false)
			return newErr("Insert", KindCodec, err)
		}
		db.table[k].origW = width
		db.table[k].origH = height

		offset, err := db.appendPayload(payload)
		if err != nil {
			db.markOccupied(k, false)
			return err
		}
		db.table[k].offset[Orig] = uint64(offset)
		db.table[k].offset[Thumb] = 0
		db.table[k].offset[Small] = 0
		db.table[k].size[Thumb] = 0
		db.table[k].size[Small] = 0
	}

	db.markOccupied(k, true)

	if err := db.writeHeader(1, true); err != nil {
		return err
	}
	if err := db.writeSlot(k); err != nil {
		return err
	}

	return nil
}
