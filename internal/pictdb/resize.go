package pictdb

// lazilyResize materialises variant res for slot i if it hasn't been
// already (§4.4). Idempotent: a call on Orig, or on an already-materialised
// variant, succeeds immediately without touching the file.
func (db *DB) lazilyResize(res Resolution, i int) error {
	if res == Orig || db.table[i].offset[res] != 0 {
		return nil
	}

	orig, err := db.readPayload(int64(db.table[i].offset[Orig]), db.table[i].size[Orig])
	if err != nil {
		return err
	}

	maxW, maxH := db.targetDimensions(res)
	resized, err := db.codec.Resize(orig, maxW, maxH)
	if err != nil {
		return err
	}

	offset, err := db.appendPayload(resized)
	if err != nil {
		return err
	}

	db.table[i].offset[res] = uint64(offset)
	db.table[i].size[res] = uint32(len(resized))

	if err := db.writeSlot(i); err != nil {
		return err
	}
	if err := db.writeHeader(0, false); err != nil {
		return err
	}
	return nil
}

// targetDimensions returns the configured (width, height) ceiling for res.
func (db *DB) targetDimensions(res Resolution) (uint16, uint16) {
	switch res {
	case Thumb:
		return db.header.thumbW, db.header.thumbH
	case Small:
		return db.header.smallW, db.header.smallH
	default:
		return 0, 0
	}
}
