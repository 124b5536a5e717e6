package pictdb

// Read returns the payload bytes for pictID at the given resolution,
// lazily materialising that variant if it has never been read before
// (§4.5 do_read). Re-running dedup after a lazy resize propagates the
// newly materialised variant to any alias slots (spec.md Design Notes).
func (db *DB) Read(pictID string, res Resolution) ([]byte, error) {
	i := db.lookup(pictID)
	if i < 0 {
		return nil, newErr("Read", KindFileNotFound, nil)
	}

	origOffset := db.table[i].offset[Orig]

	if db.table[i].offset[res] == 0 {
		if err := db.lazilyResize(res, i); err != nil {
			return nil, err
		}
		if _, err := db.dedup(i); err != nil {
			return nil, err
		}
	}

	// lazilyResize leaves offset[Orig] alone, but the re-run dedup pass
	// zeroes it in memory when it finds no alias (its fresh branch), so it
	// is restored here before the payload read (spec.md §4.5).
	db.table[i].offset[Orig] = origOffset

	return db.readPayload(int64(db.table[i].offset[res]), db.table[i].size[res])
}
