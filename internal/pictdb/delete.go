package pictdb

// Delete marks the slot holding pictID EMPTY without reclaiming its
// payload bytes (§4.5 do_delete); reclamation only happens via GarbageCollect.
func (db *DB) Delete(pictID string) error {
	if len(pictID) == 0 || len(pictID) > MaxPicID {
		return newErr("Delete", KindInvalidPicID, nil)
	}

	i := db.lookup(pictID)
	if i < 0 {
		return newErr("Delete", KindInvalidPicID, nil)
	}

	db.markOccupied(i, false)

	if err := db.writeSlot(i); err != nil {
		return err
	}
	if err := db.writeHeader(-1, true); err != nil {
		return err
	}
	return nil
}
