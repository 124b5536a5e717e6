package pictdb

import "os"

// GarbageCollect rebuilds db into a fresh file at tempName containing only
// surviving pictures, then atomically replaces the original (§4.5 do_gc).
// db is closed and invalidated by a successful call; callers must not use it
// afterwards. If tempName is empty, a uuid-suffixed scratch name next to db
// is generated, so concurrent GC calls across different databases never
// collide on a shared temp path.
func (db *DB) GarbageCollect(tempName string) error {
	if tempName == "" {
		tempName = db.scratchTempName()
	}

	fresh, err := Create(tempName, CreateParams{
		MaxFiles: int(db.header.maxFiles),
		ThumbRes: [2]uint16{db.header.thumbW, db.header.thumbH},
		SmallRes: [2]uint16{db.header.smallW, db.header.smallH},
	})
	if err != nil {
		return err
	}

	for _, s := range db.table {
		if !s.valid() {
			continue
		}

		payload, err := db.readPayload(int64(s.offset[Orig]), s.size[Orig])
		if err != nil {
			fresh.Close()
			os.Remove(tempName)
			return err
		}
		if err := fresh.Insert(payload, s.pictID); err != nil {
			fresh.Close()
			os.Remove(tempName)
			return err
		}

		newIdx := fresh.lookup(s.pictID)
		for j := Resolution(0); j < nbRes; j++ {
			if s.offset[j] == 0 {
				continue
			}
			if err := fresh.lazilyResize(j, newIdx); err != nil {
				fresh.Close()
				os.Remove(tempName)
				return err
			}
		}
	}

	fresh.header.name = db.header.name
	fresh.header.version = db.header.version
	if err := fresh.writeHeader(0, false); err != nil {
		fresh.Close()
		os.Remove(tempName)
		return err
	}
	setPictdbXattr(fresh.file, fresh.header.name, fresh.header.version)

	originalName := db.name
	if err := db.Close(); err != nil {
		fresh.Close()
		os.Remove(tempName)
		return err
	}
	if err := fresh.Close(); err != nil {
		os.Remove(tempName)
		return err
	}

	if err := os.Remove(originalName); err != nil {
		return newErr("GarbageCollect", KindIO, err)
	}
	if err := os.Rename(tempName, originalName); err != nil {
		return newErr("GarbageCollect", KindIO, err)
	}

	return nil
}

// scratchTempName builds a short uuid-suffixed scratch path next to db,
// truncating db's own name as needed so the result still respects
// MaxDBName: Create rejects any name longer than that (§3 db_name), and an
// untruncated "<db.name>.<uuid>.tmp" is long enough to always trip it.
func (db *DB) scratchTempName() string {
	suffix := "." + newUUID()[:8] + ".tmp"
	base := db.name
	if max := MaxDBName - len(suffix); len(base) > max {
		if max < 0 {
			max = 0
		}
		base = base[:max]
	}
	return base + suffix
}
