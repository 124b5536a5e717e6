package pictdb

// dedupOutcome is the tagged result of a dedup pass (§4.3), replacing the
// original's habit of signalling "content match" by returning success with
// offset[ORIG] left non-zero: the insert path branches on this tag instead
// of re-inspecting a field the dedup pass itself just wrote.
type dedupOutcome int

const (
	// outcomeFresh means no other slot shares this content or name; the
	// caller must materialise a fresh original payload.
	outcomeFresh dedupOutcome = iota
	// outcomeAliased means another slot has identical content; all three
	// variant offsets/sizes have been aliased across the pair.
	outcomeAliased
	// outcomeDuplicateID means another slot already owns this pict_id; the
	// candidate slot has been relinquished back to EMPTY.
	outcomeDuplicateID
)

// dedup runs the dedup pass (§4.3) over candidate slot k, which must
// already carry sha, pictID and size[Orig]. It is also re-run by Read after
// a lazy resize, to propagate a newly materialised variant to any other
// alias (§4.5 do_read, Design Notes).
func (db *DB) dedup(k int) (dedupOutcome, error) {
	cand := db.table[k]
	// Names are checked across the whole table before any content match,
	// so an earlier slot with identical content cannot mask a later slot
	// that already owns this pict_id.
	for i := range db.table {
		if i != k && db.table[i].valid() && db.table[i].pictID == cand.pictID {
			db.markOccupied(k, false)
			return outcomeDuplicateID, nil
		}
	}
	for i := range db.table {
		if i == k || !db.table[i].valid() {
			continue
		}
		other := db.table[i]

		if other.sha == cand.sha {
			db.aliasVariants(i, k)
			if err := db.writeHeader(0, false); err != nil {
				return outcomeAliased, err
			}
			if err := db.writeSlot(i); err != nil {
				return outcomeAliased, err
			}
			if err := db.writeSlot(k); err != nil {
				return outcomeAliased, err
			}
			return outcomeAliased, nil
		}
	}

	db.table[k].offset[Orig] = 0
	return outcomeFresh, nil
}

// aliasVariants copies each variant (offset, size) between slots i and k:
// whichever slot already has the variant wins, the slot missing it copies
// the winner, and if both already have it they're assumed to already agree
// (I4). res_orig is copied from i to k, the slot that already owned it.
func (db *DB) aliasVariants(i, k int) {
	for j := Resolution(0); j < nbRes; j++ {
		from, to := i, k
		if db.table[i].offset[j] == 0 {
			from, to = k, i
		}
		db.table[to].offset[j] = db.table[from].offset[j]
		db.table[to].size[j] = db.table[from].size[j]
	}
	db.table[k].origW = db.table[i].origW
	db.table[k].origH = db.table[i].origH
}
