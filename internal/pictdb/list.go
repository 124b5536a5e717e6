package pictdb

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ListMode selects the rendering do_list produces.
type ListMode int

const (
	// ListStdout renders header + every NON_EMPTY slot as human-readable
	// text, matching the original print_header/print_metadata layout.
	ListStdout ListMode = iota
	// ListJSON renders {"Pictures": [pict_id, ...]}.
	ListJSON
)

// listing is the JSON shape produced by List in ListJSON mode.
type listing struct {
	Pictures []string `json:"Pictures"`
}

// List renders the database per mode (§4.5 do_list).
func (db *DB) List(mode ListMode) (string, error) {
	switch mode {
	case ListJSON:
		l := listing{Pictures: []string{}}
		for _, s := range db.table {
			if s.valid() {
				l.Pictures = append(l.Pictures, s.pictID)
			}
		}
		b, err := json.Marshal(l)
		if err != nil {
			return "", newErr("List", KindIO, err)
		}
		return string(b), nil
	case ListStdout:
		return db.renderStdout(), nil
	default:
		return "", newErr("List", KindInvalidArgument, nil)
	}
}

func (db *DB) renderStdout() string {
	var b strings.Builder
	fmt.Fprintf(&b, "*****************************************\n")
	fmt.Fprintf(&b, "**********DATABASE HEADER START**********\n")
	fmt.Fprintf(&b, "DB NAME: %-31s\n", db.header.name)
	fmt.Fprintf(&b, "VERSION: %d\n", db.header.version)
	fmt.Fprintf(&b, "IMAGE COUNT: %d\t\tMAX IMAGES: %d\n", db.header.numFiles, db.header.maxFiles)
	fmt.Fprintf(&b, "THUMBNAIL: %d x %d\tSMALL: %d x %d\n",
		db.header.thumbW, db.header.thumbH, db.header.smallW, db.header.smallH)
	fmt.Fprintf(&b, "***********DATABASE HEADER END***********\n")
	fmt.Fprintf(&b, "*****************************************\n")

	// Best-effort OS-level stat/xattr surfacing, mirroring the tags
	// setPictdbXattr writes on create, on every version-bumping header
	// write and at the end of gc; absent on
	// filesystems/platforms that don't support them.
	if ft, err := db.Times(); err == nil {
		fmt.Fprintf(&b, "MOD TIME: %s\t\tACCESS TIME: %s\n",
			ft.ModTime.Format(time.RFC3339), ft.AccessTime.Format(time.RFC3339))
	}
	if xattrName, xattrVersion, ok := readPictdbXattr(db.name); ok {
		fmt.Fprintf(&b, "XATTR NAME: %s\t\tXATTR VERSION: %s\n", xattrName, xattrVersion)
	}

	any := false
	for _, s := range db.table {
		if !s.valid() {
			continue
		}
		any = true
		fmt.Fprintf(&b, "PICTURE ID: %s\n", s.pictID)
		fmt.Fprintf(&b, "SHA: %s\n", hex.EncodeToString(s.sha[:]))
		fmt.Fprintf(&b, "VALID: %d\n", s.isValid)
		fmt.Fprintf(&b, "OFFSET ORIG.: %d\t\tSIZE ORIG.: %d\n", s.offset[Orig], s.size[Orig])
		fmt.Fprintf(&b, "OFFSET THUMB.: %d\t\tSIZE THUMB.: %d\n", s.offset[Thumb], s.size[Thumb])
		fmt.Fprintf(&b, "OFFSET SMALL: %d\t\tSIZE SMALL: %d\n", s.offset[Small], s.size[Small])
		fmt.Fprintf(&b, "ORIGINAL: %d x %d\n", s.origW, s.origH)
		fmt.Fprintf(&b, "*****************************************\n")
	}
	if !any {
		b.WriteString("<< empty database >>\n")
	}
	return b.String()
}
