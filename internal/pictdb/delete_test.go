package pictdb

import (
	"image/color"
	"testing"
)

func TestDeleteRemovesFromLookupAndDecrementsCount(t *testing.T) {
	name := tempDBName(t, "db.pdb")
	db, err := Create(name, CreateParams{MaxFiles: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer db.Close()

	payload := makeJPEG(t, 10, 10, color.White)
	if err := db.Insert(payload, "pic1"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := db.Delete("pic1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if db.NumFiles() != 0 {
		t.Fatalf("NumFiles = %d, want 0", db.NumFiles())
	}
	if db.lookup("pic1") != -1 {
		t.Fatalf("deleted pict_id should no longer be found by lookup")
	}
}

func TestDeleteUnknownIDFails(t *testing.T) {
	name := tempDBName(t, "db.pdb")
	db, err := Create(name, CreateParams{MaxFiles: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer db.Close()

	err = db.Delete("nope")
	if err == nil {
		t.Fatalf("expected error deleting unknown pict_id")
	}
	if kind, ok := ErrorKind(err); !ok || kind != KindInvalidPicID {
		t.Fatalf("got kind %v, want INVALID_PICID", kind)
	}
}

func TestDeleteFreesSlotForReuse(t *testing.T) {
	name := tempDBName(t, "db.pdb")
	db, err := Create(name, CreateParams{MaxFiles: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer db.Close()

	a := makeJPEG(t, 10, 10, color.White)
	b := makeJPEG(t, 20, 20, color.Black)

	if err := db.Insert(a, "pic1"); err != nil {
		t.Fatalf("Insert a: %v", err)
	}
	if err := db.Delete("pic1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := db.Insert(b, "pic2"); err != nil {
		t.Fatalf("Insert b into freed slot: %v", err)
	}
	if db.NumFiles() != 1 {
		t.Fatalf("NumFiles = %d, want 1", db.NumFiles())
	}
}
