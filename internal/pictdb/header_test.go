package pictdb

import (
	"image/color"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := header{
		name:     "mydb.pdb",
		version:  7,
		numFiles: 3,
		maxFiles: 100,
		thumbW:   64,
		thumbH:   48,
		smallW:   256,
		smallH:   192,
	}
	b := h.toBytes()
	if len(b) != headerSize {
		t.Fatalf("toBytes length = %d, want %d", len(b), headerSize)
	}
	got, err := headerFromBytes(b)
	if err != nil {
		t.Fatalf("headerFromBytes: %v", err)
	}
	if got != h {
		t.Fatalf("round-tripped header = %+v, want %+v", got, h)
	}
}

func TestHeaderFromBytesRejectsWrongLength(t *testing.T) {
	_, err := headerFromBytes(make([]byte, headerSize-1))
	if err == nil {
		t.Fatalf("expected error for undersized header buffer")
	}
}

func TestWriteHeaderAppliesDeltaAndBump(t *testing.T) {
	name := tempDBName(t, "db.pdb")
	db, err := Create(name, CreateParams{MaxFiles: 5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer db.Close()

	versionBefore := db.header.version
	if err := db.writeHeader(2, true); err != nil {
		t.Fatalf("writeHeader: %v", err)
	}
	if db.header.numFiles != 2 {
		t.Fatalf("numFiles = %d, want 2", db.header.numFiles)
	}
	if db.header.version != versionBefore+1 {
		t.Fatalf("version = %d, want %d", db.header.version, versionBefore+1)
	}

	if err := db.writeHeader(-1, false); err != nil {
		t.Fatalf("writeHeader: %v", err)
	}
	if db.header.numFiles != 1 {
		t.Fatalf("numFiles = %d, want 1", db.header.numFiles)
	}
	if db.header.version != versionBefore+1 {
		t.Fatalf("version should not bump when bumpVersion is false, got %d", db.header.version)
	}
}

func TestCreateDoesNotBumpVersion(t *testing.T) {
	name := tempDBName(t, "db.pdb")
	db, err := Create(name, CreateParams{MaxFiles: 5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer db.Close()
	if db.Version() != 0 {
		t.Fatalf("Version() = %d, want 0 immediately after Create", db.Version())
	}
}

func TestInsertBumpsVersion(t *testing.T) {
	name := tempDBName(t, "db.pdb")
	db, err := Create(name, CreateParams{MaxFiles: 5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer db.Close()

	payload := makeJPEG(t, 10, 10, color.White)
	if err := db.Insert(payload, "pic1"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if db.Version() != 1 {
		t.Fatalf("Version() = %d, want 1 after first insert", db.Version())
	}
}
