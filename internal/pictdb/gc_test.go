package pictdb

import (
	"image/color"
	"strings"
	"testing"
)

// TestScratchTempNameFitsMaxDBName pins the bound scratchTempName must
// respect: Create rejects any name longer than MaxDBName (§3 db_name), so
// the generated "<base>.<uuid8>.tmp" must be truncated to fit even when
// db.name is already close to the limit.
func TestScratchTempNameFitsMaxDBName(t *testing.T) {
	name := tempDBName(t, strings.Repeat("a", MaxDBName-4)+".pdb") // exactly MaxDBName chars
	db, err := Create(name, CreateParams{MaxFiles: 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer db.Close()

	got := db.scratchTempName()
	if len(got) > MaxDBName {
		t.Fatalf("scratchTempName() = %q (%d bytes), want <= %d", got, len(got), MaxDBName)
	}
}

// TestGarbageCollectFallbackTempNameWithLongDBName reproduces the bug the
// untruncated fallback had: a db name near MaxDBName plus ".<uuid>.tmp"
// used to exceed MaxDBName, so Create(tempName, ...) always failed
// INVALID_FILENAME before gc could do anything.
func TestGarbageCollectFallbackTempNameWithLongDBName(t *testing.T) {
	name := tempDBName(t, strings.Repeat("b", MaxDBName-4)+".pdb")
	db, err := Create(name, CreateParams{MaxFiles: 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := db.GarbageCollect(""); err != nil {
		t.Fatalf("GarbageCollect with empty tempName on a near-max-length db name: %v", err)
	}
}

func TestGarbageCollectEmptyDatabaseFallbackTempName(t *testing.T) {
	name := tempDBName(t, "db.pdb")
	db, err := Create(name, CreateParams{MaxFiles: 5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := db.GarbageCollect(""); err != nil {
		t.Fatalf("GarbageCollect with empty tempName: %v", err)
	}

	reopened, err := Open(name, "rb+")
	if err != nil {
		t.Fatalf("Open after gc: %v", err)
	}
	defer reopened.Close()
	if reopened.NumFiles() != 0 {
		t.Fatalf("NumFiles = %d, want 0", reopened.NumFiles())
	}
	if reopened.MaxFiles() != 5 {
		t.Fatalf("MaxFiles = %d, want 5 (preserved across gc)", reopened.MaxFiles())
	}
}

func TestGarbageCollectPreservesDedupAliasing(t *testing.T) {
	name := tempDBName(t, "db.pdb")
	db, err := Create(name, CreateParams{MaxFiles: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	shared := makeJPEG(t, 30, 30, color.RGBA{R: 5, G: 6, B: 7, A: 255})
	if err := db.Insert(shared, "pic1"); err != nil {
		t.Fatalf("Insert pic1: %v", err)
	}
	if err := db.Insert(shared, "pic2"); err != nil {
		t.Fatalf("Insert pic2: %v", err)
	}

	if err := db.GarbageCollect("tmp.pdb"); err != nil {
		t.Fatalf("GarbageCollect: %v", err)
	}

	reopened, err := Open(name, "rb+")
	if err != nil {
		t.Fatalf("Open after gc: %v", err)
	}
	defer reopened.Close()

	if reopened.NumFiles() != 2 {
		t.Fatalf("NumFiles after gc = %d, want 2", reopened.NumFiles())
	}
	got1, err := reopened.Read("pic1", Orig)
	if err != nil {
		t.Fatalf("Read pic1: %v", err)
	}
	got2, err := reopened.Read("pic2", Orig)
	if err != nil {
		t.Fatalf("Read pic2: %v", err)
	}
	if string(got1) != string(got2) {
		t.Fatalf("expected pic1 and pic2 to still share identical content after gc")
	}

	i1 := reopened.lookup("pic1")
	i2 := reopened.lookup("pic2")
	if reopened.table[i1].offset[Orig] != reopened.table[i2].offset[Orig] {
		t.Fatalf("expected pic1 and pic2 to still be aliased after gc")
	}
}

func TestGarbageCollectCarriesMaterialisedVariants(t *testing.T) {
	name := tempDBName(t, "db.pdb")
	db, err := Create(name, CreateParams{MaxFiles: 3, ThumbRes: [2]uint16{32, 32}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	payload := makeJPEG(t, 200, 100, color.RGBA{R: 255, A: 255})
	if err := db.Insert(payload, "pic1"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := db.Read("pic1", Thumb); err != nil {
		t.Fatalf("Read thumb: %v", err)
	}

	if err := db.GarbageCollect("tmp.pdb"); err != nil {
		t.Fatalf("GarbageCollect: %v", err)
	}

	reopened, err := Open(name, "rb+")
	if err != nil {
		t.Fatalf("Open after gc: %v", err)
	}
	defer reopened.Close()

	i := reopened.lookup("pic1")
	if reopened.table[i].offset[Thumb] == 0 {
		t.Fatalf("expected thumbnail variant to survive gc without re-lazy-resizing")
	}
	thumb, err := reopened.Read("pic1", Thumb)
	if err != nil {
		t.Fatalf("Read thumb after gc: %v", err)
	}
	w, h, err := reopened.codec.Dimensions(thumb)
	if err != nil {
		t.Fatalf("Dimensions: %v", err)
	}
	if w != 32 || h != 16 {
		t.Fatalf("thumb dims after gc = %dx%d, want 32x16", w, h)
	}
}
