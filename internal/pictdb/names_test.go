package pictdb

import "testing"

func TestCStringRoundTrip(t *testing.T) {
	b := make([]byte, 16)
	cStringToBytes(b, "hello")
	if got := cStringFromBytes(b); got != "hello" {
		t.Fatalf("cStringFromBytes = %q, want %q", got, "hello")
	}
	for i := 5; i < len(b); i++ {
		if b[i] != 0 {
			t.Fatalf("expected zero padding at byte %d, got %d", i, b[i])
		}
	}
}

func TestCStringToBytesTruncatesAtFieldWidth(t *testing.T) {
	b := make([]byte, 4)
	cStringToBytes(b, "abcdefgh")
	got := cStringFromBytes(b)
	if len(got) != 3 {
		t.Fatalf("expected truncation to 3 usable bytes plus terminator, got %q", got)
	}
	if b[3] != 0 {
		t.Fatalf("expected trailing NUL terminator byte")
	}
}

func TestCreateNameSuffixes(t *testing.T) {
	cases := []struct {
		res  Resolution
		want string
	}{
		{Thumb, "pic1_thumb.jpg"},
		{Small, "pic1_small.jpg"},
		{Orig, "pic1_orig.jpg"},
	}
	for _, c := range cases {
		got, err := CreateName("pic1", c.res)
		if err != nil {
			t.Fatalf("CreateName(%v): %v", c.res, err)
		}
		if got != c.want {
			t.Fatalf("CreateName(%v) = %q, want %q", c.res, got, c.want)
		}
	}
}

func TestCreateNameTruncatesLongPictID(t *testing.T) {
	long := make([]byte, MaxPicID+50)
	for i := range long {
		long[i] = 'a'
	}
	got, err := CreateName(string(long), Orig)
	if err != nil {
		t.Fatalf("CreateName: %v", err)
	}
	wantPrefixLen := MaxPicID
	if len(got) != wantPrefixLen+len("_orig.jpg") {
		t.Fatalf("CreateName length = %d, want %d", len(got), wantPrefixLen+len("_orig.jpg"))
	}
}

func TestParseResolutionTokens(t *testing.T) {
	cases := map[string]Resolution{
		"thumb":     Thumb,
		"thumbnail": Thumb,
		"small":     Small,
		"orig":      Orig,
		"original":  Orig,
	}
	for token, want := range cases {
		got, err := ParseResolution(token)
		if err != nil {
			t.Fatalf("ParseResolution(%q): %v", token, err)
		}
		if got != want {
			t.Fatalf("ParseResolution(%q) = %v, want %v", token, got, want)
		}
	}
}

func TestParseResolutionRejectsUnknownToken(t *testing.T) {
	_, err := ParseResolution("huge")
	if err == nil {
		t.Fatalf("expected error for unknown resolution token")
	}
	if kind, ok := ErrorKind(err); !ok || kind != KindResolutions {
		t.Fatalf("got kind %v, want RESOLUTIONS", kind)
	}
}
