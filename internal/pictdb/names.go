package pictdb

import "bytes"

// cStringFromBytes reads a NUL-padded fixed-size field as a Go string,
// trimming at the first NUL the way the C struct's strncpy-filled buffers
// are consumed.
func cStringFromBytes(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// cStringToBytes copies s into b, NUL-padding or truncating to len(b)-1
// usable bytes plus a terminator, mirroring strncpy(dst, s, len(b)) followed
// by an explicit NUL.
func cStringToBytes(b []byte, s string) {
	for i := range b {
		b[i] = 0
	}
	n := len(s)
	if n > len(b)-1 {
		n = len(b) - 1
	}
	copy(b, s[:n])
}

// suffixFor returns the file suffix used when materialising a variant to
// disk on read: "_thumb.jpg", "_small.jpg", "_orig.jpg".
func suffixFor(res Resolution) (string, error) {
	switch res {
	case Thumb:
		return "_thumb.jpg", nil
	case Small:
		return "_small.jpg", nil
	case Orig:
		return "_orig.jpg", nil
	default:
		return "", newErr("suffixFor", KindResolutions, nil)
	}
}

// CreateName builds "<pict_id>_<suffix>.jpg", truncating pict_id at MaxPicID
// characters before concatenation, per spec.md §6.
func CreateName(pictID string, res Resolution) (string, error) {
	suffix, err := suffixFor(res)
	if err != nil {
		return "", err
	}
	if len(pictID) > MaxPicID {
		pictID = pictID[:MaxPicID]
	}
	return pictID + suffix, nil
}

// resolutionTokens maps the CLI/HTTP resolution tokens to Resolution codes.
var resolutionTokens = map[string]Resolution{
	"thumb":     Thumb,
	"thumbnail": Thumb,
	"small":     Small,
	"orig":      Orig,
	"original":  Orig,
}

// ParseResolution converts a resolution token ("thumb", "thumbnail",
// "small", "orig", "original") to its Resolution code, or an error if the
// token is not recognised.
func ParseResolution(token string) (Resolution, error) {
	r, ok := resolutionTokens[token]
	if !ok {
		return 0, newErr("ParseResolution", KindResolutions, nil)
	}
	return r, nil
}
