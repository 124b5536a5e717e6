package pictdb

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
)

// Codec is the abstract JPEG collaborator the core consumes (spec.md §1,
// §4.4): decode a payload, report its dimensions, resize it preserving
// aspect ratio, and re-encode. pictDB's core never imports an image library
// directly; it only ever talks to this interface, so a caller can plug in
// libvips, a GPU resizer, or anything else that satisfies it.
type Codec interface {
	// Dimensions reports the (width, height) of a JPEG payload without
	// necessarily decoding it fully.
	Dimensions(payload []byte) (width, height uint32, err error)
	// Resize decodes payload, shrinks it to fit within (maxW, maxH)
	// preserving aspect ratio (§4.4 step 3-4), and re-encodes as JPEG.
	Resize(payload []byte, maxW, maxH uint16) (resized []byte, err error)
}

// stdlibCodec is the default Codec, built only on the standard library's
// image, image/color and image/jpeg packages, with a hand-written
// nearest-neighbor scaler. The spec marks the JPEG codec
// an external, abstract collaborator (§1); this default exists so the
// engine is runnable end to end without a third-party imaging dependency.
type stdlibCodec struct{}

// DefaultCodec is the stdlib-backed Codec used when a DB is not given one
// explicitly via WithCodec.
var DefaultCodec Codec = stdlibCodec{}

func (stdlibCodec) Dimensions(payload []byte) (uint32, uint32, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(payload))
	if err != nil {
		return 0, 0, newErr("Codec.Dimensions", KindCodec, err)
	}
	return uint32(cfg.Width), uint32(cfg.Height), nil
}

func (stdlibCodec) Resize(payload []byte, maxW, maxH uint16) ([]byte, error) {
	img, err := jpeg.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, newErr("Codec.Resize", KindCodec, err)
	}

	origW := img.Bounds().Dx()
	origH := img.Bounds().Dy()
	if origW == 0 || origH == 0 {
		return nil, newErr("Codec.Resize", KindCodec, nil)
	}

	shrink := minFloat(float64(maxW)/float64(origW), float64(maxH)/float64(origH))
	newW, newH := origW, origH
	if shrink < 1.0 {
		newW = int(float64(origW) * shrink)
		newH = int(float64(origH) * shrink)
		if newW < 1 {
			newW = 1
		}
		if newH < 1 {
			newH = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	nearestNeighborScale(dst, img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, newErr("Codec.Resize", KindCodec, err)
	}
	return buf.Bytes(), nil
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// nearestNeighborScale fills dst from src using nearest-neighbor sampling.
// Kept deliberately simple: the core only requires that a variant's
// dimensions shrink correctly (§4.4, §8); visual resampling quality is the
// concern of whatever Codec a production deployment plugs in.
func nearestNeighborScale(dst *image.RGBA, src image.Image) {
	sb := src.Bounds()
	db := dst.Bounds()
	dw, dh := db.Dx(), db.Dy()
	sw, sh := sb.Dx(), sb.Dy()
	if dw == 0 || dh == 0 || sw == 0 || sh == 0 {
		return
	}
	for y := 0; y < dh; y++ {
		sy := sb.Min.Y + y*sh/dh
		for x := 0; x < dw; x++ {
			sx := sb.Min.X + x*sw/dw
			dst.Set(db.Min.X+x, db.Min.Y+y, color.RGBAModel.Convert(src.At(sx, sy)))
		}
	}
}
