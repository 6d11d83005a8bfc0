package volume

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"
)

func writeTIFF(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := tiff.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	const w, h, d = 4, 5, 3
	for z := 0; z < d; z++ {
		img := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetGray(x, y, color.Gray{Y: sampleGray(x, y, z)})
			}
		}
		writeTIFF(t, filepath.Join(dir, sliceName(z)), img)
	}

	v, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if v.Width != w || v.Height != h || v.Depth != d {
		t.Fatalf("got dims (%d,%d,%d), want (%d,%d,%d)", v.Width, v.Height, v.Depth, w, h, d)
	}
	if v.BitsPerVoxel != 8 {
		t.Fatalf("got %d bits per voxel, want 8", v.BitsPerVoxel)
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				want := float64(sampleGray(x, y, z))
				got := v.At(x, y, z)
				if got != want {
					t.Fatalf("At(%d,%d,%d) = %v, want %v", x, y, z, got, want)
				}
			}
		}
	}
}

func sampleGray(x, y, z int) uint8 {
	return uint8((x*7 + y*13 + z*29) % 256)
}

func sliceName(z int) string {
	digits := [4]byte{'0', '0', '0', '0'}
	for i := 3; i >= 0 && z > 0; i-- {
		digits[i] = byte('0' + z%10)
		z /= 10
	}
	return "slice" + string(digits[:]) + ".tif"
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("got %v (%T), want a *LoadError", err, err)
	}
}

func TestLoadEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected an error for a directory with no TIFF slices")
	}
}

func TestLoadMismatchedDimensions(t *testing.T) {
	dir := t.TempDir()
	writeTIFF(t, filepath.Join(dir, "a.tif"), image.NewGray(image.Rect(0, 0, 4, 4)))
	writeTIFF(t, filepath.Join(dir, "b.tif"), image.NewGray(image.Rect(0, 0, 8, 8)))

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected an error for mismatched slice dimensions")
	}
}

// TestTIFFByteOrderParity checks that golang.org/x/image/tiff normalizes
// byte order during decode: the same 16-bit image encoded big- and
// little-endian must decode to identical sample values. tiff.Encode always
// emits little-endian, so the big-endian variant is built by hand from the
// baseline TIFF 6.0 layout to actually exercise the decoder's byte-swap
// path.
func TestTIFFByteOrderParity(t *testing.T) {
	const w, h = 8, 8
	pixels := make([]uint16, w*h)
	for i := range pixels {
		pixels[i] = uint16((i*4111 + 997) % 65536)
	}

	little := encodeMinimalGray16TIFF(w, h, pixels, binary.LittleEndian, "II")
	big := encodeMinimalGray16TIFF(w, h, pixels, binary.BigEndian, "MM")

	decLittle, err := tiff.Decode(bytes.NewReader(little))
	if err != nil {
		t.Fatalf("decode little-endian: %v", err)
	}
	decBig, err := tiff.Decode(bytes.NewReader(big))
	if err != nil {
		t.Fatalf("decode big-endian: %v", err)
	}

	gl, ok := decLittle.(*image.Gray16)
	if !ok {
		t.Fatalf("decoded type %T, want *image.Gray16", decLittle)
	}
	gb, ok := decBig.(*image.Gray16)
	if !ok {
		t.Fatalf("decoded type %T, want *image.Gray16", decBig)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if gl.Gray16At(x, y) != gb.Gray16At(x, y) {
				t.Fatalf("(%d,%d): little=%v big=%v", x, y, gl.Gray16At(x, y), gb.Gray16At(x, y))
			}
		}
	}
}

// encodeMinimalGray16TIFF builds a baseline, uncompressed, single-strip
// 16-bit grayscale TIFF in the given byte order. It exists only to give
// the byte-order parity test control over endianness, which tiff.Encode
// does not expose.
func encodeMinimalGray16TIFF(w, h int, pixels []uint16, order binary.ByteOrder, mark string) []byte {
	pixelData := make([]byte, len(pixels)*2)
	for i, p := range pixels {
		order.PutUint16(pixelData[i*2:], p)
	}
	pixelOffset := uint32(8)

	type entry struct {
		tag, typ uint16
		count    uint32
		value    uint32
	}
	const tShort, tLong = 3, 4
	entries := []entry{
		{256, tShort, 1, uint32(w)},              // ImageWidth
		{257, tShort, 1, uint32(h)},               // ImageLength
		{258, tShort, 1, 16},                      // BitsPerSample
		{259, tShort, 1, 1},                       // Compression: none
		{262, tShort, 1, 1},                       // PhotometricInterpretation: BlackIsZero
		{273, tLong, 1, pixelOffset},               // StripOffsets
		{277, tShort, 1, 1},                       // SamplesPerPixel
		{278, tLong, 1, uint32(h)},                 // RowsPerStrip
		{279, tLong, 1, uint32(len(pixelData))},    // StripByteCounts
	}

	ifdOffset := pixelOffset + uint32(len(pixelData))
	ifdSize := 2 + len(entries)*12 + 4
	buf := make([]byte, int(ifdOffset)+ifdSize)

	copy(buf[0:2], mark)
	order.PutUint16(buf[2:4], 42)
	order.PutUint32(buf[4:8], ifdOffset)
	copy(buf[pixelOffset:], pixelData)

	pos := int(ifdOffset)
	order.PutUint16(buf[pos:], uint16(len(entries)))
	pos += 2
	for _, e := range entries {
		order.PutUint16(buf[pos:], e.tag)
		order.PutUint16(buf[pos+2:], e.typ)
		order.PutUint32(buf[pos+4:], e.count)
		if e.typ == tShort {
			order.PutUint16(buf[pos+8:], uint16(e.value))
		} else {
			order.PutUint32(buf[pos+8:], e.value)
		}
		pos += 12
	}
	order.PutUint32(buf[pos:], 0) // no next IFD

	return buf
}
