package volume

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/tiff"
)

// LoadError wraps a failure encountered while loading a volume, so callers
// can distinguish loader failures from other errors with errors.As.
type LoadError struct {
	Dir string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("volume: load %q: %v", e.Dir, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads every *.tif/*.tiff file in dir, in lexical filename order, as
// one Z-slice each, and returns the resulting Volume. All slices must share
// the same dimensions and bit depth; the first slice fixes both.
func Load(dir string) (*Volume, error) {
	files, err := sliceFiles(dir)
	if err != nil {
		return nil, &LoadError{Dir: dir, Err: err}
	}
	if len(files) == 0 {
		return nil, &LoadError{Dir: dir, Err: errors.New("no .tif/.tiff files found")}
	}

	first, err := decodeSlice(files[0])
	if err != nil {
		return nil, &LoadError{Dir: dir, Err: fmt.Errorf("%s: %w", files[0], err)}
	}
	bounds := first.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, &LoadError{Dir: dir, Err: fmt.Errorf("%s: zero-dimension slice", files[0])}
	}
	bitsPerVoxel := 8
	if _, is16 := first.(*image.Gray16); is16 {
		bitsPerVoxel = 16
	}

	v := &Volume{Width: w, Height: h, Depth: len(files), BitsPerVoxel: bitsPerVoxel}
	sliceLen := w * h
	if bitsPerVoxel == 16 {
		v.buf16 = make([]uint16, sliceLen*len(files))
	} else {
		v.buf8 = make([]uint8, sliceLen*len(files))
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for z, path := range files {
		z, path := z, path
		wg.Add(1)
		go func() {
			defer wg.Done()
			img, err := decodeSlice(path)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", path, err)
				}
				mu.Unlock()
				return
			}
			if err := v.writeSlice(z, img); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", path, err)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if firstErr != nil {
		return nil, &LoadError{Dir: dir, Err: firstErr}
	}
	return v, nil
}

// writeSlice promotes img to this volume's bit depth and copies it into
// slice z's disjoint slab of the shared buffer. Called from one goroutine
// per z, so no locking is needed here.
func (v *Volume) writeSlice(z int, img image.Image) error {
	b := img.Bounds()
	if b.Dx() != v.Width || b.Dy() != v.Height {
		return fmt.Errorf("slice dimensions %dx%d do not match volume %dx%d", b.Dx(), b.Dy(), v.Width, v.Height)
	}

	base := z * v.Width * v.Height
	switch g := img.(type) {
	case *image.Gray:
		if v.BitsPerVoxel != 8 {
			return fmt.Errorf("slice is 8-bit but volume is %d-bit", v.BitsPerVoxel)
		}
		for y := 0; y < v.Height; y++ {
			row := base + y*v.Width
			srcRow := g.Pix[y*g.Stride : y*g.Stride+v.Width]
			copy(v.buf8[row:row+v.Width], srcRow)
		}
	case *image.Gray16:
		if v.BitsPerVoxel != 16 {
			return fmt.Errorf("slice is 16-bit but volume is %d-bit", v.BitsPerVoxel)
		}
		for y := 0; y < v.Height; y++ {
			for x := 0; x < v.Width; x++ {
				o := y*g.Stride + x*2
				v.buf16[base+y*v.Width+x] = uint16(g.Pix[o])<<8 | uint16(g.Pix[o+1])
			}
		}
	default:
		return fmt.Errorf("unsupported color model %T after promotion", img)
	}
	return nil
}

// decodeSlice decodes a TIFF file and promotes its color model to
// image.Gray or image.Gray16, the only two this loader supports.
func decodeSlice(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		return nil, err
	}

	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return img, nil
	}
	return promoteToGray(img)
}

// promoteToGray converts an arbitrary color model to 8-bit grayscale via
// image/draw, matching the loader's promise that samples can be promoted
// losslessly to real numbers for the two supported depths. 16-bit sources
// with a non-Gray16 model (e.g. RGBA64) are promoted to Gray16 instead, so
// they do not lose precision needlessly.
func promoteToGray(src image.Image) (image.Image, error) {
	b := src.Bounds()
	if hasDeepChannels(src) {
		dst := image.NewGray16(b)
		draw.Draw(dst, b, src, b.Min, draw.Src)
		return dst, nil
	}
	dst := image.NewGray(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst, nil
}

func hasDeepChannels(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		return true
	default:
		return false
	}
}

// sliceFiles lists the *.tif/*.tiff files directly inside dir, sorted by
// base filename so slices are read in acquisition order.
func sliceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".tif" || ext == ".tiff" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
