package landmark

import (
	"errors"
	"fmt"

	"github.com/x448/float16"
)

// ErrTensorShape is returned when a landmark tensor buffer can not be divided
// into whole landmark records
var ErrTensorShape = errors.New("invalid landmark tensor shape")

// f16LookupTable caches the float16 to float32 conversion of every bit pattern
var f16LookupTable [65536]float32

func init() {
	// precompute float16 lookup table for faster conversion to float32
	for i := range f16LookupTable {
		f16 := float16.Frombits(uint16(i))
		f16LookupTable[i] = f16.Float32()
	}
}

// FromTensorF16 decodes a float16 landmark output tensor from the NPU into a
// Frame.  Each landmark record is stride values long in the order x, y, z,
// visibility, with any further values (such as presence) ignored.  The x and
// y values must be normalized to the image dimensions.
func FromTensorF16(buf []uint16, stride, width, height int) (Frame, error) {

	if stride < 4 {
		return nil, fmt.Errorf("stride %d less than 4 values per landmark: %w",
			stride, ErrTensorShape)
	}

	if len(buf)%stride != 0 {
		return nil, fmt.Errorf("buffer of %d values not a multiple of stride %d: %w",
			len(buf), stride, ErrTensorShape)
	}

	samples := make([]Normalized, len(buf)/stride)

	for i := range samples {
		rec := buf[i*stride : (i+1)*stride]

		samples[i] = Normalized{
			X:          float64(f16LookupTable[rec[0]]),
			Y:          float64(f16LookupTable[rec[1]]),
			Z:          float64(f16LookupTable[rec[2]]),
			Visibility: float64(f16LookupTable[rec[3]]),
		}
	}

	return FromNormalized(samples, width, height), nil
}
