package data

import (
	"fmt"

	"github.com/born-ml/mlp/internal/tensor"
)

// ITU-R BT.601 luma weights.
const (
	lumaR = 0.2989
	lumaG = 0.5870
	lumaB = 0.1140
)

// RGBToGrayscale converts a channel-first [3, H, W] image to [1, H, W]
// using luminance weights.
func RGBToGrayscale(img *tensor.Tensor) (*tensor.Tensor, error) {
	shape := img.Shape()
	if len(shape) != 3 || shape[0] != 3 {
		return nil, fmt.Errorf("%w: expected [3, H, W], got %v", tensor.ErrInvalidShape, shape)
	}
	plane := shape[1] * shape[2]
	src := img.Data()
	r, g, b := src[:plane], src[plane:2*plane], src[2*plane:]

	out := tensor.Zeros(tensor.Shape{1, shape[1], shape[2]})
	dst := out.Data()
	for i := range dst {
		dst[i] = lumaR*r[i] + lumaG*g[i] + lumaB*b[i]
	}
	return out, nil
}
