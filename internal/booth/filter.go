package booth

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// FilterKind names one image adjustment.
type FilterKind string

const (
	FilterSepia      FilterKind = "sepia"
	FilterGrayscale  FilterKind = "grayscale"
	FilterContrast   FilterKind = "contrast"
	FilterBrightness FilterKind = "brightness"
	FilterSaturate   FilterKind = "saturate"
	FilterHueRotate  FilterKind = "hue-rotate"
	FilterBlur       FilterKind = "blur"
)

// FilterOp is one adjustment in a chain. Param follows the usual
// conventions per kind: a 0..1 amount for sepia/grayscale, a multiplier
// around 1 for contrast/brightness/saturate, degrees for hue-rotate and a
// blur sigma for blur.
type FilterOp struct {
	Kind  FilterKind
	Param float64
}

// FilterChain is an ordered sequence of adjustments applied front to back.
type FilterChain []FilterOp

// Apply runs the chain in order and returns the adjusted image. An empty
// chain returns the input untouched.
func (c FilterChain) Apply(img image.Image) image.Image {
	out := img
	for _, op := range c {
		out = op.apply(out)
	}
	return out
}

func (op FilterOp) apply(img image.Image) image.Image {
	switch op.Kind {
	case FilterContrast:
		return imaging.AdjustContrast(img, (op.Param-1)*100)
	case FilterBrightness:
		return imaging.AdjustBrightness(img, (op.Param-1)*100)
	case FilterSaturate:
		return imaging.AdjustSaturation(img, (op.Param-1)*100)
	case FilterBlur:
		if op.Param <= 0 {
			return img
		}
		return imaging.Blur(img, op.Param)
	case FilterGrayscale:
		if op.Param >= 1 {
			return imaging.Grayscale(img)
		}
		return applyMatrix(img, grayscaleMatrix(op.Param))
	case FilterSepia:
		return applyMatrix(img, sepiaMatrix(op.Param))
	case FilterHueRotate:
		return applyMatrix(img, hueRotateMatrix(op.Param))
	}
	return img
}

// colorMatrix transforms RGB channels; rows are output channels, columns
// input channel weights.
type colorMatrix [3][3]float64

func applyMatrix(img image.Image, m colorMatrix) image.Image {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		r, g, b := float64(c.R), float64(c.G), float64(c.B)
		return color.NRGBA{
			R: clampChannel(m[0][0]*r + m[0][1]*g + m[0][2]*b),
			G: clampChannel(m[1][0]*r + m[1][1]*g + m[1][2]*b),
			B: clampChannel(m[2][0]*r + m[2][1]*g + m[2][2]*b),
			A: c.A,
		}
	})
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}

var identityMatrix = colorMatrix{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

var sepiaFull = colorMatrix{
	{0.393, 0.769, 0.189},
	{0.349, 0.686, 0.168},
	{0.272, 0.534, 0.131},
}

var grayscaleFull = colorMatrix{
	{0.2126, 0.7152, 0.0722},
	{0.2126, 0.7152, 0.0722},
	{0.2126, 0.7152, 0.0722},
}

// blend interpolates between the identity and a full-strength matrix for
// partial-amount adjustments.
func blend(full colorMatrix, t float64) colorMatrix {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	var out colorMatrix
	for i := range out {
		for j := range out[i] {
			out[i][j] = identityMatrix[i][j]*(1-t) + full[i][j]*t
		}
	}
	return out
}

func sepiaMatrix(amount float64) colorMatrix {
	return blend(sepiaFull, amount)
}

func grayscaleMatrix(amount float64) colorMatrix {
	return blend(grayscaleFull, amount)
}

// hueRotateMatrix is the standard luminance-preserving hue rotation.
func hueRotateMatrix(degrees float64) colorMatrix {
	rad := degrees * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return colorMatrix{
		{0.213 + cos*0.787 - sin*0.213, 0.715 - cos*0.715 - sin*0.715, 0.072 - cos*0.072 + sin*0.928},
		{0.213 - cos*0.213 + sin*0.143, 0.715 + cos*0.285 + sin*0.140, 0.072 - cos*0.072 - sin*0.283},
		{0.213 - cos*0.213 - sin*0.787, 0.715 - cos*0.715 + sin*0.715, 0.072 + cos*0.928 + sin*0.072},
	}
}
