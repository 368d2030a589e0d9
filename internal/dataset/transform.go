package dataset

import (
	"image"
	"image/draw"
)

// Compose chains transforms left to right.
func Compose(transforms ...Transform) Transform {
	return func(img image.Image) image.Image {
		for _, t := range transforms {
			img = t(img)
		}
		return img
	}
}

// Tensor flattens a grayscale image row-major into intensities in [0,1].
func Tensor(img image.Image) []float64 {
	gray, ok := img.(*image.Gray)
	if !ok {
		b := img.Bounds()
		gray = image.NewGray(b)
		draw.Draw(gray, b, img, b.Min, draw.Src)
	}

	b := gray.Bounds()
	out := make([]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := gray.Pix[(y-b.Min.Y)*gray.Stride : (y-b.Min.Y)*gray.Stride+b.Dx()]
		for _, p := range row {
			out = append(out, float64(p)/255.0)
		}
	}
	return out
}

// NormalizeTensor standardizes t in place with the given channel mean and
// standard deviation, typically the values reported by Dataset.Stats.
func NormalizeTensor(t []float64, mean, std float64) []float64 {
	for i := range t {
		t[i] = (t[i] - mean) / std
	}
	return t
}
