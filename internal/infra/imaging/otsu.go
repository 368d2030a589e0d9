package imaging

import (
	"fmt"
	"image"

	"github.com/neuroscan/adni-dataset-service/internal/dataset"
)

// OtsuCropper locates the brain region of a scan by global Otsu
// thresholding: the threshold maximizing between-class intensity variance
// separates the near-uniform dark background from the tissue, and the
// minimal axis-aligned box around the surviving pixels is the crop.
type OtsuCropper struct{}

func NewOtsuCropper() *OtsuCropper {
	return &OtsuCropper{}
}

func (c *OtsuCropper) ForegroundRect(img *image.Gray) (image.Rectangle, error) {
	threshold := otsuThreshold(img)

	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride : (y-b.Min.Y)*img.Stride+b.Dx()]
		for x, p := range row {
			if p <= threshold {
				continue
			}
			px := b.Min.X + x
			if px < minX {
				minX = px
			}
			if px > maxX {
				maxX = px
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX {
		return image.Rectangle{}, fmt.Errorf("%w: threshold %d leaves an all-background mask", dataset.ErrEmptyForeground, threshold)
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), nil
}

// otsuThreshold picks the intensity t maximizing the between-class
// variance w0*w1*(mu0-mu1)^2 over the 256-bin histogram. Foreground is
// every pixel strictly above t.
func otsuThreshold(img *image.Gray) uint8 {
	var hist [256]int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride : (y-b.Min.Y)*img.Stride+b.Dx()]
		for _, p := range row {
			hist[p]++
		}
	}

	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var (
		sumB     float64
		weightB  int
		maxVar   float64
		best     uint8
	)
	for t := 0; t < 256; t++ {
		weightB += hist[t]
		if weightB == 0 {
			continue
		}
		weightF := total - weightB
		if weightF == 0 {
			break
		}

		sumB += float64(t) * float64(hist[t])
		meanB := sumB / float64(weightB)
		meanF := (sum - sumB) / float64(weightF)

		diff := meanB - meanF
		between := float64(weightB) * float64(weightF) * diff * diff
		if between > maxVar {
			maxVar = between
			best = uint8(t)
		}
	}
	return best
}
