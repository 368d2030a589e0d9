package imaging_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroscan/adni-dataset-service/internal/dataset"
	scanimaging "github.com/neuroscan/adni-dataset-service/internal/infra/imaging"
)

func grayWithSquare(w, h int, square image.Rectangle, bg, fg uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if image.Pt(x, y).In(square) {
				img.SetGray(x, y, color.Gray{Y: fg})
			} else {
				img.SetGray(x, y, color.Gray{Y: bg})
			}
		}
	}
	return img
}

func TestForegroundRectFindsBrightSquare(t *testing.T) {
	square := image.Rect(30, 20, 70, 50)
	img := grayWithSquare(100, 80, square, 10, 220)

	rect, err := scanimaging.NewOtsuCropper().ForegroundRect(img)
	require.NoError(t, err)
	assert.Equal(t, square, rect)
}

func TestForegroundRectSinglePixel(t *testing.T) {
	img := grayWithSquare(32, 32, image.Rect(7, 9, 8, 10), 0, 255)

	rect, err := scanimaging.NewOtsuCropper().ForegroundRect(img)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(7, 9, 8, 10), rect)
}

func TestForegroundRectAllBackground(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 64, 64))

	_, err := scanimaging.NewOtsuCropper().ForegroundRect(img)
	assert.ErrorIs(t, err, dataset.ErrEmptyForeground)
}

func TestForegroundRectGradient(t *testing.T) {
	// Dark left half, bright right half: the crop is the bright half.
	img := image.NewGray(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			v := uint8(20)
			if x >= 20 {
				v = 180
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}

	rect, err := scanimaging.NewOtsuCropper().ForegroundRect(img)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(20, 0, 40, 20), rect)
}
