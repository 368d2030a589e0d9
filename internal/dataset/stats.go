package dataset

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Stats computes the mean and standard deviation of pixel intensities
// (scaled to [0,1]) across every sample, for normalization of the
// downstream model inputs. Per-image moments are pooled so the whole
// dataset never has to be resident at once. All processed images share
// the same resolution, so the pooling is unweighted.
func (d *Dataset) Stats() (mean, std float64, err error) {
	if len(d.samples) == 0 {
		return 0, 0, nil
	}

	means := make([]float64, 0, len(d.samples))
	seconds := make([]float64, 0, len(d.samples))

	for _, s := range d.samples {
		img, err := decodeGray(s.Path)
		if err != nil {
			return 0, 0, err
		}

		pixels := Tensor(img)
		m := stat.Mean(pixels, nil)
		v := stat.PopVariance(pixels, nil)
		means = append(means, m)
		seconds = append(seconds, v+m*m)
	}

	mean = stat.Mean(means, nil)
	variance := stat.Mean(seconds, nil) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance), nil
}
