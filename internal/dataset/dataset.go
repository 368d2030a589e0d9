// Package dataset exposes preprocessed ADNI brain scans as an indexable
// collection of (image, label) pairs, with utilities for deterministic
// train/validation partitioning.
package dataset

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/neuroscan/adni-dataset-service/internal/domain/entity"
)

// Transform is an opaque, caller-owned mapping applied to the decoded
// grayscale image before it is returned. It must be stateless if the
// dataset is shared across goroutines.
type Transform func(image.Image) image.Image

// Container is the consumer contract shared by Dataset and Subset.
type Container interface {
	Len() int
	Get(index int) (image.Image, int, error)
}

// Dataset holds the processed sample list in class order: every AD sample
// first, then every NC sample, each class in directory-listing order.
// Images are decoded lazily on access.
type Dataset struct {
	samples   []entity.Sample
	transform Transform
}

func New(samples []entity.Sample, transform Transform) *Dataset {
	return &Dataset{samples: samples, transform: transform}
}

func (d *Dataset) Len() int {
	return len(d.samples)
}

// Get decodes the sample at index into an 8-bit grayscale image, applies
// the transform if one is set, and returns it with the integer label
// (1 = AD, 0 = NC).
func (d *Dataset) Get(index int) (image.Image, int, error) {
	s, err := d.Sample(index)
	if err != nil {
		return nil, 0, err
	}

	img, err := decodeGray(s.Path)
	if err != nil {
		return nil, 0, err
	}

	var out image.Image = img
	if d.transform != nil {
		out = d.transform(out)
	}
	return out, int(s.Label), nil
}

// Sample returns the path/label pair at index without decoding the image.
func (d *Dataset) Sample(index int) (entity.Sample, error) {
	if index < 0 || index >= len(d.samples) {
		return entity.Sample{}, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(d.samples))
	}
	return d.samples[index], nil
}

func decodeGray(path string) (*image.Gray, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, err)
	}

	b := img.Bounds()
	gray := image.NewGray(b)
	draw.Draw(gray, b, img, b.Min, draw.Src)
	return gray, nil
}
