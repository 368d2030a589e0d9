package port

import (
	"context"
	"image"
)

type ProcessResult struct {
	Files []string
	Count int
}

// DirectoryProcessor turns every recognized scan in inputDir into a
// cropped, resized copy under the same filename in outputDir.
type DirectoryProcessor interface {
	ProcessDirectory(ctx context.Context, inputDir string, outputDir string) (*ProcessResult, error)
}

// Cropper locates the foreground region of a grayscale scan.
type Cropper interface {
	ForegroundRect(img *image.Gray) (image.Rectangle, error)
}
