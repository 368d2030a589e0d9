package entity

// Label is the binary classification target for a scan.
type Label int

const (
	LabelNC Label = 0
	LabelAD Label = 1
)

func (l Label) String() string {
	switch l {
	case LabelAD:
		return "AD"
	case LabelNC:
		return "NC"
	}
	return "Unknown"
}

// Directory layout of a dataset split: raw scans live under the class
// directories, preprocessed copies under the corresponding _processed
// directories with the same filenames.
const (
	ClassDirAD      = "AD"
	ClassDirNC      = "NC"
	ProcessedSuffix = "_processed"
)

// Sample pairs a processed scan on disk with its class label.
type Sample struct {
	Path  string `json:"path"`
	Label Label  `json:"label"`
}
