package port

type ScanStorage interface {
	ListImages(dir string) ([]string, error)
	DirExists(dir string) bool
	EnsureDir(dir string) error
}
