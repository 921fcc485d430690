package render

import (
	"path/filepath"
	"strconv"
)

// Naming derives a file path from a dataset size: Dir/Prefix<size>Suffix.
type Naming struct {
	Dir    string
	Prefix string
	Suffix string
}

var (
	DefaultInput  = Naming{Dir: ".", Prefix: "points_", Suffix: ".csv"}
	DefaultOutput = Naming{Dir: ".", Prefix: "plot_", Suffix: ".png"}
)

func (n Naming) Path(
	size int,
) string {
	return filepath.Join(n.Dir, n.Prefix+strconv.Itoa(size)+n.Suffix)
}
