package rockfield

import (
	"fmt"

	"gopkg.in/src-d/go-billy.v4"
)

// Load reads and parses the puzzle text stored at path on fs.
func Load(fs billy.Filesystem, path string) (*Field, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rockfield: open %s: %w", path, err)
	}
	defer f.Close()

	field, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("rockfield: %s: %w", path, err)
	}
	return field, nil
}
