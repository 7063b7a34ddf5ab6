// Released under an MIT license. See LICENSE.

// Package history reads and writes the REPL's history file.
package history

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Load passes the history file at path to read. A missing file is not
// an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrap(err, "opening history")
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return errors.Wrap(err, "reading history")
	}

	return f.Close()
}

// Save passes a new history file at path to write.
func Save(path string, write func(w io.Writer) (int, error)) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "creating history directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating history")
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return errors.Wrap(err, "writing history")
	}

	return f.Close()
}
