// Package report writes lookup results as CSV.
package report

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/stockchange/pkg/models"
)

// Header is the first row of every report.
var Header = []string{"timestamp", "stock", "percentage_change"}

// Writer writes results to a temporary file next to the destination. The
// destination is replaced only by Close; Abort leaves it untouched. A missing
// change is written as an empty cell.
type Writer struct {
	w         *csv.Writer
	file      *os.File
	path      string
	precision int32

	rows    int
	missing int
}

// Create opens a temporary file in the directory of path and writes the header.
func Create(path string, precision int32) (*Writer, error) {
	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(file)
	if err := w.Write(Header); err != nil {
		file.Close()
		os.Remove(file.Name())
		return nil, err
	}

	return &Writer{w: w, file: file, path: path, precision: precision}, nil
}

// Write appends one row.
func (r *Writer) Write(res models.Result) error {
	change := ""
	if res.Change != nil {
		change = res.Change.StringFixed(r.precision)
	} else {
		r.missing++
	}
	r.rows++
	return r.w.Write([]string{res.Timestamp, res.Ticker, change})
}

// Rows returns the number of rows written, header excluded.
func (r *Writer) Rows() int { return r.rows }

// Missing returns the number of rows without a change.
func (r *Writer) Missing() int { return r.missing }

// Close flushes the temporary file and moves it over the destination.
func (r *Writer) Close() error {
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		r.Abort()
		return err
	}
	if err := r.file.Chmod(0644); err != nil {
		r.Abort()
		return err
	}
	if err := r.file.Close(); err != nil {
		os.Remove(r.file.Name())
		return err
	}
	if err := os.Rename(r.file.Name(), r.path); err != nil {
		os.Remove(r.file.Name())
		return err
	}
	return nil
}

// Abort discards everything written so far.
func (r *Writer) Abort() {
	r.file.Close()
	os.Remove(r.file.Name())
}
