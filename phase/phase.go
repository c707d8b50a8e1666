// Package phase persists rotation angles between runs of the rotate command.
//
// The file is a bare sequence of little-endian float32 values with no header.
// The rotation driver appends the angle of every frame whose coverage fails
// to verify, and replays the stored angles when the file is not empty.
package phase

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultPath returns the phase file location used when none is configured.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "theta.bin")
}

// Read returns every angle stored in the file at path. A missing file holds
// no angles. A trailing partial value is ignored.
func Read(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading phase file %s", path)
	}
	return Decode(bytes.NewReader(data[:len(data)/4*4]))
}

// Decode reads float32 values until r is exhausted.
func Decode(r io.Reader) ([]float64, error) {
	var thetas []float64
	for {
		var v float32
		err := binary.Read(r, binary.LittleEndian, &v)
		if err == io.EOF {
			return thetas, nil
		}
		if err != nil {
			return thetas, errors.Wrap(err, "decoding phase value")
		}
		thetas = append(thetas, float64(v))
	}
}

// Append adds theta to the end of the file at path, creating it if needed.
func Append(path string, theta float64) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrapf(err, "opening phase file %s", path)
	}
	if err := binary.Write(f, binary.LittleEndian, float32(theta)); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing phase file %s", path)
	}
	return errors.Wrapf(f.Close(), "closing phase file %s", path)
}

// A Cycle hands out stored angles in order, starting over after the last.
type Cycle struct {
	thetas []float64
	next   int
}

func NewCycle(thetas []float64) *Cycle {
	return &Cycle{thetas: thetas}
}

func (c *Cycle) Len() int {
	return len(c.thetas)
}

// Next returns the next angle. It panics on an empty cycle.
func (c *Cycle) Next() float64 {
	theta := c.thetas[c.next]
	c.next = (c.next + 1) % len(c.thetas)
	return theta
}
