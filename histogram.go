package hufftree

import (
	"io"

	"github.com/pkg/errors"
)

// NumSymbols is the size of the alphabet: one symbol per byte value.
const NumSymbols = 256

// Histogram holds the number of occurrences of each byte value.
type Histogram struct {
	// Counts holds the frequency of each byte value.
	Counts [NumSymbols]uint64

	// Total holds the number of bytes scanned, i.e. the sum of Counts.
	Total uint64
}

// Scan adds the bytes of p to the histogram.
func (h *Histogram) Scan(p []byte) {
	for _, b := range p {
		h.Counts[b]++
	}
	h.Total += uint64(len(p))
}

// Distinct returns the number of byte values with a nonzero count.
func (h *Histogram) Distinct() int {
	var n int
	for _, count := range h.Counts {
		if count != 0 {
			n++
		}
	}
	return n
}

// CountFrequencies reads r to EOF and returns the histogram of its bytes.
func CountFrequencies(r io.Reader) (Histogram, error) {
	var h Histogram
	var buf [4096]byte
	for {
		n, err := r.Read(buf[:])
		h.Scan(buf[:n])
		if err == io.EOF {
			return h, nil
		}
		if err != nil {
			return h, errors.Wrap(err, "failed to count byte frequencies")
		}
	}
}
