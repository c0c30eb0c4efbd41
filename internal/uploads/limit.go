package uploads

import (
	"fmt"
	"io"
)

// DefaultMaxBytes is the upload ceiling when none is configured
const DefaultMaxBytes int64 = 5 << 20

// ReachLimitError is returned once a reader yields more than MaxBytes
type ReachLimitError struct {
	MaxBytes int64
}

func (e *ReachLimitError) Error() string {
	return fmt.Sprintf("image exceeds the limit of %s", formatBytes(e.MaxBytes))
}

// NewMaxSizeReader wraps r so that reading past maxSize fails with *ReachLimitError
func NewMaxSizeReader(r io.Reader, maxSize int64) io.Reader {
	return &maxSizeReader{reader: r, max: maxSize, left: maxSize}
}

type maxSizeReader struct {
	reader io.Reader
	max    int64
	left   int64
}

func (r *maxSizeReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// one byte past the remaining budget is enough to detect an overflow
	if int64(len(p)) > r.left+1 {
		p = p[:r.left+1]
	}
	n, err := r.reader.Read(p)
	if int64(n) <= r.left {
		r.left -= int64(n)
		return n, err
	}

	n = int(r.left)
	r.left = 0
	return n, &ReachLimitError{MaxBytes: r.max}
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d bytes", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit && exp < 3; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(b)/float64(div), "KMGT"[exp])
}
