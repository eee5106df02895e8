package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// lineReader reads lines while honoring context cancellation.
type lineReader struct {
	reader *bufio.Reader
	mu     sync.Mutex
}

func newLineReader(reader io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(reader)}
}

// ReadLine returns the next trimmed line. A final line without a trailing
// newline is returned with a nil error; io.EOF is only reported when
// nothing was read.
func (r *lineReader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		value, err := r.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		// The read goroutine finishes on its own once input arrives.
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && res.value != "" {
				return strings.TrimSpace(res.value), nil
			}
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}
