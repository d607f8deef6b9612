package discovery

import (
	"context"

	"github.com/thoreinstein/edfind/internal/editor"
)

// Future is the pending result of DiscoverFuture.
type Future struct {
	done   chan struct{}
	result []editor.Config
	err    error
}

// Wait blocks until the batch finishes or ctx is done. A batch that failed
// returns its failure as the error.
func (f *Future) Wait(ctx context.Context) ([]editor.Config, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done is closed when the batch finishes.
func (f *Future) Done() <-chan struct{} {
	return f.done
}
