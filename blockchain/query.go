package blockchain

import "github.com/janction/sdk-go/types"

// QueryOption narrows the pending task listing. The chain returns every
// pending task in one response; options are applied to that response.
type QueryOption func(*pendingFilter)

type pendingFilter struct {
	requester string
	limit     int
	open      bool
}

func (f pendingFilter) keep(t *types.Task) bool {
	if t == nil {
		return false
	}
	if f.requester != "" && t.Requester != f.requester {
		return false
	}
	if f.open && len(t.PendingThreads()) == 0 {
		return false
	}
	return true
}

// WithRequester keeps tasks created by addr.
func WithRequester(addr string) QueryOption {
	return func(f *pendingFilter) {
		f.requester = addr
	}
}

// WithLimit caps the number of tasks returned. Zero means no limit.
func WithLimit(n int) QueryOption {
	return func(f *pendingFilter) {
		if n > 0 {
			f.limit = n
		}
	}
}

// WithOpenThreads keeps tasks that still have at least one thread to work on.
func WithOpenThreads() QueryOption {
	return func(f *pendingFilter) {
		f.open = true
	}
}
