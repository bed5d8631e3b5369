package shpanseq

import "context"

// Provider is what needs to be implemented to expose a Seq.
// it includes the lifecycle methods Open and Close.
// and a "generator method" Emit that returns the next item in the sequence.
type Provider[T any] interface {
	Lifecycle

	// Emit returns the next item in the sequence, or an error
	// When the sequence is done, it should return io.EOF, and keep returning io.EOF
	// for any further calls. The shpanseq package will handle the io.EOF error
	// and will not propagate it to the user.
	// The shpanseq package will not call Emit concurrently, from multiple goroutines.
	// it is the provider's responsibility to respect context cancellation if supported.
	// the shpanseq package will check for context cancellation between calls to Emit.
	Emit(ctx context.Context) (T, error)
}

// Lifecycle is an interface that is used to add functionality to the sequence lifecycle.
type Lifecycle interface {
	Open(ctx context.Context) error
	Close()
}

type lifecycleWrapper struct {
	openFunc  func(ctx context.Context) error
	closeFunc func()
}

func NewLifecycle(openFunc func(ctx context.Context) error, closeFunc func()) Lifecycle {
	return &lifecycleWrapper{openFunc: openFunc, closeFunc: closeFunc}
}

func (l *lifecycleWrapper) Open(ctx context.Context) error {
	if l.openFunc != nil {
		return l.openFunc(ctx)
	}
	return nil
}

func (l *lifecycleWrapper) Close() {
	if l.closeFunc != nil {
		l.closeFunc()
	}
}
