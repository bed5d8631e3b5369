package shpanseq

import (
	"context"
	"io"

	"github.com/shpandrak/shpanseq/internal/util"
)

type concatenatedSeq[T any] struct {
	seqs    Seq[Seq[T]]
	currSeq *Seq[T]
}

// Concat returns a Seq producing all items of each inner seq in order.
// An inner seq is not opened, let alone pulled, before every seq preceding it
// has been exhausted, so trailing seqs stay untouched while an earlier one
// still produces (including forever, for infinite seqs).
func Concat[T any](seqs Seq[Seq[T]]) Seq[T] {
	return NewSeq(&concatenatedSeq[T]{
		seqs: seqs,
	})
}

// ConcatSeqs returns a Seq producing all items of the given seqs in order.
func ConcatSeqs[T any](seqs ...Seq[T]) Seq[T] {
	if len(seqs) == 0 {
		return Empty[T]()
	}
	return Concat(Just(seqs...))
}

func (cs *concatenatedSeq[T]) Open(ctx context.Context) error {
	// Open the seq of seqs
	err := openSubSeq(ctx, cs.seqs)
	if err != nil {
		return err
	}
	firstSeq, err := cs.seqs.provider(ctx)
	if err != nil {
		// If no seqs are available at all, leave currSeq nil so Emit reports EOF
		if err == io.EOF {
			return nil
		}
		return err
	}

	// Only the first seq gets opened here, the rest wait for their turn
	err = openSubSeq(ctx, firstSeq)
	if err != nil {
		return err
	}

	cs.currSeq = &firstSeq
	return nil
}

func (cs *concatenatedSeq[T]) Close() {
	if cs.currSeq != nil {
		// Close only the current seq, later seqs were never opened
		doCloseSubSeq(*cs.currSeq)
		cs.currSeq = nil
	}
	doCloseSubSeq(cs.seqs)
}

func (cs *concatenatedSeq[T]) Emit(ctx context.Context) (T, error) {

	// No seq is active, the whole concatenation is exhausted
	if cs.currSeq == nil {
		return util.DefaultValue[T](), io.EOF
	}

	v, err := cs.currSeq.provider(ctx)
	if err == nil {
		return v, nil
	}
	if err != io.EOF {
		return util.DefaultValue[T](), err
	}

	// Current seq is done, close it and activate the next one.
	// The switch is one-way, an exhausted seq is never revisited.
	doCloseSubSeq(*cs.currSeq)
	cs.currSeq = nil

	nextSeq, err := cs.seqs.provider(ctx)
	if err != nil {
		// io.EOF here means the whole concatenation is exhausted
		return util.DefaultValue[T](), err
	}

	err = openSubSeq(ctx, nextSeq)
	if err != nil {
		return util.DefaultValue[T](), err
	}
	cs.currSeq = &nextSeq

	return cs.Emit(ctx)
}
