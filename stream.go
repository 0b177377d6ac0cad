package lazy

import (
	"context"
	"errors"
	"io"
	"strings"
)

// ChunkGenerator produces the next chunk of a stream-like sequence
// (§4.E), or io.EOF once the stream is exhausted. This mirrors the
// teacher's own Generator[T] shape (a context-aware, error-returning
// producer function) rather than a bare channel, so stream sources
// compose with context cancellation the same way the rest of this
// module does.
type ChunkGenerator func(context.Context) (string, error)

// StreamSeq is the abstract stream-like sequence of §4.E: a sequence
// of chunks (typically strings) pulled from a ChunkGenerator. The HTTP
// stream (NewHTTPStream) is a separate adapter, not a StreamSeq.
// Implementations must not assume a chunk is a complete line; see
// Lines.
type StreamSeq struct {
	ctx  context.Context
	next ChunkGenerator
}

// NewStream wraps a ChunkGenerator as a StreamSeq. ctx bounds the
// lifetime of the stream; the generator is expected to return ctx's
// error (or io.EOF) once production ends.
func NewStream(ctx context.Context, next ChunkGenerator) StreamSeq {
	return StreamSeq{ctx: ctx, next: next}
}

// Each pulls chunks one at a time until the generator reports io.EOF,
// ctx is cancelled, or the visitor returns the stop sentinel.
func (s StreamSeq) Each(v Visitor[string]) {
	idx := 0
	for {
		if err := s.ctx.Err(); err != nil {
			return
		}
		chunk, err := s.next(s.ctx)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				panic(err) // host/transport errors propagate as-is, per §7
			}
			return
		}
		if !v(chunk, idx) {
			return
		}
		idx++
	}
}

// Lines splits each chunk of s on newlines and emits the resulting
// lines flat, per §4.E's lines() operator. This does not reassemble a
// line that spans two chunks: a chunk ending mid-line yields a
// trailing partial line, and the next chunk's leading partial line is
// emitted as its own separate element. §9 names this explicitly as a
// known limitation to document, not silently fix.
func Lines(s Sequence[string]) Seq[string] {
	return Of[string](linesNode{parent: s})
}

type linesNode struct{ parent Sequence[string] }

func (l linesNode) Each(v Visitor[string]) {
	idx := 0
	l.parent.Each(func(chunk string, _ int) bool {
		for _, line := range strings.Split(chunk, "\n") {
			if !v(line, idx) {
				return false
			}
			idx++
		}
		return true
	})
}
