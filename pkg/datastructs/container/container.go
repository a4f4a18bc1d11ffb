package container

import (
	"fmt"
	"io"
	"iter"

	"github.com/valyala/bytebufferpool"
)

// Container is the read-only surface shared by the bounded stack and queues.
type Container[T any] interface {
	Len() int
	Cap() int
	IsEmpty() bool
	IsFull() bool

	// All iterates the items in display order: front to back for
	// queues, top to bottom for stacks.
	All() iter.Seq[T]
}

// Render writes the items of c on a single line, separated by spaces and
// terminated by a newline. An empty container writes just the newline.
func Render[T any](w io.Writer, c Container[T]) (int64, error) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	writeItems(bb, c)
	_ = bb.WriteByte('\n')
	return bb.WriteTo(w)
}

// Format returns the items of c separated by spaces.
func Format[T any](c Container[T]) string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	writeItems(bb, c)
	return bb.String()
}

func writeItems[T any](bb *bytebufferpool.ByteBuffer, c Container[T]) {
	first := true
	for v := range c.All() {
		if !first {
			_ = bb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(bb, v)
	}
}
