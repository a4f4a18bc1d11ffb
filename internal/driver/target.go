package driver

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-linear/pkg/datastructs/container"
	"github.com/huynhanx03/go-linear/pkg/datastructs/queue"
	"github.com/huynhanx03/go-linear/pkg/datastructs/stack"
	"github.com/huynhanx03/go-linear/pkg/settings"
)

// Kinds of structure the driver can operate on.
const (
	KindStack    = "stack"
	KindQueue    = "queue"
	KindCircular = "circular"
)

// Kinds lists every kind in display order.
var Kinds = []string{KindStack, KindQueue, KindCircular}

// Structure is the int-valued view of a bounded container that the driver
// operates on. Add and Remove are push/pop for a stack and enqueue/dequeue
// for a queue.
type Structure interface {
	container.Container[int]
	Add(v int) error
	Remove() (int, error)
	Peek() (int, error)
}

// Target is a Structure plus the words used to talk about it.
type Target struct {
	Kind string
	Name string
	Structure
	words vocab
}

type vocab struct {
	subject     string // name used in rejection messages
	addTitle    string // menu entry for Add
	removeTitle string // menu entry for Remove
	added       string // printf format for a successful Add
	removed     string // printf format for a successful Remove
	peeked      string // printf format for a successful Peek
}

var (
	stackWords = vocab{
		subject:     "Stack",
		addTitle:    "Push",
		removeTitle: "Pop",
		added:       "Pushed %d onto stack",
		removed:     "Popped %d from stack",
		peeked:      "Top element is %d",
	}
	queueWords = vocab{
		subject:     "Queue",
		addTitle:    "Enqueue",
		removeTitle: "Dequeue",
		added:       "%d enqueued to queue.",
		removed:     "Dequeued element: %d",
		peeked:      "Front element: %d",
	}
	circularWords = vocab{
		subject:     "Circular Queue",
		addTitle:    "Enqueue",
		removeTitle: "Dequeue",
		added:       "%d enqueued to circular queue.",
		removed:     "Dequeued element: %d",
		peeked:      "Front element: %d",
	}
)

type stackAdapter struct {
	*stack.Stack[int]
}

func (a stackAdapter) Add(v int) error      { return a.Push(v) }
func (a stackAdapter) Remove() (int, error) { return a.Pop() }

type fifo interface {
	queue.Queue[int]
	All() iter.Seq[int]
}

type queueAdapter struct {
	fifo
}

func (a queueAdapter) Add(v int) error      { return a.Enqueue(v) }
func (a queueAdapter) Remove() (int, error) { return a.Dequeue() }

// NewTarget builds a fresh structure of the given kind sized from conf.
func NewTarget(kind string, conf settings.Config) (*Target, error) {
	switch kind {
	case KindStack:
		s, err := stack.New[int](conf.Stack.Capacity)
		if err != nil {
			return nil, errors.Wrap(err, "create stack")
		}
		return &Target{Kind: kind, Name: "Stack", Structure: stackAdapter{s}, words: stackWords}, nil

	case KindQueue:
		q, err := queue.NewLinear[int](conf.Queue.Capacity)
		if err != nil {
			return nil, errors.Wrap(err, "create queue")
		}
		return &Target{Kind: kind, Name: "Simple Queue", Structure: queueAdapter{q}, words: queueWords}, nil

	case KindCircular:
		mode := queue.ModeFull
		if conf.Circular.ReserveSlot {
			mode = queue.ModeReserved
		}
		q, err := queue.NewCircular[int](conf.Circular.Capacity, queue.WithMode(mode))
		if err != nil {
			return nil, errors.Wrap(err, "create circular queue")
		}
		return &Target{Kind: kind, Name: "Circular Queue", Structure: queueAdapter{q}, words: circularWords}, nil

	default:
		return nil, errors.Errorf("unknown structure %q (want one of %v)", kind, Kinds)
	}
}
