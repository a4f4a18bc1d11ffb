package queue

// Mode selects how a Circular queue tells full from empty.
type Mode uint8

const (
	// ModeFull lets the queue hold capacity items. Empty is tracked with a
	// sentinel head index rather than by comparing head and tail.
	ModeFull Mode = iota

	// ModeReserved keeps one slot free, so the queue holds capacity-1
	// items. Because head and tail are never compared to detect empty,
	// fullness is a length check rather than (tail+1)%capacity == head;
	// with an unset-head sentinel that comparison only fires at capacity.
	ModeReserved
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

type options struct {
	mode Mode
}

// Option configures a Circular queue.
type Option func(o *options)

// WithReservedSlot makes the queue keep one slot free, so a queue created
// with capacity n holds at most n-1 items.
func WithReservedSlot() Option {
	return func(o *options) {
		o.mode = ModeReserved
	}
}

// WithMode sets the capacity mode explicitly.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}
