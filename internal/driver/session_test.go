package driver

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/huynhanx03/go-linear/pkg/common/apperr"
	"github.com/huynhanx03/go-linear/pkg/settings"
)

func newSession(t *testing.T, kind string, conf settings.Config) (*Session, *bytes.Buffer) {
	t.Helper()
	target, err := NewTarget(kind, conf)
	require.NoError(t, err)
	var out bytes.Buffer
	return NewSession(target, &out, nil), &out
}

func smallConfig() settings.Config {
	conf := settings.Default()
	conf.Stack.Capacity = 2
	conf.Queue.Capacity = 2
	conf.Circular.Capacity = 3
	return conf
}

// =============================================================================
// NewTarget
// =============================================================================

func TestNewTarget(t *testing.T) {
	tests := []struct {
		kind     string
		wantName string
		wantCap  int
	}{
		{KindStack, "Stack", 100},
		{KindQueue, "Simple Queue", 50},
		{KindCircular, "Circular Queue", 4},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			target, err := NewTarget(tt.kind, settings.Default())
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, target.Name)
			assert.Equal(t, tt.wantCap, target.Cap())
			assert.True(t, target.IsEmpty())
		})
	}

	_, err := NewTarget("deque", settings.Default())
	assert.ErrorContains(t, err, `unknown structure "deque"`)
}

// =============================================================================
// Exec
// =============================================================================

func TestSession_EmptyMessages(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{KindStack, "Stack is Empty! Cannot pop.\nStack is Empty!\nStack is empty.\nStack is empty.\nStack is not full.\n"},
		{KindQueue, "Queue is Empty! Cannot dequeue.\nQueue is Empty!\nSimple Queue is empty.\nSimple Queue is empty.\nSimple Queue is not full.\n"},
		{KindCircular, "Circular Queue is Empty! Cannot dequeue.\nCircular Queue is Empty!\nCircular Queue is empty.\nCircular Queue is empty.\nCircular Queue is not full.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s, out := newSession(t, tt.kind, smallConfig())
			require.NoError(t, s.Run(context.Background(), []Command{remove, peek, display, isEmpty, isFull}))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestSession_FullMessages(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{KindStack, "Stack is Full! Cannot push 3\nStack is full.\n"},
		{KindQueue, "Queue is Full! Cannot enqueue 3\nSimple Queue is full.\n"},
		{KindCircular, "Circular Queue is Full! Cannot enqueue 3\nCircular Queue is full.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s, out := newSession(t, tt.kind, smallConfig())
			require.NoError(t, s.Run(context.Background(), []Command{add(1), add(2)}))
			out.Reset()
			require.NoError(t, s.Run(context.Background(), []Command{add(3), isFull}))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestSession_RunStopsAtExit(t *testing.T) {
	s, out := newSession(t, KindStack, smallConfig())
	require.NoError(t, s.Run(context.Background(), []Command{add(1), {Op: OpExit}, add(2)}))
	assert.Equal(t, "Pushed 1 onto stack\n", out.String())
	assert.Equal(t, 1, s.Target().Len())
}

func TestSession_RunCanceled(t *testing.T) {
	s, out := newSession(t, KindStack, smallConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, []Command{add(1), display})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
	assert.True(t, s.Target().IsEmpty())
}

func TestSession_ExecExit(t *testing.T) {
	s, _ := newSession(t, KindQueue, smallConfig())
	assert.ErrorIs(t, s.Exec(Command{Op: OpExit}), ErrExit)
}

func TestSession_InvalidOp(t *testing.T) {
	s, out := newSession(t, KindQueue, smallConfig())
	require.NoError(t, s.Exec(Command{Op: 42}))
	assert.Equal(t, "Invalid choice! Please try again.\n", out.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestSession_WriteError(t *testing.T) {
	target, err := NewTarget(KindStack, smallConfig())
	require.NoError(t, err)

	s := NewSession(target, failWriter{}, nil)
	err = s.Exec(add(1))
	assert.ErrorContains(t, err, "write output: broken pipe")
	// The push itself still happened.
	assert.Equal(t, 1, target.Len())
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "add", OpAdd.String())
	assert.Equal(t, "is_full", OpIsFull.String())
	assert.Equal(t, "op(0)", Op(0).String())
}

// =============================================================================
// Repl
// =============================================================================

func TestRepl(t *testing.T) {
	s, out := newSession(t, KindStack, smallConfig())

	in := strings.NewReader("1 5\n1 6\n1 7\n3\n4\n2\n5\n6\n9\nx\n7\n1 8\n")
	require.NoError(t, s.Repl(context.Background(), in))

	got := out.String()
	assert.Contains(t, got, "\nStack Operations:\n1. Push\n2. Pop\n3. Peek\n")
	assert.Contains(t, got, "Enter item to push: Pushed 5 onto stack\n")
	assert.Contains(t, got, "Stack is Full! Cannot push 7\n")
	assert.Contains(t, got, "Top element is 6\n")
	assert.Contains(t, got, "Stack elements: 6 5\n")
	assert.Contains(t, got, "Popped 6 from stack\n")
	assert.Contains(t, got, "Stack is not empty.\n")
	assert.Contains(t, got, "Stack is not full.\n")
	assert.Equal(t, 2, strings.Count(got, "Invalid choice! Please try again.\n"))
	// Input after exit is never read.
	assert.NotContains(t, got, "Pushed 8")
	assert.Equal(t, 1, s.Target().Len())
}

func TestRepl_QueueMenu(t *testing.T) {
	s, out := newSession(t, KindCircular, smallConfig())

	require.NoError(t, s.Repl(context.Background(), strings.NewReader("1 10 2 2 7")))
	got := out.String()
	assert.Contains(t, got, "1. Enqueue\n2. Dequeue\n")
	assert.Contains(t, got, "Enter item to enqueue: 10 enqueued to circular queue.\n")
	assert.Contains(t, got, "Dequeued element: 10\n")
	assert.Contains(t, got, "Circular Queue is Empty! Cannot dequeue.\n")
}

func TestRepl_BadItem(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	target, err := NewTarget(KindQueue, smallConfig())
	require.NoError(t, err)
	var out bytes.Buffer
	s := NewSession(target, &out, zap.New(core))

	require.NoError(t, s.Repl(context.Background(), strings.NewReader("1 ten 4 7")))
	assert.Contains(t, out.String(), "Simple Queue got invalid input \"ten\"! Please enter an integer.\n")
	assert.Contains(t, out.String(), "Simple Queue is empty.\n")
	assert.True(t, s.Target().IsEmpty())

	rejected := logs.FilterMessage("operation rejected").All()
	require.Len(t, rejected, 1)
	assert.EqualValues(t, apperr.CodeInvalidInput, rejected[0].ContextMap()["code"])
}

func TestRepl_EOF(t *testing.T) {
	s, out := newSession(t, KindQueue, smallConfig())

	require.NoError(t, s.Repl(context.Background(), strings.NewReader("1 4")))
	assert.Contains(t, out.String(), "4 enqueued to queue.\n")

	// EOF while waiting for the item.
	s, _ = newSession(t, KindQueue, smallConfig())
	require.NoError(t, s.Repl(context.Background(), strings.NewReader("1")))
	assert.True(t, s.Target().IsEmpty())
}

func TestRepl_Canceled(t *testing.T) {
	s, out := newSession(t, KindQueue, smallConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Repl(ctx, strings.NewReader("4 7"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
