// Package zipper provides a cursor over a finite sequence, generalized
// into a ring: stepping past the last element wraps back to the first,
// and stepping before the first wraps to the last. The cursor (the
// focus) can move in either direction, elements can be inserted and
// removed at the focus, and a predicate search always terminates
// because the ring revisits every element within Len steps. The shape
// suits navigation through things that should never run off an edge,
// like browser tabs or windows in a tiling window manager.
package zipper

import (
	"fmt"
	"strings"

	"github.com/midbel/zipper/internal/deque"
)

// Direction selects a way to move through the sequence, relative to the
// order of the elements in the original source.
type Direction int

const (
	Original Direction = iota
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Original:
		return "original"
	case Reverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// Zipper keeps a sequence split in two stacks around the focused
// element: forward holds the focus and everything after it in source
// order, backward holds everything before it with the nearest
// predecessor first. Whenever the zipper is not empty, the front of
// forward is the focus.
type Zipper[T any] struct {
	forward  deque.Deque[T]
	backward deque.Deque[T]
}

func New[T any]() *Zipper[T] {
	var z Zipper[T]
	return &z
}

// Collect builds a zipper from the given values, keeping their order.
// The focus starts on the first value.
func Collect[T any](values ...T) *Zipper[T] {
	z := New[T]()
	for i := range values {
		z.forward.PushBack(values[i])
	}
	return z
}

// Len returns the number of elements held by the zipper.
func (z *Zipper[T]) Len() int {
	return z.forward.Len() + z.backward.Len()
}

// Focus returns the currently focused element. It reports false when
// the zipper is empty.
func (z *Zipper[T]) Focus() (T, bool) {
	return z.forward.Front()
}

// Step moves the focus one position in the given direction, wrapping
// around the end of the sequence when necessary. Stepping an empty
// zipper does nothing.
func (z *Zipper[T]) Step(dir Direction) {
	if z.Len() == 0 {
		return
	}
	switch dir {
	case Original:
		z.advance(dir)
		z.rotate(dir)
	case Reverse:
		z.rotate(dir)
		z.advance(dir)
	}
}

// StepForwards moves the focus one position in the Original direction.
func (z *Zipper[T]) StepForwards() {
	z.Step(Original)
}

// StepBackwards moves the focus one position in the Reverse direction.
func (z *Zipper[T]) StepBackwards() {
	z.Step(Reverse)
}

// ResetStart moves the focus back to the first element of the original
// sequence.
func (z *Zipper[T]) ResetStart() {
	reset(&z.forward, &z.backward)
}

// ResetEnd moves the focus to the last element of the original
// sequence.
func (z *Zipper[T]) ResetEnd() {
	z.resetEnd()
	z.Step(Reverse)
}

// resetEnd drains everything into backward. It leaves the zipper
// without a focus; the caller has to step once in Reverse to restore
// the invariant.
func (z *Zipper[T]) resetEnd() {
	reset(&z.backward, &z.forward)
}

// Refocus skips ahead in the sequence until it reaches the first
// element satisfying the predicate. The ring guarantees the search
// terminates: a full traversal visits every element within Len steps.
// When no element matches, the search gives up after a full traversal
// and leaves the focus one step past where it started.
func (z *Zipper[T]) Refocus(p func(T) bool) {
	z.refocus(Original, p)
}

// RefocusBackwards skips back in the sequence until it reaches the
// first element satisfying the predicate. When a match exists it lands
// on the same element, with the same internal split, as Refocus does;
// when none does, it leaves the focus one step before where it started.
func (z *Zipper[T]) RefocusBackwards(p func(T) bool) {
	z.refocus(Reverse, p)
}

func (z *Zipper[T]) refocus(dir Direction, p func(T) bool) {
	var counter int
	for {
		z.Step(dir)
		item, ok := z.Focus()
		if !ok || p(item) || counter >= z.Len() {
			return
		}
		counter++
	}
}

// PushFocus inserts an element at the current position. The previously
// focused element becomes the successor of the inserted one.
func (z *Zipper[T]) PushFocus(elem T) {
	z.forward.PushFront(elem)
}

// TakeFocus removes and returns the currently focused element. The next
// element in the original order becomes the new focus, wrapping back to
// the start of the ring when the removed element was the last one.
func (z *Zipper[T]) TakeFocus() (T, bool) {
	next, ok := z.forward.PopFront()
	if z.forward.Empty() {
		reset(&z.forward, &z.backward)
	}
	return next, ok
}

// TakePrevious removes and returns the element immediately before the
// focus, wrapping to the end of the ring when the focus is on the first
// element. The focus itself does not move, except on a single element
// zipper where the predecessor of the focus is the focus itself.
func (z *Zipper[T]) TakePrevious() (T, bool) {
	if z.Len() == 0 {
		var zero T
		return zero, false
	}
	if z.backward.Empty() {
		z.resetEnd()
	}
	popPush(&z.backward, &z.forward)
	prev, ok := z.forward.PopFront()
	if z.forward.Empty() {
		reset(&z.forward, &z.backward)
	}
	return prev, ok
}

// Copy returns an independent zipper with the same elements and the
// same split around the focus.
func (z *Zipper[T]) Copy() *Zipper[T] {
	return &Zipper[T]{
		forward:  *z.forward.Copy(),
		backward: *z.backward.Copy(),
	}
}

// String renders the zipper as [e0, e1, ..., en], starting at the focus
// and following the original order around the ring.
func (z *Zipper[T]) String() string {
	var (
		str strings.Builder
		it  = z.Iter()
	)
	str.WriteString("[")
	for i := 0; ; i++ {
		item, ok := it.Next()
		if !ok {
			break
		}
		if i > 0 {
			str.WriteString(", ")
		}
		str.WriteString(fmt.Sprint(item))
	}
	str.WriteString("]")
	return str.String()
}

// Equal reports whether two zippers hold the same elements in the same
// split around the focus. Two zippers over the same sequence rotated to
// the same focus through different moves can still differ when their
// internal splits differ.
func Equal[T comparable](fst, snd *Zipper[T]) bool {
	if fst.Len() != snd.Len() || fst.forward.Len() != snd.forward.Len() {
		return false
	}
	for i := 0; i < fst.Len(); i++ {
		left, _ := fst.Ith(i)
		right, _ := snd.Ith(i)
		if left != right {
			return false
		}
	}
	return true
}

// advance takes one step in the given direction by popping from the
// stack matching the direction of motion and pushing onto the other.
// The caller has to rotate first: advancing from an empty stack means
// the rotation invariant was broken, and there is no sane way to
// continue.
func (z *Zipper[T]) advance(dir Direction) {
	switch dir {
	case Original:
		popPush(&z.forward, &z.backward)
	case Reverse:
		popPush(&z.backward, &z.forward)
	}
}

// rotate refills the stack matching the direction of motion from the
// other one when it has run dry, which is what ties the two ends of the
// sequence into a ring.
func (z *Zipper[T]) rotate(dir Direction) {
	switch {
	case dir == Original && z.forward.Empty():
		z.ResetStart()
	case dir == Reverse && z.backward.Empty():
		z.resetEnd()
	}
}

// reset moves the whole content of src onto the front of dst, reversing
// its order.
func reset[T any](dst, src *deque.Deque[T]) {
	for {
		item, ok := src.PopFront()
		if !ok {
			return
		}
		dst.PushFront(item)
	}
}

func popPush[T any](src, dst *deque.Deque[T]) {
	item, ok := src.PopFront()
	if !ok {
		panic("zipper: advancing focus from an empty stack")
	}
	dst.PushFront(item)
}
