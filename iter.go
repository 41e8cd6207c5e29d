package zipper

// Ith returns the element at the given signed offset from the focus.
// Positive offsets follow the Original direction, negative offsets the
// Reverse direction, wrapping around the ring in either case, so
// Ith(0) is the focus and Ith(-1) its predecessor. It reports false
// only when the zipper is empty.
func (z *Zipper[T]) Ith(i int) (T, bool) {
	count := z.Len()
	if count == 0 {
		var zero T
		return zero, false
	}
	if i < 0 {
		i += count
	}
	i = ((i % count) + count) % count

	if i < z.forward.Len() {
		return z.forward.At(i)
	}
	i -= z.forward.Len()
	return z.backward.At(z.backward.Len() - i - 1)
}

// Iter returns a view over the elements of the zipper, starting at the
// focus and following the original order around the ring until every
// element has been seen once. The view reads through the zipper without
// moving its focus; each call yields a fresh, independent view.
func (z *Zipper[T]) Iter() *Iter[T] {
	return &Iter[T]{
		zipper: z,
		count:  z.Len(),
		dir:    Original,
	}
}

// ReverseIter returns a view like Iter but walking the ring in the
// Reverse direction.
func (z *Zipper[T]) ReverseIter() *Iter[T] {
	return &Iter[T]{
		zipper: z,
		count:  z.Len(),
		dir:    Reverse,
	}
}

// Slice returns the elements of the zipper, starting at the focus and
// following the original order around the ring.
func (z *Zipper[T]) Slice() []T {
	if z.Len() == 0 {
		return nil
	}
	var (
		ret = make([]T, 0, z.Len())
		it  = z.Iter()
	)
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		ret = append(ret, item)
	}
	return ret
}

// Drain consumes the zipper, repeatedly taking the focused element
// until none is left. The elements come out starting at the focus and
// following the original order around the ring.
func (z *Zipper[T]) Drain() []T {
	if z.Len() == 0 {
		return nil
	}
	ret := make([]T, 0, z.Len())
	for {
		item, ok := z.TakeFocus()
		if !ok {
			break
		}
		ret = append(ret, item)
	}
	return ret
}

// Iter walks the elements of a zipper from its focus, in either
// direction, without mutating it. It stops after yielding each element
// exactly once. The view is read only; mutating the underlying zipper
// while a view is live does not corrupt the zipper, but the view may
// then yield elements from a mix of the old and new arrangement.
type Iter[T any] struct {
	zipper *Zipper[T]
	count  int
	cursor int
	dir    Direction
}

// Next returns the next element of the view. It reports false once the
// whole ring has been walked.
func (it *Iter[T]) Next() (T, bool) {
	if it.cursor <= -it.count || it.cursor >= it.count {
		var zero T
		return zero, false
	}
	i := it.cursor
	if it.dir == Original {
		it.cursor++
	} else {
		it.cursor--
	}
	return it.zipper.Ith(i)
}
