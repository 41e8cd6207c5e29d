package deque

const minimumCapacity = 8

// Deque is a growable double-ended queue backed by a circular buffer.
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	list  []T
	head  int
	count int
}

func (q *Deque[T]) Len() int {
	return q.count
}

func (q *Deque[T]) Empty() bool {
	return q.count == 0
}

func (q *Deque[T]) PushFront(item T) {
	q.grow()
	q.head = q.index(-1)
	q.list[q.head] = item
	q.count++
}

func (q *Deque[T]) PushBack(item T) {
	q.grow()
	q.list[q.index(q.count)] = item
	q.count++
}

func (q *Deque[T]) PopFront() (T, bool) {
	var ret T
	if q.count == 0 {
		return ret, false
	}
	ret, q.list[q.head] = q.list[q.head], ret
	q.head = q.index(1)
	q.count--
	return ret, true
}

func (q *Deque[T]) Front() (T, bool) {
	var ret T
	if q.count == 0 {
		return ret, false
	}
	return q.list[q.head], true
}

func (q *Deque[T]) At(n int) (T, bool) {
	var ret T
	if n < 0 || n >= q.count {
		return ret, false
	}
	return q.list[q.index(n)], true
}

// Drain removes every element and returns them in front to back order.
func (q *Deque[T]) Drain() []T {
	if q.count == 0 {
		return nil
	}
	ret := make([]T, 0, q.count)
	for {
		item, ok := q.PopFront()
		if !ok {
			break
		}
		ret = append(ret, item)
	}
	return ret
}

func (q *Deque[T]) Copy() *Deque[T] {
	var ret Deque[T]
	if q.count == 0 {
		return &ret
	}
	ret.list = make([]T, q.count)
	ret.count = q.count
	for i := 0; i < q.count; i++ {
		ret.list[i] = q.list[q.index(i)]
	}
	return &ret
}

func (q *Deque[T]) index(n int) int {
	z := len(q.list)
	return ((q.head+n)%z + z) % z
}

func (q *Deque[T]) grow() {
	if q.count < len(q.list) {
		return
	}
	z := len(q.list) * 2
	if z < minimumCapacity {
		z = minimumCapacity
	}
	list := make([]T, z)
	for i := 0; i < q.count; i++ {
		list[i] = q.list[q.index(i)]
	}
	q.list = list
	q.head = 0
}
