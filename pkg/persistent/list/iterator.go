package list

// Iterator is an iterator over list values. It can be used like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    v := it.Elem()
//	    // do something with v...
//	}
type Iterator[T any] struct {
	n *node[T]
}

// Iterator returns an iterator positioned at the head of the list.
func (l List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l.n}
}

// HasElem returns whether the iterator is pointing to a value.
func (it *Iterator[T]) HasElem() bool {
	return it.n != nil
}

// Elem returns the value the iterator currently points to. It must only be
// called when HasElem returns true.
func (it *Iterator[T]) Elem() T {
	return it.n.first
}

// Next moves the iterator to the next value.
func (it *Iterator[T]) Next() {
	it.n = it.n.rest
}

// Rest returns the part of the list that has not been visited yet, including
// the current value.
func (it *Iterator[T]) Rest() List[T] {
	return List[T]{it.n}
}
