package list

import "github.com/pkg/errors"

// Reverse returns a list with the values of l in the opposite order.
func (l List[T]) Reverse() List[T] {
	var acc List[T]
	for n := l.n; n != nil; n = n.rest {
		acc = acc.Cons(n.first)
	}
	return acc
}

// Concat returns a list with the values of l followed by the values of other.
// The nodes of other are shared by the result, so the cost is linear in the
// length of l only.
func (l List[T]) Concat(other List[T]) List[T] {
	if l.n == nil {
		return other
	}
	if other.n == nil {
		return l
	}
	return prependReversed(l.Reverse().n, other)
}

// RemoveAt returns a list with the value at index i left out. It fails with
// ErrIndexOutOfRange unless 0 <= i < l.Len(). The values after i are shared
// with l.
func (l List[T]) RemoveAt(i int) (List[T], error) {
	if i < 0 || i >= l.Len() {
		return l, errors.Wrapf(ErrIndexOutOfRange, "remove index %d from list of length %d", i, l.Len())
	}
	var prefix List[T]
	n := l.n
	for j := 0; j < i; j++ {
		prefix = prefix.Cons(n.first)
		n = n.rest
	}
	return prependReversed(prefix.n, List[T]{n.rest}), nil
}

// Filter returns a list of the values of l for which pred returns true, in
// their original order.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	var acc List[T]
	for n := l.n; n != nil; n = n.rest {
		if pred(n.first) {
			acc = acc.Cons(n.first)
		}
	}
	return acc.Reverse()
}

// Map returns a list of f applied to every value of l, in order.
func Map[T, S any](l List[T], f func(T) S) List[S] {
	var acc List[S]
	for n := l.n; n != nil; n = n.rest {
		acc = acc.Cons(f(n.first))
	}
	return acc.Reverse()
}

// FlatMap applies f to every value of l and returns the concatenation of the
// resulting lists, in order.
func FlatMap[T, S any](l List[T], f func(T) List[S]) List[S] {
	var acc List[S]
	for n := l.n; n != nil; n = n.rest {
		for m := f(n.first).n; m != nil; m = m.rest {
			acc = acc.Cons(m.first)
		}
	}
	return acc.Reverse()
}

// Fold combines the values of l from head to end, starting with init.
func Fold[T, A any](l List[T], init A, f func(A, T) A) A {
	acc := init
	for n := l.n; n != nil; n = n.rest {
		acc = f(acc, n.first)
	}
	return acc
}

// prependReversed prepends the values of the chain starting at rev onto l, so
// that the last value of rev ends up as the head of the result.
func prependReversed[T any](rev *node[T], l List[T]) List[T] {
	for ; rev != nil; rev = rev.rest {
		l = l.Cons(rev.first)
	}
	return l
}
