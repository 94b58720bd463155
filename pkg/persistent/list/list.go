// Package list implements a persistent singly-linked list.
//
// A List is immutable: every operation that "changes" a list returns a new one
// and leaves the receiver intact. Unchanged suffixes are shared between the
// old and the new list instead of being copied, so prepending is O(1) and
// operations that rebuild a prefix only allocate that prefix.
//
// All traversals are iterative, so lists of any length can be processed
// without growing the goroutine stack.
package list

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyList is returned when an element is required but the list (or
	// the remainder of the list being walked) is empty.
	ErrEmptyList = errors.New("empty list")
	// ErrInvalidIndex is returned by At when the index is negative.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrIndexOutOfRange is returned by RemoveAt when the index does not name
	// an element of the list.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// List is a persistent list of values of type T. The zero value is a valid
// empty list.
//
// Two List values compare equal with == iff they share the same underlying
// chain of nodes. Use Equal or EqualFunc to compare elements.
type List[T any] struct {
	n *node[T]
}

type node[T any] struct {
	first T
	rest  *node[T]
	// Number of values in the list starting at this node.
	count int
}

// Empty returns an empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons returns a new list with v in front of l.
func Cons[T any](v T, l List[T]) List[T] {
	return l.Cons(v)
}

// FromSlice returns a list containing the values of s in the same order. The
// list does not retain s.
func FromSlice[T any](s []T) List[T] {
	var acc List[T]
	for _, v := range s {
		acc = acc.Cons(v)
	}
	return acc.Reverse()
}

// Of returns a list of the arguments; the first argument becomes the head.
// Of(a, b, c) is the same list as Cons(a, Cons(b, Cons(c, Empty[T]()))).
func Of[T any](values ...T) List[T] {
	return FromSlice(values)
}

// Cons returns a new list with an additional value in the front.
func (l List[T]) Cons(v T) List[T] {
	return List[T]{&node[T]{v, l.n, l.Len() + 1}}
}

// IsEmpty reports whether the list has no values.
func (l List[T]) IsEmpty() bool {
	return l.n == nil
}

// Len returns the number of values in the list.
func (l List[T]) Len() int {
	if l.n == nil {
		return 0
	}
	return l.n.count
}

// Head returns the first value in the list.
func (l List[T]) Head() (T, error) {
	if l.n == nil {
		var zero T
		return zero, errors.Wrap(ErrEmptyList, "head")
	}
	return l.n.first, nil
}

// Tail returns the list after the first value.
func (l List[T]) Tail() (List[T], error) {
	if l.n == nil {
		return l, errors.Wrap(ErrEmptyList, "tail")
	}
	return List[T]{l.n.rest}, nil
}

// At returns the value at the zero-based index i. It fails with
// ErrInvalidIndex if i is negative and with ErrEmptyList if the walk runs past
// the last value.
func (l List[T]) At(i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, errors.Wrapf(ErrInvalidIndex, "list index %d", i)
	}
	n := l.n
	for j := 0; j < i && n != nil; j++ {
		n = n.rest
	}
	if n == nil {
		return zero, errors.Wrapf(ErrEmptyList, "list index %d", i)
	}
	return n.first, nil
}

// Slice returns the values of the list in order. The result is never nil.
func (l List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for n := l.n; n != nil; n = n.rest {
		s = append(s, n.first)
	}
	return s
}

// String renders the list as "[v0, v1, ..., vk]", formatting each value with
// fmt.Sprint. The empty list is rendered as "[]".
func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.n; n != nil; n = n.rest {
		if n != l.n {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, n.first)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal reports whether a and b contain the same values in the same order.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares values with eq.
func EqualFunc[T, U any](a List[T], b List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	m, n := a.n, b.n
	for m != nil {
		if any(m) == any(n) {
			// Shared suffix.
			return true
		}
		if !eq(m.first, n.first) {
			return false
		}
		m, n = m.rest, n.rest
	}
	return true
}
