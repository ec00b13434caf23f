// Package selection provides an ordered, cursor-addressable list used by the
// interactive pick modes.
package selection

import "iter"

// List holds an ordered set of elements and a cursor. The elements never
// change after construction; only the cursor moves. Movement clamps at the
// ends rather than wrapping.
type List[T any] struct {
	items  []T
	cursor int
}

// New builds a List over items. The cursor starts on the first element when
// items is non-empty.
func New[T any](items []T) *List[T] {
	return &List[T]{items: items}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// SelectPrevious moves the cursor one step toward the first element,
// stopping there. No-op on an empty list.
func (l *List[T]) SelectPrevious() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// SelectNext moves the cursor one step toward the last element, stopping
// there. No-op on an empty list.
func (l *List[T]) SelectNext() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
	}
}

// Selection returns the element under the cursor. The second return value is
// false when the list is empty.
func (l *List[T]) Selection() (T, bool) {
	if len(l.items) == 0 {
		var zero T
		return zero, false
	}
	return l.items[l.cursor], true
}

// SelectedIndex returns the cursor position. An empty list reports 0; use
// Selection to distinguish that from a selected first element.
func (l *List[T]) SelectedIndex() int {
	return l.cursor
}

// All returns an iterator over the elements in stored order. The sequence can
// be ranged over any number of times.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}
