package selection_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/samscott89/amp/internal/selection"
)

func collect[T any](l *selection.List[T]) []T {
	var items []T
	for item := range l.All() {
		items = append(items, item)
	}
	return items
}

func TestNew_CursorStartsOnFirstElement(t *testing.T) {
	l := selection.New([]string{"a", "b", "c"})

	assert.Equal(t, l.SelectedIndex(), 0)

	item, ok := l.Selection()
	assert.Assert(t, ok)
	assert.Equal(t, item, "a")
}

func TestNew_EmptyListHasNoSelection(t *testing.T) {
	l := selection.New[string](nil)

	_, ok := l.Selection()
	assert.Assert(t, !ok)
	assert.Equal(t, l.SelectedIndex(), 0)
	assert.Equal(t, l.Len(), 0)
}

func TestSelectNext_ClampsAtLastElement(t *testing.T) {
	l := selection.New([]string{"a", "b"})

	l.SelectNext()
	assert.Equal(t, l.SelectedIndex(), 1)

	// Already on the last element; further calls are no-ops.
	l.SelectNext()
	l.SelectNext()
	assert.Equal(t, l.SelectedIndex(), 1)

	item, ok := l.Selection()
	assert.Assert(t, ok)
	assert.Equal(t, item, "b")
}

func TestSelectPrevious_ClampsAtFirstElement(t *testing.T) {
	l := selection.New([]string{"a", "b"})

	// Already on the first element; this is a no-op.
	l.SelectPrevious()
	assert.Equal(t, l.SelectedIndex(), 0)

	l.SelectNext()
	l.SelectPrevious()
	assert.Equal(t, l.SelectedIndex(), 0)
}

func TestMovement_NoOpOnEmptyList(t *testing.T) {
	l := selection.New[int](nil)

	l.SelectNext()
	l.SelectPrevious()

	assert.Equal(t, l.SelectedIndex(), 0)
	_, ok := l.Selection()
	assert.Assert(t, !ok)
}

func TestAll_YieldsElementsInStoredOrder(t *testing.T) {
	l := selection.New([]int{3, 1, 2})

	assert.DeepEqual(t, collect(l), []int{3, 1, 2})
}

func TestAll_IsRestartable(t *testing.T) {
	l := selection.New([]string{"a", "b"})

	first := collect(l)
	second := collect(l)

	assert.DeepEqual(t, first, second)
}

func TestAll_StopsWhenConsumerBreaks(t *testing.T) {
	l := selection.New([]int{1, 2, 3})

	var seen []int
	for item := range l.All() {
		seen = append(seen, item)
		if len(seen) == 2 {
			break
		}
	}

	assert.DeepEqual(t, seen, []int{1, 2})
}
