package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestItemsAvailableAfterConstruction(t *testing.T) {
	book := NewBook("B1", "T", "A", "X")
	magazine := NewMagazine("G1", "Weekly", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 9)

	assert.True(t, book.IsAvailable())
	assert.True(t, magazine.IsAvailable())
}

func TestBorrowDaysResolution(t *testing.T) {
	book := NewBook("B1", "T", "A", "X")
	magazine := NewMagazine("G1", "Weekly", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 9)

	// No configuration attached: per-variant defaults.
	assert.Equal(t, 14, book.BorrowDays(nil))
	assert.Equal(t, 7, magazine.BorrowDays(nil))

	// Resolved from the active configuration at call time, not cached.
	cfg := Config{BookBorrowDays: 21, MagazineBorrowDays: 3}
	assert.Equal(t, 21, book.BorrowDays(&cfg))
	assert.Equal(t, 3, magazine.BorrowDays(&cfg))
	cfg.BookBorrowDays = 28
	assert.Equal(t, 28, book.BorrowDays(&cfg))
}

func TestItemDetails(t *testing.T) {
	book := NewBook("B1", "Dune", "Frank Herbert", "978-0441172719")
	assert.Equal(t, "Book: Dune by Frank Herbert (ISBN: 978-0441172719)", book.Details())

	magazine := NewMagazine("G1", "National Geographic", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 142)
	assert.Equal(t, "Magazine: National Geographic Issue #142 (2026-02-01)", magazine.Details())
}

func TestBorrowedItemsReturnsCopy(t *testing.T) {
	m := NewMember("M1", "N", "e")
	m.borrowItem(NewBook("B1", "T", "A", "X"))

	held := m.BorrowedItems()
	held[0] = nil
	assert.Equal(t, "B1", m.BorrowedItems()[0].ID())
}
