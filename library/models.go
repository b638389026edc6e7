package library

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Borrow periods used when an item has no configuration to consult.
const (
	DefaultBookBorrowDays     = 14
	DefaultMagazineBorrowDays = 7
)

// Config holds the system-wide circulation settings. A single Config instance
// governs every item's borrow period; it is immutable once the engine owns it.
type Config struct {
	DailyFineRate      decimal.Decimal
	BookBorrowDays     int
	MagazineBorrowDays int
}

// DefaultConfig returns the standard settings: $0.50 per day, 14-day books,
// 7-day magazines.
func DefaultConfig() Config {
	return Config{
		DailyFineRate:      decimal.New(50, -2),
		BookBorrowDays:     DefaultBookBorrowDays,
		MagazineBorrowDays: DefaultMagazineBorrowDays,
	}
}

// normalized replaces non-positive borrow periods with the defaults so a
// partially filled Config still behaves sensibly.
func (c Config) normalized() Config {
	if c.BookBorrowDays <= 0 {
		c.BookBorrowDays = DefaultBookBorrowDays
	}
	if c.MagazineBorrowDays <= 0 {
		c.MagazineBorrowDays = DefaultMagazineBorrowDays
	}
	return c
}

// Item is a catalog entry that can be borrowed. Exactly two variants exist:
// Book and Magazine. The availability flag is the single source of truth for
// "currently loanable" and is flipped only by the engine's borrow and return
// operations; the setter is unexported to keep callers outside this package
// from touching it.
type Item interface {
	ID() string
	Title() string
	IsAvailable() bool

	// BorrowDays resolves the borrow period from cfg at call time. A nil cfg
	// falls back to the per-variant default.
	BorrowDays(cfg *Config) int

	// Details returns the variant-specific one-line description.
	Details() string

	setAvailable(available bool)
}

// ------------------ Book ------------------

// Book is a borrowable book with author and ISBN metadata.
type Book struct {
	id        string
	title     string
	author    string
	isbn      string
	available bool
}

// NewBook creates a Book. The identifier is caller-assigned and the book
// starts out available.
func NewBook(id, title, author, isbn string) *Book {
	return &Book{id: id, title: title, author: author, isbn: isbn, available: true}
}

func (b *Book) ID() string          { return b.id }
func (b *Book) Title() string       { return b.title }
func (b *Book) Author() string      { return b.author }
func (b *Book) ISBN() string        { return b.isbn }
func (b *Book) IsAvailable() bool   { return b.available }
func (b *Book) setAvailable(a bool) { b.available = a }

func (b *Book) BorrowDays(cfg *Config) int {
	if cfg == nil {
		return DefaultBookBorrowDays
	}
	return cfg.BookBorrowDays
}

func (b *Book) Details() string {
	return fmt.Sprintf("Book: %s by %s (ISBN: %s)", b.title, b.author, b.isbn)
}

// ------------------ Magazine ------------------

// Magazine is a borrowable magazine issue.
type Magazine struct {
	id          string
	title       string
	issueDate   time.Time
	issueNumber int
	available   bool
}

// NewMagazine creates a Magazine. The issue date is kept at day precision.
func NewMagazine(id, title string, issueDate time.Time, issueNumber int) *Magazine {
	return &Magazine{
		id:          id,
		title:       title,
		issueDate:   dateOnly(issueDate),
		issueNumber: issueNumber,
		available:   true,
	}
}

func (m *Magazine) ID() string           { return m.id }
func (m *Magazine) Title() string        { return m.title }
func (m *Magazine) IssueDate() time.Time { return m.issueDate }
func (m *Magazine) IssueNumber() int     { return m.issueNumber }
func (m *Magazine) IsAvailable() bool    { return m.available }
func (m *Magazine) setAvailable(a bool)  { m.available = a }

func (m *Magazine) BorrowDays(cfg *Config) int {
	if cfg == nil {
		return DefaultMagazineBorrowDays
	}
	return cfg.MagazineBorrowDays
}

func (m *Magazine) Details() string {
	return fmt.Sprintf("Magazine: %s Issue #%d (%s)", m.title, m.issueNumber, m.issueDate.Format("2006-01-02"))
}

// ------------------ Member ------------------

// Member is a registered library member. The held-items list mirrors the
// engine's active-record table and is maintained by the engine on every
// borrow and return; the two must never diverge.
type Member struct {
	id       string
	name     string
	email    string
	borrowed []Item
}

// NewMember creates a Member with an empty held-items list.
func NewMember(id, name, email string) *Member {
	return &Member{id: id, name: name, email: email}
}

func (m *Member) ID() string    { return m.id }
func (m *Member) Name() string  { return m.name }
func (m *Member) Email() string { return m.email }

// BorrowedItems returns a copy of the member's currently held items in the
// order they were borrowed.
func (m *Member) BorrowedItems() []Item {
	out := make([]Item, len(m.borrowed))
	copy(out, m.borrowed)
	return out
}

func (m *Member) borrowItem(item Item) {
	m.borrowed = append(m.borrowed, item)
}

func (m *Member) returnItem(itemID string) {
	for i, it := range m.borrowed {
		if it.ID() == itemID {
			m.borrowed = append(m.borrowed[:i], m.borrowed[i+1:]...)
			return
		}
	}
}
