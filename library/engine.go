package library

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Library is the circulation engine. It owns the catalog, the member registry
// and the active-loan table, and enforces every borrow/return business rule.
//
// Items and members live in both an insertion-ordered slice (for enumeration)
// and an id-keyed map (for O(1) lookup); the duplication is deliberate. Active
// records are keyed by item ID, which is what guarantees at most one
// outstanding loan per item.
//
// The engine is the only writer of item availability and of member held-item
// lists. All multi-step operations hold the mutex for their full duration, so
// they are atomic even if a future caller is concurrent.
type Library struct {
	mu    sync.RWMutex
	cfg   Config
	clock Clock

	items      []Item
	members    []*Member
	itemByID   map[string]Item
	memberByID map[string]*Member
	active     map[string]*BorrowRecord
}

// Option configures a Library at construction.
type Option func(*Library)

// WithClock injects the time source used for due-date assignment and overdue
// evaluation.
func WithClock(c Clock) Option {
	return func(l *Library) { l.clock = c }
}

// New creates an engine governed by cfg. Non-positive borrow periods in cfg
// fall back to the defaults.
func New(cfg Config, opts ...Option) *Library {
	l := &Library{
		cfg:        cfg.normalized(),
		clock:      NewSystemClock(),
		itemByID:   make(map[string]Item),
		memberByID: make(map[string]*Member),
		active:     make(map[string]*BorrowRecord),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ------------------ Registration ------------------

// AddItem registers an item in both the ordered collection and the lookup
// table. Duplicate identifiers are rejected rather than silently overwritten.
func (l *Library) AddItem(item Item) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.itemByID[item.ID()]; exists {
		return fmt.Errorf("item %q: %w", item.ID(), ErrDuplicateID)
	}
	l.items = append(l.items, item)
	l.itemByID[item.ID()] = item
	return nil
}

// AddMember registers a member, rejecting duplicate identifiers.
func (l *Library) AddMember(member *Member) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.memberByID[member.ID()]; exists {
		return fmt.Errorf("member %q: %w", member.ID(), ErrDuplicateID)
	}
	l.members = append(l.members, member)
	l.memberByID[member.ID()] = member
	return nil
}

// ------------------ Circulation ------------------

// BorrowItem lends an item to a member. It succeeds only when the member
// exists, the item exists, the item is available, and the member has no
// currently overdue loans — checked in that order, so the error names the
// first violated rule. On success the item becomes unavailable, joins the
// member's held list, and an active record is stored with the due date set to
// today plus the item's borrow period. On failure no state changes.
func (l *Library) BorrowItem(memberID, itemID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	member, ok := l.memberByID[memberID]
	if !ok {
		return fmt.Errorf("member %q: %w", memberID, ErrMemberNotFound)
	}
	item, ok := l.itemByID[itemID]
	if !ok {
		return fmt.Errorf("item %q: %w", itemID, ErrItemNotFound)
	}
	if !item.IsAvailable() {
		return fmt.Errorf("item %q: %w", itemID, ErrItemUnavailable)
	}
	if l.hasOverdueLocked(memberID) {
		return fmt.Errorf("member %q: %w", memberID, ErrMemberOverdue)
	}

	item.setAvailable(false)
	member.borrowItem(item)
	l.active[itemID] = newBorrowRecord(memberID, itemID, l.clock.Now(), item.BorrowDays(&l.cfg))
	return nil
}

// ReturnItem takes an item back from the member who borrowed it. Returning an
// item on behalf of someone who did not borrow it is rejected and leaves the
// true borrower's record untouched. No fine is collected here; fines are
// advisory and reported through the query operations.
func (l *Library) ReturnItem(memberID, itemID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	member, ok := l.memberByID[memberID]
	if !ok {
		return fmt.Errorf("member %q: %w", memberID, ErrMemberNotFound)
	}
	item, ok := l.itemByID[itemID]
	if !ok {
		return fmt.Errorf("item %q: %w", itemID, ErrItemNotFound)
	}
	record, ok := l.active[itemID]
	if !ok {
		return fmt.Errorf("item %q: %w", itemID, ErrNotBorrowed)
	}
	if record.MemberID() != memberID {
		return fmt.Errorf("item %q: %w", itemID, ErrNotBorrower)
	}

	item.setAvailable(true)
	member.returnItem(itemID)
	delete(l.active, itemID)
	return nil
}

// ------------------ Queries ------------------

// FindItem looks up an item by identifier.
func (l *Library) FindItem(itemID string) (Item, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	item, ok := l.itemByID[itemID]
	return item, ok
}

// FindMember looks up a member by identifier.
func (l *Library) FindMember(memberID string) (*Member, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	member, ok := l.memberByID[memberID]
	return member, ok
}

// AllItems returns the items in insertion order. The slice is a copy.
func (l *Library) AllItems() []Item {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// AllMembers returns the members in insertion order. The slice is a copy.
func (l *Library) AllMembers() []*Member {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Member, len(l.members))
	copy(out, l.members)
	return out
}

// HasOverdueItems reports whether the member holds any loan past its due date
// as of the clock's current date.
func (l *Library) HasOverdueItems(memberID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hasOverdueLocked(memberID)
}

func (l *Library) hasOverdueLocked(memberID string) bool {
	now := l.clock.Now()
	for _, record := range l.active {
		if record.MemberID() == memberID && record.IsOverdue(now) {
			return true
		}
	}
	return false
}

// OverdueItems returns the member's currently overdue active records. The
// order is unspecified.
func (l *Library) OverdueItems(memberID string) []*BorrowRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := l.clock.Now()
	var out []*BorrowRecord
	for _, record := range l.active {
		if record.MemberID() == memberID && record.IsOverdue(now) {
			out = append(out, record)
		}
	}
	return out
}

// TotalFines sums the fines over the member's overdue records, zero when
// there are none.
func (l *Library) TotalFines(memberID string) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := l.clock.Now()
	total := decimal.Zero
	for _, record := range l.active {
		if record.MemberID() == memberID && record.IsOverdue(now) {
			total = total.Add(record.Fine(now, l.cfg.DailyFineRate))
		}
	}
	return total
}

// BorrowRecordFor returns the active record for an item, if any.
func (l *Library) BorrowRecordFor(itemID string) (*BorrowRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	record, ok := l.active[itemID]
	return record, ok
}

// Config returns the settings the engine was constructed with.
func (l *Library) Config() Config {
	return l.cfg
}

// Now exposes the engine's clock so the presentation layer reports overdue
// days against the same time source the engine uses.
func (l *Library) Now() time.Time {
	return l.clock.Now()
}
