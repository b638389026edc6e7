package library

import "errors"

// Rule-violation errors returned by the engine's mutating operations. Callers
// that only care whether the operation happened can treat err == nil as the
// success boolean; callers that want the reason match with errors.Is.
var (
	ErrDuplicateID     = errors.New("identifier already registered")
	ErrMemberNotFound  = errors.New("member not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrItemUnavailable = errors.New("item is already borrowed")
	ErrMemberOverdue   = errors.New("member has overdue items")
	ErrNotBorrowed     = errors.New("item is not borrowed")
	ErrNotBorrower     = errors.New("item was borrowed by another member")
)
