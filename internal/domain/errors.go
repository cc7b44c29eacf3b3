package domain

import (
	"github.com/cockroachdb/errors"
)

// Error kinds. Every error leaving the storage and app layers is marked with
// exactly one of these.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConstraint = errors.New("constraint violation")
	ErrStore      = errors.New("store error")
)

var (
	ErrDuplicateEmail        = errors.Mark(errors.New("a client with this email already exists"), ErrConstraint)
	ErrClientHasReservations = errors.Mark(errors.New("client has associated reservations"), ErrConstraint)
	ErrRoomUnavailable       = errors.Mark(errors.New("room is not available for the requested dates"), ErrConstraint)
)

const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindConstraint = "constraint_violation"
	KindStore      = "store"
)

// KindOf names the kind err is marked with. Unmarked errors count as store errors.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConstraint):
		return KindConstraint
	default:
		return KindStore
	}
}

// Invalid returns a validation error carrying msg.
func Invalid(msg string) error {
	return errors.Mark(errors.New(msg), ErrValidation)
}

// Missing returns a not-found error naming the entity and id.
func Missing(entity string, id int64) error {
	return errors.Mark(errors.Newf("%s %d not found", entity, id), ErrNotFound)
}

// Message is the human-readable text of err without wrapping prefixes added
// for logs, so presentation layers can show it as-is.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return errors.UnwrapAll(err).Error()
}
