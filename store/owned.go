// Package store implements the generic per-user collection backing
// favorites, viewed history and custom recipes. Every query is scoped to
// the owning user so records of other users are unreachable by design
package store

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both "doesn't exist" and "exists but belongs to
	// someone else". Callers must not be able to tell the two apart
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint on the record
	// rejects the insert
	ErrDuplicate = errors.New("record already exists")
)

// Owned is a per-user collection of records of type R. R must carry a
// user_id column and an id primary key
type Owned[R any] struct {
	db      *gorm.DB
	orderBy string
}

// NewOwned wraps db as an owned collection. orderBy is applied to every
// list query, an empty string keeps insertion order
func NewOwned[R any](db *gorm.DB, orderBy string) *Owned[R] {
	return &Owned[R]{db: db, orderBy: orderBy}
}

// Create inserts r. The caller is responsible for stamping the owner on
// the record before calling. Uniqueness is enforced by the database
// constraint itself so concurrent duplicate inserts can't race past a
// pre-check
func (s *Owned[R]) Create(r *R) error {
	err := s.db.Create(r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}

		return err
	}

	return nil
}

// ListForOwner returns all records of one owner. The result is never nil
// so handlers always answer a JSON array
func (s *Owned[R]) ListForOwner(owner string) ([]R, error) {
	out := make([]R, 0)

	q := s.db.Where("user_id = ?", owner)
	if s.orderBy != "" {
		q = q.Order(s.orderBy)
	}

	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// DeleteByID removes a single record if and only if it belongs to owner.
// A record owned by someone else looks exactly like a missing one, and
// so does an id that isn't numeric at all. The id arrives as a raw URL
// segment and must never reach the integer-column comparison unparsed,
// postgres fails the whole query on a non-numeric literal
func (s *Owned[R]) DeleteByID(owner string, id string) error {
	numID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return ErrNotFound
	}

	res := s.db.
		Where("user_id = ? AND id = ?", owner, numID).
		Delete(new(R))
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteAllForOwner wipes the owner's whole collection. Deleting zero
// records is still a success
func (s *Owned[R]) DeleteAllForOwner(owner string) error {
	return s.db.
		Where("user_id = ?", owner).
		Delete(new(R)).
		Error
}
