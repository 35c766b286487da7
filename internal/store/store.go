// Package store holds the thin clients for the links, social_links and
// brand_settings tables. Every call goes straight to the database: there is no
// caching and no retry.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a conditional reorder finds a row whose
	// position or category no longer matches what the reorder was computed from.
	ErrConflict = errors.New("record changed since it was read")
)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
