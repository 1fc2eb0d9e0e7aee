package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound signals that the requested row does not exist. Every other
// repository error is a store failure (constraint violation, lost
// connection) and has already been rolled back.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
