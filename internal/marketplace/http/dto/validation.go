package dto

import (
	"github.com/google/uuid"

	"github.com/Elena0909/AuctionsProduced/internal/errors"
)

func validUUID(value interface{}) error {
	s, _ := value.(string)
	if _, err := uuid.Parse(s); err != nil {
		return errors.New("must be a valid UUID")
	}
	return nil
}
