package service

import (
	"mobility-rental-backend/internal/domain"

	"github.com/google/uuid"
)

// IDGenerator supplies a fresh identifier for every new rental record
type IDGenerator interface {
	NewRentalID() domain.RentalID
}

// UUIDGenerator issues random (version 4) UUIDs
type UUIDGenerator struct{}

func (UUIDGenerator) NewRentalID() domain.RentalID {
	return domain.RentalID(uuid.NewString())
}
