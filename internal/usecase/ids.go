package usecase

import "github.com/google/uuid"

// UUIDGenerator mints random webinar ids.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}
