package entities

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

var ErrInvalidHandle = errors.New("invalid entity handle")

// Entity is implemented by every domain struct that embeds Base.
type Entity interface {
	GetID() uuid.UUID
}

// Base carries the identity shared by all domain entities.
type Base struct {
	ID uuid.UUID `json:"id"`
}

func NewBase() Base {
	return Base{ID: uuid.New()}
}

func (b Base) GetID() uuid.UUID {
	return b.ID
}

// Handle is the base58 form of the ID, used as message key and log subject.
func (b Base) Handle() string {
	return base58.Encode(b.ID[:])
}

func ParseHandle(handle string) (uuid.UUID, error) {
	raw, err := base58.Decode(handle)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidHandle, err)
	}

	id, err := uuid.FromBytes(raw)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidHandle, err)
	}

	return id, nil
}
