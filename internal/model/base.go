package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel handles ID (UUID) and the creation timestamp
type BaseModel struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBase generates a fresh UUID stamped at the given time
func NewBase(at time.Time) BaseModel {
	return BaseModel{ID: uuid.New(), CreatedAt: at}
}
