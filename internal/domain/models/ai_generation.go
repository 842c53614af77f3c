package models

import (
	"time"
)

// AIGeneration is a persisted record of one AI-assistance call made from a
// project. Metadata is free-form JSON written by the provider integration;
// the analytics path reads tokens_in/tokens_out out of it leniently and
// treats anything absent or malformed as zero.
type AIGeneration struct {
	ID        string    `json:"id" db:"id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Persona   string    `json:"persona" db:"persona"`
	Prompt    string    `json:"prompt" db:"prompt"`
	Metadata  []byte    `json:"metadata,omitempty" db:"metadata"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
