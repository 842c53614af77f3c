package models

import (
	"time"
)

// Project is the top-level writing project. Analytics only ever reads it;
// ownership and collaborator membership gate access to the snapshot.
type Project struct {
	ID               string    `json:"id" db:"id"`
	OwnerID          string    `json:"owner_id" db:"owner_id"`
	Title            string    `json:"title" db:"title"`
	Status           string    `json:"status" db:"status"` // draft, in_progress, published
	TargetWordCount  int       `json:"target_word_count" db:"target_word_count"`
	CurrentWordCount int       `json:"current_word_count" db:"current_word_count"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
