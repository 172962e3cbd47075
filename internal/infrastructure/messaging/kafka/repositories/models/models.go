package models

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

type Message struct {
	ID      uuid.UUID `json:"id"`
	Content string    `json:"content"`
	Hash    string    `json:"hash"`
}

type Kind string

const (
	KindHired      Kind = "hired"
	KindSlept      Kind = "slept"
	KindHadFun     Kind = "had_fun"
	KindWentToWork Kind = "went_to_work"
)

// Event is one lifecycle transition of a subject. Snapshot holds the
// entity as it was right after the transition.
type Event struct {
	Kind       Kind            `json:"kind"`
	Subject    string          `json:"subject"`
	Field      string          `json:"field,omitempty"`
	Delta      int             `json:"delta"`
	Snapshot   json.RawMessage `json:"snapshot"`
	OccurredAt time.Time       `json:"occurredAt"`
}
