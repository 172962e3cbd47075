package mapper

import (
	"encoding/base64"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	sdk "github.com/segmentio/kafka-go"

	"github.com/whiteelite/workforce/internal/infrastructure/messaging/kafka/repositories/models"
)

// HeaderKind carries the event kind on every record.
const HeaderKind = "kind"

var (
	ErrHashMismatch   = errors.New("message hash mismatch")
	ErrRecordMismatch = errors.New("record envelope does not match event")
)

func ToMessage[T any](entity *T) (*models.Message, error) {
	serialized, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}

	hash := base64.StdEncoding.EncodeToString(serialized)

	return &models.Message{
		ID:      uuid.New(),
		Content: string(serialized),
		Hash:    hash,
	}, nil
}

func FromMessage[T any](message *models.Message) (*T, error) {
	if base64.StdEncoding.EncodeToString([]byte(message.Content)) != message.Hash {
		return nil, fmt.Errorf("%w: message %s", ErrHashMismatch, message.ID)
	}

	entity := new(T)
	if err := json.Unmarshal([]byte(message.Content), entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// EncodeEvent wraps an event into a broker record keyed by its subject.
func EncodeEvent(topic string, event *models.Event) (sdk.Message, error) {
	model, err := ToMessage(event)
	if err != nil {
		return sdk.Message{}, err
	}

	serialized, err := json.Marshal(model)
	if err != nil {
		return sdk.Message{}, err
	}

	return sdk.Message{
		Topic: topic,
		Key:   []byte(event.Subject),
		Value: serialized,
		Headers: []sdk.Header{
			{Key: HeaderKind, Value: []byte(event.Kind)},
		},
		Time: event.OccurredAt,
	}, nil
}

// DecodeEvent decodes the record value and checks that the key and the
// kind header agree with the event inside it.
func DecodeEvent(record sdk.Message) (*models.Event, error) {
	model := new(models.Message)
	if err := json.Unmarshal(record.Value, model); err != nil {
		return nil, err
	}

	event, err := FromMessage[models.Event](model)
	if err != nil {
		return nil, err
	}

	kind, ok := KindOf(record)
	if !ok || kind != event.Kind {
		return nil, fmt.Errorf("%w: header kind %q, event kind %q", ErrRecordMismatch, kind, event.Kind)
	}
	if string(record.Key) != event.Subject {
		return nil, fmt.Errorf("%w: key %q, event subject %q", ErrRecordMismatch, record.Key, event.Subject)
	}

	return event, nil
}

// KindOf reads the kind header without decoding the value.
func KindOf(record sdk.Message) (models.Kind, bool) {
	for _, h := range record.Headers {
		if h.Key == HeaderKind {
			return models.Kind(h.Value), true
		}
	}
	return "", false
}
