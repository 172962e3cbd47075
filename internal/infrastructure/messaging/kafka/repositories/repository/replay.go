package repository

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	domainrepos "github.com/whiteelite/workforce/internal/domain/repositories"
	mapper "github.com/whiteelite/workforce/internal/infrastructure/messaging/kafka/repositories/mapper"
	models "github.com/whiteelite/workforce/internal/infrastructure/messaging/kafka/repositories/models"
)

var (
	ErrNotHired         = errors.New("subject has no hired record")
	ErrUnsupportedEvent = errors.New("event not supported by subject")
)

// Replayable is what Replay needs from an entity to re-apply its history.
type Replayable interface {
	Sleep()
	DoSomethingFun()
	Validate() error
}

type worker interface {
	GoToWork()
}

// Replay rebuilds a subject from its hired snapshot, then re-applies every
// later record through the entity's own methods.
func Replay[T any, PT interface {
	*T
	Replayable
}](ctx context.Context, journal domainrepos.Journal, subject string) (PT, error) {
	records, err := journal.Records(ctx, subject, nil)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotHired, subject)
	}

	first, err := mapper.DecodeEvent(records[0])
	if err != nil {
		return nil, err
	}
	if first.Kind != models.KindHired {
		return nil, fmt.Errorf("%w: %s starts with %q", ErrNotHired, subject, first.Kind)
	}

	entity := PT(new(T))
	if err := json.Unmarshal(first.Snapshot, entity); err != nil {
		return nil, err
	}
	if err := entity.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot for %s: %w", subject, err)
	}

	for _, record := range records[1:] {
		event, err := mapper.DecodeEvent(record)
		if err != nil {
			return nil, err
		}
		if err := apply(entity, event); err != nil {
			return nil, err
		}
	}

	return entity, nil
}

func apply(entity Replayable, event *models.Event) error {
	switch event.Kind {
	case models.KindSlept:
		entity.Sleep()
	case models.KindHadFun:
		entity.DoSomethingFun()
	case models.KindWentToWork:
		w, ok := entity.(worker)
		if !ok {
			return fmt.Errorf("%w: %s on %s", ErrUnsupportedEvent, event.Kind, event.Subject)
		}
		w.GoToWork()
	default:
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedEvent, event.Kind, event.Subject)
	}
	return nil
}
