// Package lifecycle drives entity transitions and journals each one.
package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	json "github.com/goccy/go-json"

	"github.com/whiteelite/workforce/internal/domain/entities"
	domainrepos "github.com/whiteelite/workforce/internal/domain/repositories"
	mapper "github.com/whiteelite/workforce/internal/infrastructure/messaging/kafka/repositories/mapper"
	models "github.com/whiteelite/workforce/internal/infrastructure/messaging/kafka/repositories/models"
	"github.com/whiteelite/workforce/internal/infrastructure/messaging/kafka/repositories/repository"
	"github.com/whiteelite/workforce/internal/logging"
	shared "github.com/whiteelite/workforce/pkg/shared/domain/entities"
)

// Subject is any entity with vitality state.
type Subject interface {
	Handle() string
	Sleep()
	DoSomethingFun()
}

type Service struct {
	journal domainrepos.Journal
	topic   string
	log     logr.Logger
	now     func() time.Time
}

func NewService(journal domainrepos.Journal, topic string, log logr.Logger) *Service {
	return &Service{
		journal: journal,
		topic:   topic,
		log:     log.WithName("lifecycle"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Hire records the subject's current state as the start of its history.
func (s *Service) Hire(ctx context.Context, subject Subject) error {
	return s.record(ctx, subject, models.KindHired, "", 0)
}

// Sleep applies the transition, then journals it. Like the other
// transitions, the entity keeps the change when the append fails.
func (s *Service) Sleep(ctx context.Context, subject Subject) error {
	subject.Sleep()
	return s.record(ctx, subject, models.KindSlept, "energy", int(entities.EnergyStep))
}

func (s *Service) DoSomethingFun(ctx context.Context, subject Subject) error {
	subject.DoSomethingFun()
	return s.record(ctx, subject, models.KindHadFun, "energy", -int(entities.EnergyStep))
}

func (s *Service) GoToWork(ctx context.Context, w *entities.Worker) error {
	w.GoToWork()
	return s.record(ctx, w, models.KindWentToWork, "xp", int(entities.XPStep))
}

// History decodes one page of a subject's records. The handle must parse.
func (s *Service) History(ctx context.Context, handle string, page domainrepos.Pagination) ([]*models.Event, error) {
	if _, err := shared.ParseHandle(handle); err != nil {
		return nil, err
	}

	records, err := s.journal.Records(ctx, handle, page)
	if err != nil {
		return nil, err
	}

	events := make([]*models.Event, 0, len(records))
	for _, record := range records {
		event, err := mapper.DecodeEvent(record)
		if err != nil {
			return nil, fmt.Errorf("decode record %d: %w", record.Offset, err)
		}
		events = append(events, event)
	}
	return events, nil
}

func (s *Service) RestoreWorker(ctx context.Context, handle string) (*entities.Worker, error) {
	if _, err := shared.ParseHandle(handle); err != nil {
		return nil, err
	}
	return repository.Replay[entities.Worker](ctx, s.journal, handle)
}

func (s *Service) RestorePerson(ctx context.Context, handle string) (*entities.Person, error) {
	if _, err := shared.ParseHandle(handle); err != nil {
		return nil, err
	}
	return repository.Replay[entities.Person](ctx, s.journal, handle)
}

func (s *Service) record(ctx context.Context, subject Subject, kind models.Kind, field string, delta int) error {
	snapshot, err := json.Marshal(subject)
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", subject.Handle(), err)
	}

	record, err := mapper.EncodeEvent(s.topic, &models.Event{
		Kind:       kind,
		Subject:    subject.Handle(),
		Field:      field,
		Delta:      delta,
		Snapshot:   snapshot,
		OccurredAt: s.now(),
	})
	if err != nil {
		return fmt.Errorf("encode %s for %s: %w", kind, subject.Handle(), err)
	}

	if err := s.journal.Append(ctx, record); err != nil {
		s.log.Error(err, "Failed to journal transition", "subject", subject.Handle(), "kind", kind)
		return err
	}

	s.log.V(logging.DEBUG).Info("Journaled transition",
		"subject", subject.Handle(),
		"kind", kind,
		"field", field,
		"delta", delta)
	return nil
}
