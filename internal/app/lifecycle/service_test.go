package lifecycle_test

import (
	"context"

	json "github.com/goccy/go-json"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/whiteelite/workforce/internal/app/lifecycle"
	"github.com/whiteelite/workforce/internal/domain/entities"
	domainrepos "github.com/whiteelite/workforce/internal/domain/repositories"
	models "github.com/whiteelite/workforce/internal/infrastructure/messaging/kafka/repositories/models"
	"github.com/whiteelite/workforce/internal/infrastructure/messaging/kafka/repositories/repository"
	shared "github.com/whiteelite/workforce/pkg/shared/domain/entities"
)

var _ = Describe("Service", func() {
	var (
		ctx     context.Context
		journal *repository.Journal
		svc     *lifecycle.Service
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		journal, err = repository.NewJournal(repository.JournalParams{Topic: "workforce.test"})
		Expect(err).NotTo(HaveOccurred())

		svc = lifecycle.NewService(journal, journal.Topic(), testLogger)
	})

	Context("recording transitions", func() {
		It("applies each transition and journals it", func() {
			w := entities.Intern()
			Expect(svc.Hire(ctx, w)).To(Succeed())
			Expect(svc.GoToWork(ctx, w)).To(Succeed())
			Expect(svc.Sleep(ctx, w)).To(Succeed())
			Expect(svc.DoSomethingFun(ctx, w)).To(Succeed())

			Expect(w.XP).To(Equal(entities.XP(20)))
			Expect(w.Energy).To(Equal(entities.Energy(110)))
			Expect(journal.Len()).To(Equal(4))

			events, err := svc.History(ctx, w.Handle(), nil)
			Expect(err).NotTo(HaveOccurred())

			kinds := make([]models.Kind, 0, len(events))
			for _, e := range events {
				kinds = append(kinds, e.Kind)
				Expect(e.Subject).To(Equal(w.Handle()))
			}
			Expect(kinds).To(Equal([]models.Kind{
				models.KindHired, models.KindWentToWork, models.KindSlept, models.KindHadFun,
			}))
			Expect(events[1].Field).To(Equal("xp"))
			Expect(events[1].Delta).To(Equal(10))
			Expect(events[3].Field).To(Equal("energy"))
			Expect(events[3].Delta).To(Equal(-10))
		})

		It("stores a snapshot taken after the transition", func() {
			p := entities.NewPerson(entities.PersonParams{})
			Expect(svc.Sleep(ctx, p)).To(Succeed())

			events, err := svc.History(ctx, p.Handle(), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(1))

			var snap entities.Person
			Expect(json.Unmarshal(events[0].Snapshot, &snap)).To(Succeed())
			Expect(snap.Energy).To(Equal(entities.Energy(110)))
			Expect(snap.ID).To(Equal(p.ID))
		})

		It("keeps the mutation when journaling fails", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			p := entities.NewPerson(entities.PersonParams{})
			Expect(svc.Sleep(cancelled, p)).To(MatchError(context.Canceled))
			Expect(p.Energy).To(Equal(entities.Energy(110)))
			Expect(journal.Len()).To(Equal(0))
		})
	})

	Context("history paging", func() {
		It("returns the requested page", func() {
			p := entities.NewPerson(entities.PersonParams{})
			Expect(svc.Hire(ctx, p)).To(Succeed())
			for range 4 {
				Expect(svc.Sleep(ctx, p)).To(Succeed())
			}

			events, err := svc.History(ctx, p.Handle(), domainrepos.Page{Size: 2, Number: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(2))
			Expect(events[0].Kind).To(Equal(models.KindSlept))
		})
	})

	Context("restoring from the journal", func() {
		It("rebuilds the intern and the manager", func() {
			intern := entities.Intern()
			manager := entities.Manager()
			Expect(svc.Hire(ctx, intern)).To(Succeed())
			Expect(svc.Hire(ctx, manager)).To(Succeed())

			Expect(svc.GoToWork(ctx, intern)).To(Succeed())
			Expect(svc.Sleep(ctx, manager)).To(Succeed())
			Expect(svc.DoSomethingFun(ctx, manager)).To(Succeed())

			gotIntern, err := svc.RestoreWorker(ctx, intern.Handle())
			Expect(err).NotTo(HaveOccurred())
			Expect(gotIntern.ID).To(Equal(intern.ID))
			Expect(gotIntern.Name).To(Equal(entities.Name("Bob")))
			Expect(gotIntern.XP).To(Equal(entities.XP(20)))
			Expect(gotIntern.Energy).To(Equal(entities.Energy(110)))

			gotManager, err := svc.RestoreWorker(ctx, manager.Handle())
			Expect(err).NotTo(HaveOccurred())
			Expect(gotManager.Energy).To(Equal(entities.Energy(110)))
			Expect(gotManager.XP).To(Equal(entities.XP(100)))
			Expect(gotManager.HourlyWage.Equal(manager.HourlyWage)).To(BeTrue())
		})

		It("rebuilds a plain person", func() {
			p := entities.NewPerson(entities.PersonParams{Energy: entities.Ptr[entities.Energy](0)})
			Expect(svc.Hire(ctx, p)).To(Succeed())
			Expect(svc.DoSomethingFun(ctx, p)).To(Succeed())

			got, err := svc.RestorePerson(ctx, p.Handle())
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Energy).To(Equal(entities.Energy(-10)))
		})

		It("rejects malformed handles before reading the journal", func() {
			w := entities.Intern()
			Expect(svc.Hire(ctx, w)).To(Succeed())

			for _, handle := range []string{"", "0OIl", "not-a-handle"} {
				_, err := svc.RestoreWorker(ctx, handle)
				Expect(err).To(MatchError(shared.ErrInvalidHandle))

				_, err = svc.RestorePerson(ctx, handle)
				Expect(err).To(MatchError(shared.ErrInvalidHandle))

				_, err = svc.History(ctx, handle, nil)
				Expect(err).To(MatchError(shared.ErrInvalidHandle))
			}
		})

		It("fails for a subject that was never hired", func() {
			p := entities.NewPerson(entities.PersonParams{})
			Expect(svc.Sleep(ctx, p)).To(Succeed())

			_, err := svc.RestorePerson(ctx, p.Handle())
			Expect(err).To(MatchError(repository.ErrNotHired))
		})
	})
})
