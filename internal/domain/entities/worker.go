package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Worker is a Person holding a job. Sleep and DoSomethingFun are the
// embedded Person's.
type Worker struct {
	Person

	XP         XP              `json:"xp"`
	HourlyWage decimal.Decimal `json:"hourlyWage"`
}

// WorkerParams configures NewWorker. Name, Age and Energy are taken as
// given; nil XP defaults to 0 and nil HourlyWage to 10.
type WorkerParams struct {
	// Required
	Name   Name
	Age    Age
	Energy Energy

	// Optional
	XP         *XP
	HourlyWage *decimal.Decimal
}

func NewWorker(params WorkerParams) *Worker {
	w := &Worker{
		Person: *NewPerson(PersonParams{
			Name:   &params.Name,
			Age:    &params.Age,
			Energy: &params.Energy,
		}),
		XP:         DefaultXP,
		HourlyWage: DefaultHourlyWage,
	}

	if params.XP != nil {
		w.XP = *params.XP
	}
	if params.HourlyWage != nil {
		w.HourlyWage = *params.HourlyWage
	}

	return w
}

func (w *Worker) GoToWork() {
	w.XP += XPStep
}

func (w *Worker) Validate() error {
	if err := w.Person.Validate(); err != nil {
		return err
	}
	if w.XP < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeXP, w.XP)
	}
	if w.HourlyWage.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrNegativeWage, w.HourlyWage)
	}
	return nil
}
