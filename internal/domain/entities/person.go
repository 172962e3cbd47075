package entities

import (
	"fmt"

	shared "github.com/whiteelite/workforce/pkg/shared/domain/entities"
)

// Person is a character with a name, an age and an energy level.
// Energy has no floor or ceiling.
type Person struct {
	shared.Base

	Name   Name   `json:"name"`
	Age    Age    `json:"age"`
	Energy Energy `json:"energy"`
}

// PersonParams configures NewPerson. A nil field takes its default:
// Name "Tom", Age 20, Energy 100.
type PersonParams struct {
	Name   *Name
	Age    *Age
	Energy *Energy
}

func NewPerson(params PersonParams) *Person {
	p := &Person{
		Base:   shared.NewBase(),
		Name:   DefaultName,
		Age:    DefaultAge,
		Energy: DefaultEnergy,
	}

	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Age != nil {
		p.Age = *params.Age
	}
	if params.Energy != nil {
		p.Energy = *params.Energy
	}

	return p
}

func (p *Person) Sleep() {
	p.Energy += EnergyStep
}

func (p *Person) DoSomethingFun() {
	p.Energy -= EnergyStep
}

// Validate checks identity fields only; energy is unbounded.
func (p *Person) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Age < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeAge, p.Age)
	}
	return nil
}
