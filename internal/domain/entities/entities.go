package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

type (
	Name   string
	Age    int
	Energy int
	XP     int
)

const (
	DefaultName   Name   = "Tom"
	DefaultAge    Age    = 20
	DefaultEnergy Energy = 100
	DefaultXP     XP     = 0

	// EnergyStep is the amount Sleep adds and DoSomethingFun removes.
	EnergyStep Energy = 10
	// XPStep is the amount GoToWork adds.
	XPStep XP = 10
)

// DefaultHourlyWage is the wage a Worker gets when none is given.
var DefaultHourlyWage = decimal.NewFromInt(10)

var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrNegativeAge  = errors.New("age must be >= 0")
	ErrNegativeXP   = errors.New("xp must be >= 0")
	ErrNegativeWage = errors.New("hourly wage must be >= 0")
)

// Ptr returns a pointer to v, for filling optional params fields.
func Ptr[T any](v T) *T {
	return &v
}
