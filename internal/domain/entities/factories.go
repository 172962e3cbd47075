package entities

import "github.com/shopspring/decimal"

// Intern returns Bob after his first day at work (xp 10).
func Intern() *Worker {
	intern := NewWorker(WorkerParams{
		Name:       "Bob",
		Age:        21,
		Energy:     110,
		XP:         Ptr[XP](0),
		HourlyWage: Ptr(decimal.NewFromInt(10)),
	})

	intern.GoToWork()

	return intern
}

// Manager returns Alice after some fun (energy 110).
func Manager() *Worker {
	manager := NewWorker(WorkerParams{
		Name:       "Alice",
		Age:        30,
		Energy:     120,
		XP:         Ptr[XP](100),
		HourlyWage: Ptr(decimal.NewFromInt(30)),
	})

	manager.DoSomethingFun()

	return manager
}
