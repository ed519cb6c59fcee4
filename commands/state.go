package commands

import (
	"sync"

	"github.com/atelierink/ouvroir/ai"
	"github.com/atelierink/ouvroir/analytics"
	"github.com/atelierink/ouvroir/export"
	"github.com/atelierink/ouvroir/oulipo"
)

// initialCredits is the starting balance for a new session.
const initialCredits = 100

// AppState holds the shared services used by command handlers. The oulipo,
// analytics, and export services are immutable and safe for concurrent use;
// the AI service guards its own settings internally; the credit balance is
// the only state AppState itself locks.
type AppState struct {
	AI        *ai.Service
	Analytics *analytics.Service
	Export    *export.Service
	Oulipo    *oulipo.Service

	creditsMu sync.Mutex
	credits   int
}

// NewAppState wires up all services with their defaults.
func NewAppState() *AppState {
	return &AppState{
		AI:        ai.NewService(),
		Analytics: analytics.NewService(),
		Export:    export.NewService(),
		Oulipo:    oulipo.NewService(),
		credits:   initialCredits,
	}
}

// Credits returns the current credit balance.
func (s *AppState) Credits() int {
	s.creditsMu.Lock()
	defer s.creditsMu.Unlock()
	return s.credits
}

// DeductCredits removes amount from the balance. It reports the remaining
// balance and whether the deduction succeeded; an insufficient balance is
// left untouched.
func (s *AppState) DeductCredits(amount int) (int, bool) {
	s.creditsMu.Lock()
	defer s.creditsMu.Unlock()
	if amount < 0 || amount > s.credits {
		return s.credits, false
	}
	s.credits -= amount
	return s.credits, true
}

// AddCredits adds amount to the balance and returns the new total.
func (s *AppState) AddCredits(amount int) int {
	s.creditsMu.Lock()
	defer s.creditsMu.Unlock()
	if amount > 0 {
		s.credits += amount
	}
	return s.credits
}
