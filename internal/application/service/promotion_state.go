package service

import (
	"fmt"

	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
)

// PromotionStatus is the lifecycle phase of a promotion attempt on a
// checkout screen.
type PromotionStatus string

const (
	PromotionNone       PromotionStatus = "no_promotion"
	PromotionValidating PromotionStatus = "validating"
	PromotionApplied    PromotionStatus = "applied"
)

// PromotionState tracks the single promotion slot of a checkout. Only one
// code can be applied at a time; a rejected attempt falls straight back to
// the empty state, and removing an applied code does the same. There is no
// retry state; a fresh attempt is a fresh validation.
type PromotionState struct {
	Status    PromotionStatus
	Promotion *entity.Promotion
	LastError string
}

// NewPromotionState returns the empty promotion slot.
func NewPromotionState() *PromotionState {
	return &PromotionState{Status: PromotionNone}
}

// BeginValidation marks a validation attempt in flight. Starting one while
// another is already running is a programming error; starting one while a
// code is applied replaces it.
func (s *PromotionState) BeginValidation() error {
	if s.Status == PromotionValidating {
		return fmt.Errorf("promotion validation already in progress")
	}
	s.Status = PromotionValidating
	s.Promotion = nil
	s.LastError = ""
	return nil
}

// Accept records a successful validation verdict.
func (s *PromotionState) Accept(p *entity.Promotion) error {
	if s.Status != PromotionValidating {
		return fmt.Errorf("cannot accept promotion from state %q", s.Status)
	}
	s.Status = PromotionApplied
	s.Promotion = p
	s.LastError = ""
	return nil
}

// Reject records a failed verdict and falls back to the empty state,
// keeping the failure message for display.
func (s *PromotionState) Reject(reason string) error {
	if s.Status != PromotionValidating {
		return fmt.Errorf("cannot reject promotion from state %q", s.Status)
	}
	s.Status = PromotionNone
	s.Promotion = nil
	s.LastError = reason
	return nil
}

// Remove clears an applied promotion. Removing from the empty state is a
// harmless no-op.
func (s *PromotionState) Remove() {
	s.Status = PromotionNone
	s.Promotion = nil
	s.LastError = ""
}

// Applied returns the applied promotion, or nil when none is in effect.
func (s *PromotionState) Applied() *entity.Promotion {
	if s.Status != PromotionApplied {
		return nil
	}
	return s.Promotion
}
