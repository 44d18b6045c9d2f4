package service

import (
	"testing"

	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
)

func TestPromotionStateHappyPath(t *testing.T) {
	s := NewPromotionState()
	if s.Status != PromotionNone {
		t.Fatalf("initial status = %q, want %q", s.Status, PromotionNone)
	}

	if err := s.BeginValidation(); err != nil {
		t.Fatalf("begin validation: %v", err)
	}
	if s.Status != PromotionValidating {
		t.Fatalf("status = %q, want %q", s.Status, PromotionValidating)
	}

	promo := &entity.Promotion{Code: "WELCOME10"}
	if err := s.Accept(promo); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if s.Applied() != promo {
		t.Fatal("applied promotion not returned")
	}

	s.Remove()
	if s.Status != PromotionNone || s.Applied() != nil {
		t.Fatal("remove did not clear the slot")
	}
}

func TestPromotionStateRejectionFallsBack(t *testing.T) {
	s := NewPromotionState()
	if err := s.BeginValidation(); err != nil {
		t.Fatalf("begin validation: %v", err)
	}
	if err := s.Reject("promotion code has expired"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if s.Status != PromotionNone {
		t.Fatalf("status = %q, want %q after rejection", s.Status, PromotionNone)
	}
	if s.LastError == "" {
		t.Fatal("rejection reason lost")
	}

	// fresh attempt after a rejection is allowed
	if err := s.BeginValidation(); err != nil {
		t.Fatalf("fresh attempt: %v", err)
	}
	if s.LastError != "" {
		t.Fatal("stale rejection reason survived a new attempt")
	}
}

func TestPromotionStateIllegalTransitions(t *testing.T) {
	s := NewPromotionState()
	if err := s.Accept(&entity.Promotion{}); err == nil {
		t.Fatal("accept without validation must fail")
	}
	if err := s.Reject("nope"); err == nil {
		t.Fatal("reject without validation must fail")
	}

	if err := s.BeginValidation(); err != nil {
		t.Fatalf("begin validation: %v", err)
	}
	if err := s.BeginValidation(); err == nil {
		t.Fatal("double begin must fail")
	}
}

func TestPromotionStateReplaceAppliedCode(t *testing.T) {
	s := NewPromotionState()
	_ = s.BeginValidation()
	_ = s.Accept(&entity.Promotion{Code: "FIRST"})

	if err := s.BeginValidation(); err != nil {
		t.Fatalf("revalidation over applied code: %v", err)
	}
	if s.Applied() != nil {
		t.Fatal("old code still applied during revalidation")
	}
	if err := s.Accept(&entity.Promotion{Code: "SECOND"}); err != nil {
		t.Fatalf("accept replacement: %v", err)
	}
	if s.Applied().Code != "SECOND" {
		t.Fatalf("applied code = %q, want SECOND", s.Applied().Code)
	}
}
