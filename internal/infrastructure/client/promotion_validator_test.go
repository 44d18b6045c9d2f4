package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestValidateAcceptsValidCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/promotions/validate" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var req ValidationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Code != "WELCOME10" {
			t.Fatalf("unexpected code: %s", req.Code)
		}
		pct := 10.0
		json.NewEncoder(w).Encode(ValidationResponse{
			Valid: true,
			Promotion: &ValidatedPromotion{
				ID:                 uuid.NewString(),
				Name:               "Welcome offer",
				DiscountPercentage: &pct,
				CalculatedDiscount: 565,
			},
		})
	}))
	defer srv.Close()

	c := NewPromotionValidatorClient(srv.URL, 2*time.Second)
	resp, err := c.Validate(context.Background(), &ValidationRequest{
		Code:          "WELCOME10",
		OrderSubtotal: 5650,
		RestaurantID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if !resp.Valid {
		t.Fatal("expected valid verdict")
	}
	if resp.Promotion == nil || resp.Promotion.DiscountPercentage == nil || *resp.Promotion.DiscountPercentage != 10 {
		t.Fatalf("unexpected promotion payload: %+v", resp.Promotion)
	}
}

func TestValidateInvalidCodeIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ValidationResponse{
			Valid: false,
			Error: "promotion code has expired",
		})
	}))
	defer srv.Close()

	c := NewPromotionValidatorClient(srv.URL, 2*time.Second)
	resp, err := c.Validate(context.Background(), &ValidationRequest{Code: "EXPIRED"})
	if err != nil {
		t.Fatalf("expected verdict, got error: %v", err)
	}
	if resp.Valid {
		t.Fatal("expected invalid verdict")
	}
	if resp.Error == "" {
		t.Fatal("expected error message in verdict")
	}
}

func TestValidateServerFaultIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewPromotionValidatorClient(srv.URL, 2*time.Second)
	if _, err := c.Validate(context.Background(), &ValidationRequest{Code: "ANY"}); err == nil {
		t.Fatal("expected error for 500 reply")
	}
}
