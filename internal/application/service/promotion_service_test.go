package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/infrastructure/client"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/apperror"
)

type fakePromotionRepo struct {
	promotions map[string]*entity.Promotion
	usages     []*entity.PromotionUsage
	usageErr   error
}

func newFakePromotionRepo(promos ...*entity.Promotion) *fakePromotionRepo {
	r := &fakePromotionRepo{promotions: map[string]*entity.Promotion{}}
	for _, p := range promos {
		r.promotions[strings.ToUpper(p.Code)] = p
	}
	return r
}

func (r *fakePromotionRepo) GetByCode(_ context.Context, code string) (*entity.Promotion, error) {
	return r.promotions[strings.ToUpper(code)], nil
}

func (r *fakePromotionRepo) ListActive(_ context.Context) ([]entity.Promotion, error) {
	var out []entity.Promotion
	for _, p := range r.promotions {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePromotionRepo) LogUsage(_ context.Context, usage *entity.PromotionUsage) error {
	if r.usageErr != nil {
		return r.usageErr
	}
	r.usages = append(r.usages, usage)
	return nil
}

type fakeValidator struct {
	resp *client.ValidationResponse
	err  error
	got  *client.ValidationRequest
}

func (v *fakeValidator) Validate(_ context.Context, req *client.ValidationRequest) (*client.ValidationResponse, error) {
	v.got = req
	return v.resp, v.err
}

func activePromotion(code string) *entity.Promotion {
	pct := 10.0
	return &entity.Promotion{
		ID:              uuid.New(),
		RestaurantID:    uuid.New(),
		Code:            code,
		Name:            "Welcome offer",
		DiscountPercent: &pct,
		StartDate:       time.Now().Add(-24 * time.Hour),
		EndDate:         time.Now().Add(24 * time.Hour),
		IsActive:        true,
	}
}

func TestValidateCodeEmptyRejectedWithoutValidatorCall(t *testing.T) {
	v := &fakeValidator{resp: &client.ValidationResponse{Valid: true}}
	svc := NewPromotionService(newFakePromotionRepo(), v)

	_, err := svc.ValidateCode(context.Background(), "   ", 650000)
	appErr := apperror.GetAppError(err)
	if appErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", appErr.Code)
	}
	if v.got != nil {
		t.Fatal("validator must not be called for an empty code")
	}
}

func TestValidateCodeUnknownCode(t *testing.T) {
	svc := NewPromotionService(newFakePromotionRepo(), nil)

	_, err := svc.ValidateCode(context.Background(), "NOPE", 650000)
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", appErr.Code)
	}
}

func TestValidateCodeExpiredWindow(t *testing.T) {
	promo := activePromotion("OLD")
	promo.StartDate = time.Now().Add(-96 * time.Hour)
	promo.EndDate = time.Now().Add(-48 * time.Hour)
	svc := NewPromotionService(newFakePromotionRepo(promo), nil)

	_, err := svc.ValidateCode(context.Background(), "OLD", 650000)
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", appErr.Code)
	}
}

func TestValidateCodeAcceptsAndIgnoresValidatorFigures(t *testing.T) {
	promo := activePromotion("WELCOME10")
	v := &fakeValidator{resp: &client.ValidationResponse{
		Valid: true,
		Promotion: &client.ValidatedPromotion{
			// deliberately wrong figure; pricing must come from the local row
			CalculatedDiscount: 99999,
		},
	}}
	svc := NewPromotionService(newFakePromotionRepo(promo), v)

	got, err := svc.ValidateCode(context.Background(), "welcome10", 650000)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got.ID != promo.ID {
		t.Fatal("expected the local promotion row")
	}
	if v.got == nil || v.got.OrderSubtotal != 6500 {
		t.Fatalf("validator saw subtotal %+v, want 6500 rupees", v.got)
	}
	if got.DiscountPercent == nil || *got.DiscountPercent != 10 {
		t.Fatal("local discount fields must be untouched by the validator reply")
	}
}

func TestValidateCodeValidatorRejection(t *testing.T) {
	promo := activePromotion("EXPIRED")
	v := &fakeValidator{resp: &client.ValidationResponse{Valid: false, Error: "Expired"}}
	svc := NewPromotionService(newFakePromotionRepo(promo), v)

	_, err := svc.ValidateCode(context.Background(), "EXPIRED", 650000)
	appErr := apperror.GetAppError(err)
	if appErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", appErr.Code)
	}
	if appErr.Message != "Expired" {
		t.Fatalf("message = %q, want the validator's reason", appErr.Message)
	}
}

func TestValidateCodeValidatorOutage(t *testing.T) {
	promo := activePromotion("WELCOME10")
	v := &fakeValidator{err: errors.New("connection refused")}
	svc := NewPromotionService(newFakePromotionRepo(promo), v)

	_, err := svc.ValidateCode(context.Background(), "WELCOME10", 650000)
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", appErr.Code)
	}
}
