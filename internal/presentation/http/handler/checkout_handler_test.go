package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/application/service"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/infrastructure/client"
)

type stubPromotionRepo struct {
	promotion *entity.Promotion
}

func (r *stubPromotionRepo) GetByCode(_ context.Context, code string) (*entity.Promotion, error) {
	if r.promotion != nil && strings.EqualFold(r.promotion.Code, code) {
		return r.promotion, nil
	}
	return nil, nil
}
func (r *stubPromotionRepo) ListActive(context.Context) ([]entity.Promotion, error) {
	return nil, nil
}
func (r *stubPromotionRepo) LogUsage(context.Context, *entity.PromotionUsage) error { return nil }

type stubValidator struct {
	got *client.ValidationRequest
}

func (v *stubValidator) Validate(_ context.Context, req *client.ValidationRequest) (*client.ValidationResponse, error) {
	v.got = req
	return &client.ValidationResponse{Valid: true}, nil
}

func TestValidatePromotionRoundsSubtotalToPaise(t *testing.T) {
	gin.SetMode(gin.TestMode)

	pct := 10.0
	validator := &stubValidator{}
	repo := &stubPromotionRepo{promotion: &entity.Promotion{
		ID:              uuid.New(),
		Code:            "SAVE10",
		Name:            "Ten percent off",
		DiscountPercent: &pct,
		StartDate:       time.Now().Add(-24 * time.Hour),
		EndDate:         time.Now().Add(24 * time.Hour),
		IsActive:        true,
	}}
	h := NewCheckoutHandler(nil, service.NewPromotionService(repo, validator))

	router := gin.New()
	router.POST("/checkout/promotions/validate", h.ValidatePromotion)

	body := `{"code":"SAVE10","order_subtotal":19.99}`
	req := httptest.NewRequest(http.MethodPost, "/checkout/promotions/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if validator.got == nil {
		t.Fatalf("validator was never called")
	}
	// 19.99 rupees is 1999 paise; float truncation would hand the
	// validator 19.98.
	if validator.got.OrderSubtotal != 19.99 {
		t.Fatalf("validator saw subtotal %v rupees, want 19.99", validator.got.OrderSubtotal)
	}
}
