package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/application/service"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/dto/request"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/dto/response"
)

// CheckoutHandler handles checkout HTTP requests
type CheckoutHandler struct {
	checkoutService  *service.CheckoutService
	promotionService *service.PromotionService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService, promotionService *service.PromotionService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService:  checkoutService,
		promotionService: promotionService,
	}
}

func checkoutParams(req *request.CheckoutPreviewRequest) (*service.CheckoutParams, error) {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, err
	}
	params := &service.CheckoutParams{
		RoomID:        roomID,
		DiscountType:  enum.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		PromotionCode: req.PromotionCode,
	}
	for _, c := range req.AdditionalCharges {
		params.AdditionalCharges = append(params.AdditionalCharges, service.ChargeParam{
			Name:   c.Name,
			Amount: c.Amount,
		})
	}
	return params, nil
}

// Preview prices the checkout without persisting anything
// @Summary Preview checkout
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body request.CheckoutPreviewRequest true "Checkout inputs"
// @Success 200 {object} response.APIResponse
// @Router /checkout/preview [post]
func (h *CheckoutHandler) Preview(c *gin.Context) {
	var req request.CheckoutPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	params, err := checkoutParams(&req)
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	preview, err := h.checkoutService.Preview(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checkout preview", preview)
}

// Confirm commits the checkout
// @Summary Confirm checkout
// @Description Persist the bill, settle open orders and release the room
// @Tags checkout
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body request.CheckoutConfirmRequest true "Checkout inputs"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /checkout/confirm [post]
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	var req request.CheckoutConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	params, err := checkoutParams(&req.CheckoutPreviewRequest)
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}
	params.PaymentMethod = req.PaymentMethod

	billing, err := h.checkoutService.Confirm(c.Request.Context(), params, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Checkout confirmed", billing)
}

// ValidatePromotion checks a promotion code for the checkout screen
// @Summary Validate promotion code
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body request.ValidatePromotionRequest true "Code and order subtotal"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /checkout/promotions/validate [post]
func (h *CheckoutHandler) ValidatePromotion(c *gin.Context) {
	var req request.ValidatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	subtotal := service.RupeesToPaise(req.OrderSubtotal)
	promotion, err := h.promotionService.ValidateCode(c.Request.Context(), req.Code, subtotal)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Promotion applied", promotion)
}

// ListPromotions returns promotions currently inside their validity window
// @Summary List active promotions
// @Tags checkout
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /promotions [get]
func (h *CheckoutHandler) ListPromotions(c *gin.Context) {
	promotions, err := h.promotionService.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Active promotions retrieved", promotions)
}
