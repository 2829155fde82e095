package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cosme-store/internal/handler/httperr"
	reqdto "cosme-store/internal/handler/dto/request"
	resdto "cosme-store/internal/handler/dto/response"
	"cosme-store/internal/handler/middleware"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"
)

type OrderHandler struct {
	checkoutCommands commands.CheckoutCommands
	orderQueries     queries.OrderQueries
}

func NewOrderHandler(checkoutCommands commands.CheckoutCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		checkoutCommands: checkoutCommands,
		orderQueries:     orderQueries,
	}
}

// @Summary Place order
// @Description Price the cart, apply the best campaign or the entered coupon, and persist the order
// @Tags orders
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Buyer ID"
// @Param request body reqdto.PlaceOrderRequest true "Cart contents and optional coupon code"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.PlaceOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	params := commands.PlaceOrderParams{
		UserID:     userID,
		Items:      req.ToCommandItems(),
		CouponCode: req.GetCouponCode(),
	}

	orderRM, err := h.checkoutCommands.PlaceOrder(c.Request.Context(), params)
	if err != nil {
		h.writeCheckoutError(c, err)
		return
	}

	c.Header("Location", "/api/orders/"+orderRM.ID.String())
	c.JSON(http.StatusCreated, resdto.FromOrderView(orderRM))
}

func (h *OrderHandler) writeCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEmptyCart), errors.Is(err, commands.ErrInvalidCart):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cart contents", nil)
	case errors.Is(err, commands.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon code not recognized", nil)
	case errors.Is(err, commands.ErrCouponNotYetActive),
		errors.Is(err, commands.ErrCouponExpired),
		errors.Is(err, commands.ErrCouponInactive),
		errors.Is(err, commands.ErrCouponExhausted),
		errors.Is(err, commands.ErrCouponMinimumNotMet),
		errors.Is(err, commands.ErrCouponNotApplicable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	case errors.Is(err, commands.ErrDiscountRaceLost):
		httperr.AbortWithError(c, http.StatusConflict, err, "Discount no longer available, please retry checkout", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		slog.Error("place order failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

// @Summary Get order
// @Description Get one of the caller's orders by ID
// @Tags orders
// @Produce json
// @Param X-User-ID header string true "Buyer ID"
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID", nil)
		return
	}

	orderRM, err := h.orderQueries.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		slog.Error("get order failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(orderRM))
}

// @Summary List orders
// @Description List the caller's orders, newest first
// @Tags orders
// @Produce json
// @Param X-User-ID header string true "Buyer ID"
// @Success 200 {array} resdto.OrderListResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	ordersRM, err := h.orderQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list orders failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response := make([]*resdto.OrderListResponse, len(ordersRM))
	for i, rm := range ordersRM {
		response[i] = resdto.FromOrderListItem(rm)
	}

	c.JSON(http.StatusOK, response)
}
