package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cosme-store/internal/domain/campaign"
	"cosme-store/internal/domain/cart"
	"cosme-store/internal/handler/httperr"
	reqdto "cosme-store/internal/handler/dto/request"
	resdto "cosme-store/internal/handler/dto/response"
	"cosme-store/internal/usecase/queries"
)

type CartHandler struct {
	quoteQueries queries.QuoteQueries
}

func NewCartHandler(quoteQueries queries.QuoteQueries) *CartHandler {
	return &CartHandler{
		quoteQueries: quoteQueries,
	}
}

// @Summary Quote cart
// @Description Price a cart without placing an order: subtotal, best discount, shipping fee, and total
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteCartRequest true "Cart contents and optional coupon code"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/quote [post]
func (h *CartHandler) QuoteCart(c *gin.Context) {
	var req reqdto.QuoteCartRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	quote, err := h.quoteQueries.QuoteCart(c.Request.Context(), req.ToQueryItems(), req.GetCouponCode())
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrEmptyCart),
			errors.Is(err, cart.ErrInvalidQuantity),
			errors.Is(err, cart.ErrNegativePrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cart contents", nil)
		case errors.Is(err, campaign.ErrCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon code not recognized", nil)
		case errors.Is(err, campaign.ErrNotYetActive),
			errors.Is(err, campaign.ErrExpired),
			errors.Is(err, campaign.ErrInactive),
			errors.Is(err, campaign.ErrExhausted),
			errors.Is(err, campaign.ErrMinimumNotMet),
			errors.Is(err, campaign.ErrNoMatch):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		default:
			slog.Error("quote cart failed", "error", err)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(quote))
}
