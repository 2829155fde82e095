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
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"
)

type CampaignHandler struct {
	campaignCommands commands.CampaignCommands
	campaignQueries  queries.CampaignQueries
}

func NewCampaignHandler(campaignCommands commands.CampaignCommands, campaignQueries queries.CampaignQueries) *CampaignHandler {
	return &CampaignHandler{
		campaignCommands: campaignCommands,
		campaignQueries:  campaignQueries,
	}
}

// @Summary List active campaigns
// @Description List live automatic campaigns in banner shape for the storefront
// @Tags campaigns
// @Produce json
// @Success 200 {array} resdto.CampaignBannerResponse
// @Router /campaigns/active [get]
func (h *CampaignHandler) ListActive(c *gin.Context) {
	items, err := h.campaignQueries.ListActive(c.Request.Context())
	if err != nil {
		slog.Error("list active campaigns failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response := make([]*resdto.CampaignBannerResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromCampaignBannerItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List campaigns
// @Description List all campaigns, including inactive and expired ones
// @Tags admin-campaigns
// @Produce json
// @Success 200 {array} resdto.CampaignResponse
// @Router /admin/campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	views, err := h.campaignQueries.List(c.Request.Context())
	if err != nil {
		slog.Error("list campaigns failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response := make([]*resdto.CampaignResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromCampaignView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get campaign
// @Description Get a campaign by ID
// @Tags admin-campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/campaigns/{id} [get]
func (h *CampaignHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campaign ID", nil)
		return
	}

	view, err := h.campaignQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrCampaignNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Campaign not found", nil)
			return
		}
		slog.Error("get campaign failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaignView(view))
}

// @Summary Create campaign
// @Description Create a new campaign definition
// @Tags admin-campaigns
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCampaignRequest true "Campaign definition"
// @Success 201 {object} resdto.CampaignResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/campaigns [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	var req reqdto.CreateCampaignRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.campaignCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.Header("Location", "/api/admin/campaigns/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromCampaignView(view))
}

// @Summary Update campaign
// @Description Replace a campaign definition; the usage counter is untouched
// @Tags admin-campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body reqdto.UpdateCampaignRequest true "Campaign definition"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/campaigns/{id} [put]
func (h *CampaignHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campaign ID", nil)
		return
	}

	var req reqdto.UpdateCampaignRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.campaignCommands.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaignView(view))
}

// @Summary Activate campaign
// @Description Switch a campaign on
// @Tags admin-campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/campaigns/{id}/activate [post]
func (h *CampaignHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// @Summary Deactivate campaign
// @Description Switch a campaign off
// @Tags admin-campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/campaigns/{id}/deactivate [post]
func (h *CampaignHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *CampaignHandler) setActive(c *gin.Context, active bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campaign ID", nil)
		return
	}

	if err := h.campaignCommands.SetActive(c.Request.Context(), id, active); err != nil {
		if errors.Is(err, commands.ErrCampaignNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Campaign not found", nil)
			return
		}
		slog.Error("set campaign active failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CampaignHandler) writeMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCampaignNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Campaign not found", nil)
	case errors.Is(err, commands.ErrCampaignCodeTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Campaign code already in use", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		slog.Error("campaign mutation failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
