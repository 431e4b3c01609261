package handler

import (
	"errors"
	"net/http"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/apierror"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/infra"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/service"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/worker"

	"github.com/gin-gonic/gin"
)

type CostingHandler struct {
	svc          service.CostingService
	dispatcher   *worker.Dispatcher
	storagePath  string
	defaultEmail string
}

func NewCostingHandler(svc service.CostingService, dispatcher *worker.Dispatcher, storagePath, defaultEmail string) *CostingHandler {
	return &CostingHandler{svc: svc, dispatcher: dispatcher, storagePath: storagePath, defaultEmail: defaultEmail}
}

// RecipeCost godoc
// @Summary Cost report for one recipe
// @Tags reports
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} dto.RecipeCostResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/recipes/{id}/cost [get]
func (h *CostingHandler) RecipeCost(c *gin.Context) {
	resp, err := h.svc.RecipeCost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AllCosts returns the cost and margin breakdown for every stored recipe.
// The aggregation is all-or-nothing: any per-recipe failure fails the report.
func (h *CostingHandler) AllCosts(c *gin.Context) {
	resp, err := h.svc.AllRecipeCosts(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrAggregation) {
			c.JSON(http.StatusInternalServerError, apierror.New("cost aggregation failed"))
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CostsPDF renders the full cost report to PDF and streams it back.
func (h *CostingHandler) CostsPDF(c *gin.Context) {
	rows, err := h.svc.AllRecipeCosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("cost aggregation failed"))
		return
	}
	path, err := infra.GenerateCostReportPDF(rows, h.storagePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("report rendering failed"))
		return
	}
	c.FileAttachment(path, "cost_report.pdf")
}

type emailReportRequest struct {
	ToEmail string `json:"to_email" validate:"omitempty,email"`
}

// EmailCosts queues async generation and delivery of the cost report.
func (h *CostingHandler) EmailCosts(c *gin.Context) {
	var req emailReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	to := req.ToEmail
	if to == "" {
		to = h.defaultEmail
	}
	if to == "" {
		c.JSON(http.StatusBadRequest, apierror.New("no recipient configured"))
		return
	}
	if err := h.dispatcher.EnqueueReport(c.Request.Context(), worker.ReportJobPayload{ToEmail: to}); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to queue report"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": true, "to": to})
}
