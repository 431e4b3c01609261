package handler

import (
	"net/http"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type DishOfTheDayHandler struct{ svc service.DishOfTheDayService }

func NewDishOfTheDayHandler(svc service.DishOfTheDayService) *DishOfTheDayHandler {
	return &DishOfTheDayHandler{svc: svc}
}

// List returns featured entries, newest first. ?active=true filters to the
// currently featured dishes.
func (h *DishOfTheDayHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	resp, err := h.svc.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deactivate retires a featured entry. There is no manual promote endpoint;
// promotion only happens through recipe creation.
func (h *DishOfTheDayHandler) Deactivate(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
