package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/apierror"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/dto"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const menuCacheTTL = 10 * time.Minute

// PublicMenuHandler serves the unauthenticated menu view diners see.
// No side effects; responses are cached in Redis with a short TTL, so
// staff edits become visible within menuCacheTTL at the latest.
type PublicMenuHandler struct {
	svc service.MenuService
	rdb *redis.Client
}

func NewPublicMenuHandler(svc service.MenuService, rdb *redis.Client) *PublicMenuHandler {
	return &PublicMenuHandler{svc: svc, rdb: rdb}
}

// GetMenu godoc
// @Summary Public menu view (no authentication)
// @Tags public
// @Produce json
// @Param id path string true "Menu ID"
// @Success 200 {object} dto.MenuResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/public/menus/{id} [get]
func (h *PublicMenuHandler) GetMenu(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := "menu:" + id.String()

	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.MenuResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	resp, err := h.svc.GetByID(ctx, id)
	if err != nil || !resp.Active {
		if err != nil && !errors.Is(err, service.ErrNotFound) {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusNotFound, apierror.New("menu not found"))
		return
	}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, menuCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
