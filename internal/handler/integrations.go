package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/apierror"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/dto"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/infra"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Recommendations ──────────────────────────────────────────────────────────

type RecommendHandler struct{ svc service.RecommendService }

func NewRecommendHandler(svc service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

// ByIngredients ranks stored recipes against a comma-separated ingredients
// query, e.g. ?ingredients=tomato,basil&limit=5.
func (h *RecommendHandler) ByIngredients(c *gin.Context) {
	raw := c.Query("ingredients")
	if raw == "" {
		c.JSON(http.StatusBadRequest, apierror.New("missing ingredients"))
		return
	}
	var ingredients []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			ingredients = append(ingredients, p)
		}
	}

	limit := 10
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 50 {
		limit = v
	}

	resp, err := h.svc.ByIngredients(c.Request.Context(), ingredients, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Chat assistant ───────────────────────────────────────────────────────────

type ChatHandler struct{ client *infra.ChatClient }

func NewChatHandler(client *infra.ChatClient) *ChatHandler {
	return &ChatHandler{client: client}
}

func (h *ChatHandler) Ask(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusServiceUnavailable, apierror.New("chat assistant not configured"))
		return
	}
	var req dto.ChatRequest
	if !bindAndValidate(c, &req) {
		return
	}
	reply, err := h.client.Ask(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("chat provider unavailable"))
		return
	}
	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}

// ── Nutrition lookup ─────────────────────────────────────────────────────────

type NutritionHandler struct {
	client      *infra.NutritionClient
	ingredients service.IngredientService
}

func NewNutritionHandler(client *infra.NutritionClient, ingredients service.IngredientService) *NutritionHandler {
	return &NutritionHandler{client: client, ingredients: ingredients}
}

// ForIngredient resolves the ingredient, then queries the external provider
// by name. A tripped circuit breaker surfaces as 503.
func (h *NutritionHandler) ForIngredient(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	ing, err := h.ingredients.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	facts, err := h.client.Lookup(c.Request.Context(), ing.Name)
	if err != nil {
		if errors.Is(err, infra.ErrCircuitOpen) {
			c.JSON(http.StatusServiceUnavailable, apierror.New("nutrition provider temporarily unavailable"))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.New("nutrition lookup failed"))
		return
	}

	c.JSON(http.StatusOK, dto.NutritionResponse{
		IngredientID: ing.ID,
		Name:         facts.Name,
		Calories:     facts.Calories,
		ProteinG:     facts.ProteinG,
		FatG:         facts.FatG,
		CarbsG:       facts.CarbsG,
		Source:       "external",
		Warnings:     facts.Warnings,
	})
}

// ── Media upload ─────────────────────────────────────────────────────────────

type MediaHandler struct{ store *infra.MediaStore }

func NewMediaHandler(store *infra.MediaStore) *MediaHandler {
	return &MediaHandler{store: store}
}

const maxUploadBytes = 8 << 20 // 8 MiB

// Upload accepts a multipart "file" field under a "scope" namespace
// (ingredients, products, recipes) and returns the public URL.
func (h *MediaHandler) Upload(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, apierror.New("media storage not configured"))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("missing file field"))
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("file exceeds 8 MiB"))
		return
	}

	scope := c.DefaultPostForm("scope", "misc")
	switch scope {
	case "ingredients", "products", "recipes", "misc":
	default:
		c.JSON(http.StatusBadRequest, apierror.New("invalid scope"))
		return
	}

	url, key, err := h.store.Upload(c.Request.Context(), scope, file)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("upload failed"))
		return
	}
	c.JSON(http.StatusCreated, dto.MediaUploadResponse{URL: url, Key: key})
}
