package dto

// ─── Chat completion proxy ───────────────────────────────────────────────────

type ChatRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=4000"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// ─── Nutrition lookup ────────────────────────────────────────────────────────

type NutritionResponse struct {
	IngredientID string   `json:"ingredient_id"`
	Name         string   `json:"name"`
	Calories     float64  `json:"calories"`
	ProteinG     float64  `json:"protein_g"`
	FatG         float64  `json:"fat_g"`
	CarbsG       float64  `json:"carbs_g"`
	Source       string   `json:"source"`
	Warnings     []string `json:"warnings,omitempty"`
}

// ─── Recommendation lookup ───────────────────────────────────────────────────

type RecommendationResponse struct {
	RecipeID   string  `json:"recipe_id"`
	RecipeName string  `json:"recipe_name"`
	ProductID  string  `json:"product_id"`
	Score      float64 `json:"score"`
}

// ─── Media upload ────────────────────────────────────────────────────────────

type MediaUploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
