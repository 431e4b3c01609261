package dto

// ─── Restaurant ──────────────────────────────────────────────────────────────

type CreateRestaurantRequest struct {
	Name    string  `json:"name"    validate:"required,min=2,max=120"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"   validate:"omitempty,email"`
}

type UpdateRestaurantRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=2,max=120"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Active  *bool   `json:"active"`
}

type RestaurantResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	LogoURL *string `json:"logo_url,omitempty"`
	Active  bool    `json:"active"`
}

// ─── Menu ────────────────────────────────────────────────────────────────────

type CreateMenuRequest struct {
	RestaurantID string  `json:"restaurant_id" validate:"required,uuid"`
	Name         string  `json:"name"          validate:"required,min=2,max=120"`
	Description  *string `json:"description"`
}

type UpdateMenuRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=2,max=120"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type MenuResponse struct {
	ID           string             `json:"id"`
	RestaurantID string             `json:"restaurant_id"`
	Name         string             `json:"name"`
	Description  *string            `json:"description,omitempty"`
	ImageURL     *string            `json:"image_url,omitempty"`
	Active       bool               `json:"active"`
	Categories   []CategoryResponse `json:"categories,omitempty"`
}

// ─── Category ────────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	MenuID      string  `json:"menu_id"     validate:"required,uuid"`
	Name        string  `json:"name"        validate:"required,min=2,max=120"`
	Description *string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=2,max=120"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type CategoryResponse struct {
	ID          string  `json:"id"`
	MenuID      string  `json:"menu_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Active      bool    `json:"active"`
}
