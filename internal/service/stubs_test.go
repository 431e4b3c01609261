package service

import (
	"context"
	"errors"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/dto"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/model"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory RecipeRepository stub ──────────────────────────────────────────

type stubRecipeRepo struct {
	recipes  []*model.Recipe // slice: storage order matters for reports
	lines    map[uuid.UUID][]model.IngredientLine
	variants map[uuid.UUID]*model.RecipeVariant

	failList  bool
	failLines map[uuid.UUID]bool
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{
		lines:     make(map[uuid.UUID][]model.IngredientLine),
		variants:  make(map[uuid.UUID]*model.RecipeVariant),
		failLines: make(map[uuid.UUID]bool),
	}
}

func (r *stubRecipeRepo) Create(_ context.Context, rec *model.Recipe) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.recipes = append(r.recipes, rec)
	return nil
}

func (r *stubRecipeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Recipe, error) {
	for _, rec := range r.recipes {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRecipeRepo) FindByProductID(_ context.Context, productID uuid.UUID) (*model.Recipe, error) {
	for _, rec := range r.recipes {
		if rec.ProductID == productID {
			return rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRecipeRepo) List(_ context.Context) ([]model.Recipe, error) {
	if r.failList {
		return nil, errors.New("db down")
	}
	out := make([]model.Recipe, 0, len(r.recipes))
	for _, rec := range r.recipes {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *stubRecipeRepo) Update(_ context.Context, rec *model.Recipe) error {
	for i, existing := range r.recipes {
		if existing.ID == rec.ID {
			r.recipes[i] = rec
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubRecipeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, rec := range r.recipes {
		if rec.ID == id {
			r.recipes = append(r.recipes[:i], r.recipes[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubRecipeRepo) AddLine(_ context.Context, line *model.IngredientLine) error {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	r.lines[line.RecipeID] = append(r.lines[line.RecipeID], *line)
	return nil
}

func (r *stubRecipeRepo) ListLines(_ context.Context, recipeID uuid.UUID) ([]model.IngredientLine, error) {
	if r.failLines[recipeID] {
		return nil, errors.New("db down")
	}
	return r.lines[recipeID], nil
}

func (r *stubRecipeRepo) DeleteLine(_ context.Context, id uuid.UUID) error {
	for recipeID, lines := range r.lines {
		for i, line := range lines {
			if line.ID == id {
				r.lines[recipeID] = append(lines[:i], lines[i+1:]...)
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubRecipeRepo) CreateVariant(_ context.Context, v *model.RecipeVariant) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.variants[v.ID] = v
	return nil
}

func (r *stubRecipeRepo) FindVariantByID(_ context.Context, id uuid.UUID) (*model.RecipeVariant, error) {
	v, ok := r.variants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubRecipeRepo) ListVariants(_ context.Context, recipeID uuid.UUID) ([]model.RecipeVariant, error) {
	var out []model.RecipeVariant
	for _, v := range r.variants {
		if v.RecipeID == recipeID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubRecipeRepo) UpdateVariant(_ context.Context, v *model.RecipeVariant) error {
	r.variants[v.ID] = v
	return nil
}

func (r *stubRecipeRepo) DeactivateVariant(_ context.Context, id uuid.UUID) error {
	v, ok := r.variants[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Active = false
	return nil
}

// ── In-memory IngredientRepository stub ──────────────────────────────────────

type stubIngredientRepo struct {
	ingredients map[uuid.UUID]*model.Ingredient
}

func newStubIngredientRepo() *stubIngredientRepo {
	return &stubIngredientRepo{ingredients: make(map[uuid.UUID]*model.Ingredient)}
}

func (r *stubIngredientRepo) Create(_ context.Context, ing *model.Ingredient) error {
	if ing.ID == uuid.Nil {
		ing.ID = uuid.New()
	}
	r.ingredients[ing.ID] = ing
	return nil
}

func (r *stubIngredientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Ingredient, error) {
	ing, ok := r.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ing, nil
}

func (r *stubIngredientRepo) FindByName(_ context.Context, name string) (*model.Ingredient, error) {
	for _, ing := range r.ingredients {
		if ing.Name == name {
			return ing, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubIngredientRepo) List(_ context.Context, includeInactive bool) ([]model.Ingredient, error) {
	var out []model.Ingredient
	for _, ing := range r.ingredients {
		if !includeInactive && !ing.Active {
			continue
		}
		out = append(out, *ing)
	}
	return out, nil
}

func (r *stubIngredientRepo) ListBelowMin(_ context.Context) ([]model.Ingredient, error) {
	var out []model.Ingredient
	for _, ing := range r.ingredients {
		if ing.Active && ing.QuantityOnHand.LessThan(ing.MinQty) {
			out = append(out, *ing)
		}
	}
	return out, nil
}

func (r *stubIngredientRepo) Update(_ context.Context, ing *model.Ingredient) error {
	r.ingredients[ing.ID] = ing
	return nil
}

func (r *stubIngredientRepo) AdjustQuantity(_ context.Context, id uuid.UUID, delta decimal.Decimal) error {
	ing, ok := r.ingredients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ing.QuantityOnHand = ing.QuantityOnHand.Add(delta)
	return nil
}

func (r *stubIngredientRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	ing, ok := r.ingredients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ing.Active = false
	return nil
}

// ── In-memory DishOfTheDayRepository stub ────────────────────────────────────

type stubDishRepo struct {
	entries []*model.DishOfTheDay
}

func newStubDishRepo() *stubDishRepo { return &stubDishRepo{} }

func (r *stubDishRepo) Create(_ context.Context, d *model.DishOfTheDay) error {
	// Mirrors the partial unique index: one Active entry per product
	for _, e := range r.entries {
		if e.ProductID == d.ProductID && e.Status == model.DishStatusActive {
			return repository.ErrDuplicateFeatured
		}
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.entries = append(r.entries, d)
	return nil
}

func (r *stubDishRepo) FindActiveByProduct(_ context.Context, productID uuid.UUID) (*model.DishOfTheDay, error) {
	for _, e := range r.entries {
		if e.ProductID == productID && e.Status == model.DishStatusActive {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubDishRepo) List(_ context.Context, activeOnly bool) ([]model.DishOfTheDay, error) {
	var out []model.DishOfTheDay
	for _, e := range r.entries {
		if activeOnly && e.Status != model.DishStatusActive {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubDishRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	for _, e := range r.entries {
		if e.ID == id {
			e.Status = model.DishStatusInactive
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Archive(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Archived = true
	return nil
}

func (r *stubProductRepo) Restore(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Archived = false
	return nil
}

func (r *stubProductRepo) SetAvailability(_ context.Context, id uuid.UUID, available bool) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Available = available
	return nil
}

// ── In-memory MenuRepository stub ────────────────────────────────────────────

type stubMenuRepo struct {
	menus map[uuid.UUID]*model.Menu
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{menus: make(map[uuid.UUID]*model.Menu)}
}

func (r *stubMenuRepo) Create(_ context.Context, m *model.Menu) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.menus[m.ID] = m
	return nil
}

func (r *stubMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Menu, error) {
	m, ok := r.menus[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMenuRepo) FindByName(_ context.Context, restaurantID uuid.UUID, name string) (*model.Menu, error) {
	for _, m := range r.menus {
		if m.RestaurantID == restaurantID && m.Name == name {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMenuRepo) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]model.Menu, error) {
	var out []model.Menu
	for _, m := range r.menus {
		if m.RestaurantID == restaurantID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMenuRepo) Update(_ context.Context, m *model.Menu) error {
	r.menus[m.ID] = m
	return nil
}

func (r *stubMenuRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	m, ok := r.menus[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Active = false
	return nil
}

// ── In-memory CategoryRepository stub ────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, menuID uuid.UUID, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.MenuID == menuID && c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) ListByMenu(_ context.Context, menuID uuid.UUID) ([]model.Category, error) {
	var out []model.Category
	for _, c := range r.categories {
		if c.MenuID == menuID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	c, ok := r.categories[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Active = false
	return nil
}

// ── In-memory RestaurantRepository stub ──────────────────────────────────────

type stubRestaurantRepo struct {
	restaurants map[uuid.UUID]*model.Restaurant
}

func newStubRestaurantRepo() *stubRestaurantRepo {
	return &stubRestaurantRepo{restaurants: make(map[uuid.UUID]*model.Restaurant)}
}

func (r *stubRestaurantRepo) Create(_ context.Context, rest *model.Restaurant) error {
	if rest.ID == uuid.Nil {
		rest.ID = uuid.New()
	}
	r.restaurants[rest.ID] = rest
	return nil
}

func (r *stubRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Restaurant, error) {
	rest, ok := r.restaurants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rest, nil
}

func (r *stubRestaurantRepo) FindByName(_ context.Context, name string) (*model.Restaurant, error) {
	for _, rest := range r.restaurants {
		if rest.Name == name {
			return rest, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRestaurantRepo) List(_ context.Context) ([]model.Restaurant, error) {
	var out []model.Restaurant
	for _, rest := range r.restaurants {
		out = append(out, *rest)
	}
	return out, nil
}

func (r *stubRestaurantRepo) Update(_ context.Context, rest *model.Restaurant) error {
	r.restaurants[rest.ID] = rest
	return nil
}

func (r *stubRestaurantRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	rest, ok := r.restaurants[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rest.Active = false
	return nil
}
