package service

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/dto"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/repository"
)

// RecommendService ranks recipes against a set of ingredient keywords using
// TF-IDF over the recipe corpus: each recipe is a document whose terms are
// its composition-line ingredient names. The corpus is rebuilt per request;
// the catalog is small enough that no index caching is warranted.
type RecommendService interface {
	ByIngredients(ctx context.Context, ingredients []string, limit int) ([]dto.RecommendationResponse, error)
}

type recommendService struct {
	recipes repository.RecipeRepository
}

func NewRecommendService(recipes repository.RecipeRepository) RecommendService {
	return &recommendService{recipes: recipes}
}

type recipeDoc struct {
	id        string
	name      string
	productID string
	terms     map[string]float64 // term frequency
}

func (s *recommendService) ByIngredients(ctx context.Context, ingredients []string, limit int) ([]dto.RecommendationResponse, error) {
	recs, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]recipeDoc, 0, len(recs))
	df := make(map[string]int)
	for _, rec := range recs {
		lines, err := s.recipes.ListLines(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		doc := recipeDoc{
			id:        rec.ID.String(),
			name:      rec.Name,
			productID: rec.ProductID.String(),
			terms:     make(map[string]float64),
		}
		for _, line := range lines {
			if line.Ingredient == nil {
				continue
			}
			for _, t := range tokenize(line.Ingredient.Name) {
				doc.terms[t]++
			}
		}
		for t := range doc.terms {
			df[t]++
		}
		docs = append(docs, doc)
	}

	n := float64(len(docs))
	query := make(map[string]struct{})
	for _, ing := range ingredients {
		for _, t := range tokenize(ing) {
			query[t] = struct{}{}
		}
	}

	var result []dto.RecommendationResponse
	for _, doc := range docs {
		score := 0.0
		for t := range query {
			tf, ok := doc.terms[t]
			if !ok {
				continue
			}
			idf := math.Log((n + 1) / (float64(df[t]) + 1))
			score += tf * idf
		}
		if score > 0 {
			result = append(result, dto.RecommendationResponse{
				RecipeID:   doc.id,
				RecipeName: doc.name,
				ProductID:  doc.productID,
				Score:      score,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].Score > result[j].Score })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func tokenize(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,;:()")
		if len(f) > 1 {
			out = append(out, f)
		}
	}
	return out
}
