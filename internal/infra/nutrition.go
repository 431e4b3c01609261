package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// nutritionPayload mirrors the third-party nutrition API response. Field names
// follow the upstream contract, not ours; mapping to DTOs happens in the handler.
type nutritionPayload struct {
	Name     string   `json:"food_name"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein_g"`
	Fat      float64  `json:"fat_total_g"`
	Carbs    float64  `json:"carbohydrates_total_g"`
	Warnings []string `json:"warnings"`
}

// NutritionFacts is the normalized result returned to callers.
type NutritionFacts struct {
	Name     string
	Calories float64
	ProteinG float64
	FatG     float64
	CarbsG   float64
	Warnings []string
}

// NutritionClient queries an external nutrition facts API by ingredient name.
// All calls pass through a circuit breaker so a slow or down provider cannot
// stall recipe endpoints.
type NutritionClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewNutritionClient(baseURL, apiKey string) *NutritionClient {
	return &NutritionClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cb:         NewCircuitBreaker(DefaultCBConfig()),
	}
}

// BreakerState exposes the circuit state for the health endpoint.
func (c *NutritionClient) BreakerState() string {
	return c.cb.State().String()
}

// Lookup fetches nutrition facts for a single ingredient name.
func (c *NutritionClient) Lookup(ctx context.Context, name string) (*NutritionFacts, error) {
	var facts *NutritionFacts

	err := c.cb.Execute(func() error {
		endpoint := fmt.Sprintf("%s/v1/nutrition?query=%s", c.baseURL, url.QueryEscape(name))
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("nutrition: create request: %w", err)
		}
		req.Header.Set("X-Api-Key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("nutrition: provider unreachable: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("nutrition: provider returned %d", resp.StatusCode)
		}

		var payload nutritionPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return fmt.Errorf("nutrition: decode response: %w", err)
		}
		facts = &NutritionFacts{
			Name:     payload.Name,
			Calories: payload.Calories,
			ProteinG: payload.Protein,
			FatG:     payload.Fat,
			CarbsG:   payload.Carbs,
			Warnings: payload.Warnings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return facts, nil
}
