package api

import (
	"context"
	"net/url"
)

// Professional is a support-directory contact (psychologist, nutritionist).
type Professional struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	City      string `json:"cidade,omitempty"`
	Phone     string `json:"telefone,omitempty"`
	Email     string `json:"email,omitempty"`
	Specialty string `json:"especialidade,omitempty"`
}

// ListPsychologists returns psychologists serving the given city.
func (c *Client) ListPsychologists(ctx context.Context, city string) ([]Professional, error) {
	return c.listProfessionals(ctx, "/suporte/psicologos", city)
}

// ListNutritionists returns nutritionists serving the given city.
func (c *Client) ListNutritionists(ctx context.Context, city string) ([]Professional, error) {
	return c.listProfessionals(ctx, "/suporte/nutricionistas", city)
}

func (c *Client) listProfessionals(ctx context.Context, path, city string) ([]Professional, error) {
	query := url.Values{"cidade": {city}}
	var resp envelope[[]Professional]
	if err := c.get(ctx, path, query, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
