package api

import (
	"context"
	"fmt"
)

// ProgressEntry is one physical-progress measurement.
type ProgressEntry struct {
	ID       int64   `json:"id"`
	Date     string  `json:"data"`
	WeightKG float64 `json:"peso"`
	ChestCM  float64 `json:"peito,omitempty"`
	WaistCM  float64 `json:"cintura,omitempty"`
	HipsCM   float64 `json:"quadril,omitempty"`
	ArmCM    float64 `json:"braco,omitempty"`
}

// ListProgress returns a trainee's physical-progress history.
func (c *Client) ListProgress(ctx context.Context, traineeID int64) ([]ProgressEntry, error) {
	var resp envelope[[]ProgressEntry]
	if err := c.get(ctx, fmt.Sprintf("/progresso/%d", traineeID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
