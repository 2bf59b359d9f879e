package api

import (
	"context"
	"net/url"
	"strconv"
)

// DiaryEntry is one training-diary record.
type DiaryEntry struct {
	ID          int64  `json:"id,omitempty"`
	TraineeID   int64  `json:"alunoId"`
	Date        string `json:"data,omitempty"`
	Goal        string `json:"objetivo,omitempty"`
	DidToday    bool   `json:"feitoHoje"`
	WorkoutDone string `json:"treinoExecutado,omitempty"`
	Feeling     string `json:"comoMeSenti,omitempty"`
	Rating      int    `json:"avaliacao,omitempty"`
}

// CreateDiaryEntry records a diary entry for the trainee.
func (c *Client) CreateDiaryEntry(ctx context.Context, entry DiaryEntry) (DiaryEntry, error) {
	var resp envelope[DiaryEntry]
	if err := c.post(ctx, "/diarios", nil, entry, &resp); err != nil {
		return DiaryEntry{}, err
	}
	return resp.Data, nil
}

// ListDiaryEntries returns a trainee's diary, newest first.
func (c *Client) ListDiaryEntries(ctx context.Context, traineeID int64) ([]DiaryEntry, error) {
	query := url.Values{"alunoId": {strconv.FormatInt(traineeID, 10)}}
	var resp envelope[[]DiaryEntry]
	if err := c.get(ctx, "/diarios", query, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
