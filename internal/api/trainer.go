package api

import (
	"context"
	"fmt"
)

// TraineeSummary is a trainee row in the trainer's management screens.
type TraineeSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email,omitempty"`
	City  string `json:"cidade,omitempty"`
}

// ListTrainees returns the trainees linked to a trainer.
func (c *Client) ListTrainees(ctx context.Context, trainerID int64) ([]TraineeSummary, error) {
	var resp envelope[[]TraineeSummary]
	if err := c.get(ctx, fmt.Sprintf("/personal/%d/alunos", trainerID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListAvailableTrainees returns trainees not yet linked to any trainer.
func (c *Client) ListAvailableTrainees(ctx context.Context) ([]TraineeSummary, error) {
	var resp envelope[[]TraineeSummary]
	if err := c.get(ctx, "/personal/alunos-disponiveis", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// LinkTrainee attaches a trainee to a trainer.
func (c *Client) LinkTrainee(ctx context.Context, trainerID, traineeID int64) error {
	body := struct {
		TrainerID int64 `json:"personalId"`
		TraineeID int64 `json:"alunoId"`
	}{TrainerID: trainerID, TraineeID: traineeID}
	return c.post(ctx, "/personal/vincular-aluno", nil, body, nil)
}
