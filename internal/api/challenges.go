package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Challenge is a community challenge trainees can join.
type Challenge struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"alunoId,omitempty"`
	Title       string `json:"titulo"`
	Description string `json:"descricao,omitempty"`
	Goal        string `json:"meta,omitempty"`
	StartDate   string `json:"dataInicio,omitempty"`
	EndDate     string `json:"dataFim,omitempty"`
}

// NewChallenge is the creation payload.
type NewChallenge struct {
	OwnerID     int64
	Title       string
	Description string
	Goal        string
	StartDate   time.Time
	EndDate     time.Time
}

// Participant is a trainee enrolled in a challenge.
type Participant struct {
	TraineeID int64   `json:"alunoId"`
	Name      string  `json:"nome"`
	Progress  float64 `json:"progressoAtual"`
	Completed bool    `json:"concluido,omitempty"`
}

// ListChallenges returns all open challenges.
func (c *Client) ListChallenges(ctx context.Context) ([]Challenge, error) {
	var challenges []Challenge
	if err := c.get(ctx, "/desafios", nil, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

// MyChallenges returns the challenges a trainee participates in.
func (c *Client) MyChallenges(ctx context.Context, traineeID int64) ([]Challenge, error) {
	var challenges []Challenge
	if err := c.get(ctx, fmt.Sprintf("/desafios/%d", traineeID), nil, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

// ListParticipants returns a challenge's participants with their progress.
func (c *Client) ListParticipants(ctx context.Context, challengeID int64) ([]Participant, error) {
	var resp envelope[[]Participant]
	if err := c.get(ctx, fmt.Sprintf("/desafios/%d/participantes", challengeID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// JoinChallenge enrolls a trainee with zero initial progress.
func (c *Client) JoinChallenge(ctx context.Context, challengeID, traineeID int64) error {
	body := struct {
		TraineeID int64   `json:"alunoId"`
		Progress  float64 `json:"progressoAtual"`
	}{TraineeID: traineeID}
	return c.post(ctx, fmt.Sprintf("/desafios/%d/participar", challengeID), nil, body, nil)
}

// LeaveChallenge withdraws a trainee from a challenge.
func (c *Client) LeaveChallenge(ctx context.Context, challengeID, traineeID int64) error {
	return c.delete(ctx, fmt.Sprintf("/desafios/%d/participar/%d", challengeID, traineeID), nil)
}

// CreateChallenge opens a new challenge.
func (c *Client) CreateChallenge(ctx context.Context, ch NewChallenge) error {
	body := struct {
		OwnerID     int64  `json:"alunoId"`
		Title       string `json:"titulo"`
		Description string `json:"descricao"`
		Goal        string `json:"meta"`
		StartDate   string `json:"dataInicio"`
		EndDate     string `json:"dataFim"`
	}{
		OwnerID:     ch.OwnerID,
		Title:       ch.Title,
		Description: ch.Description,
		Goal:        ch.Goal,
		StartDate:   ch.StartDate.UTC().Format(time.RFC3339),
		EndDate:     ch.EndDate.UTC().Format(time.RFC3339),
	}
	return c.post(ctx, "/desafios", nil, body, nil)
}

// CompleteChallenge marks the trainee's participation as completed.
func (c *Client) CompleteChallenge(ctx context.Context, challengeID, traineeID int64) error {
	query := url.Values{"alunoId": {strconv.FormatInt(traineeID, 10)}}
	return c.post(ctx, fmt.Sprintf("/desafios/%d/concluir", challengeID), query, nil, nil)
}

// DeleteChallenge removes a challenge entirely.
func (c *Client) DeleteChallenge(ctx context.Context, challengeID int64) error {
	return c.delete(ctx, fmt.Sprintf("/desafios/%d", challengeID), nil)
}
