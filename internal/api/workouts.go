package api

import (
	"context"
	"fmt"
)

// Exercise is one exercise inside a workout plan.
type Exercise struct {
	Name        string `json:"nome"`
	Sets        *int   `json:"series"`
	Reps        *int   `json:"repeticoes"`
	RestSeconds *int   `json:"descanso"`
	Notes       string `json:"observacoes,omitempty"`
}

// Workout is a training plan a trainer assigned to a trainee.
type Workout struct {
	ID         int64      `json:"id"`
	Title      string     `json:"titulo"`
	Goal       string     `json:"objetivo,omitempty"`
	Level      string     `json:"nivel,omitempty"`
	ValidUntil string     `json:"validade,omitempty"`
	TraineeID  int64      `json:"alunoId,omitempty"`
	TrainerID  int64      `json:"personalId,omitempty"`
	Exercises  []Exercise `json:"exercicios,omitempty"`
}

// WorkoutLog records a completed workout for the trainee's history.
type WorkoutLog struct {
	TraineeID   int64  `json:"alunoId"`
	WorkoutName string `json:"nomeTreino"`
	Completed   bool   `json:"concluido"`
}

// Dashboard summarizes a trainee's recent training activity.
type Dashboard struct {
	TotalWorkouts     int `json:"totalTreinos"`
	CompletedWorkouts int `json:"treinosRealizados"`
}

// ListWorkouts returns the workout plans assigned to a trainee.
func (c *Client) ListWorkouts(ctx context.Context, traineeID int64) ([]Workout, error) {
	var workouts []Workout
	if err := c.get(ctx, fmt.Sprintf("/treinos/%d", traineeID), nil, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetWorkout returns a single workout plan by id.
func (c *Client) GetWorkout(ctx context.Context, id int64) (Workout, error) {
	var workout Workout
	if err := c.get(ctx, fmt.Sprintf("/treinos/%d", id), nil, &workout); err != nil {
		return Workout{}, err
	}
	return workout, nil
}

// CreateWorkout creates a workout plan (trainer screen).
func (c *Client) CreateWorkout(ctx context.Context, workout Workout) error {
	return c.post(ctx, "/treinos", nil, workout, nil)
}

// LogWorkout records a workout completion.
func (c *Client) LogWorkout(ctx context.Context, entry WorkoutLog) error {
	return c.post(ctx, "/treinos/registro", nil, entry, nil)
}

// GetDashboard returns the trainee's activity summary.
func (c *Client) GetDashboard(ctx context.Context, traineeID int64) (Dashboard, error) {
	var resp envelope[Dashboard]
	if err := c.get(ctx, fmt.Sprintf("/treinos/dashboard/%d", traineeID), nil, &resp); err != nil {
		return Dashboard{}, err
	}
	return resp.Data, nil
}
