package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxfit-project/maxfit/internal/api"
	"github.com/maxfit-project/maxfit/internal/output"
	"github.com/maxfit-project/maxfit/internal/session"
)

var workoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "Workout plans and completion log",
}

var workoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your assigned workout plans",
	RunE:  runWorkoutsList,
}

var workoutsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout plan with its exercises",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkoutsShow,
}

var workoutsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Assign a workout plan to a trainee (trainer only)",
	Long: `Assign a workout plan to a linked trainee. Exercises are given as
name:sets:reps:rest, one --exercise flag per exercise.

Example:
  maxfit workouts create --trainee 7 --title "Treino A" --goal hipertrofia \
    --level intermediario --exercise "Supino reto:4:12:60" \
    --exercise "Agachamento:4:10:90"`,
	RunE: runWorkoutsCreate,
}

var workoutsLogCmd = &cobra.Command{
	Use:   "log <workout name>",
	Short: "Record a workout as done (or missed)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWorkoutsLog,
}

func init() {
	rootCmd.AddCommand(workoutsCmd)
	workoutsCmd.AddCommand(workoutsListCmd, workoutsShowCmd, workoutsCreateCmd, workoutsLogCmd)

	workoutsListCmd.Flags().Bool("json", false, "output as JSON")

	workoutsCreateCmd.Flags().Int64("trainee", 0, "trainee id the plan is for")
	workoutsCreateCmd.Flags().String("title", "", "plan title")
	workoutsCreateCmd.Flags().String("goal", "", "training goal")
	workoutsCreateCmd.Flags().String("level", "", "difficulty level")
	workoutsCreateCmd.Flags().String("valid-until", "", "plan expiry date (YYYY-MM-DD)")
	workoutsCreateCmd.Flags().StringArray("exercise", nil, "exercise as name:sets:reps:rest (repeatable)")

	workoutsLogCmd.Flags().Bool("missed", false, "record the workout as missed instead of done")
}

func runWorkoutsList(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/treinos"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	workouts, err := client.ListWorkouts(ctx, id.ID)
	if err != nil {
		return apiError(err, "listing workouts")
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(cmd, workouts)
	}

	if len(workouts) == 0 {
		printer.Info("No workout plans assigned yet")
		return nil
	}

	printer.Header("Your Workouts")
	table := output.NewQuietTable([]string{"ID", "TITLE", "GOAL", "LEVEL", "VALID UNTIL"}, printer.IsQuiet())
	for _, w := range workouts {
		table.AddRow([]string{strconv.FormatInt(w.ID, 10), w.Title, w.Goal, w.Level, w.ValidUntil})
	}
	table.Render()

	printer.PrintHints("workouts list")
	return nil
}

func runWorkoutsShow(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/treinos"); err != nil {
		return err
	}
	printer := newPrinter()

	workoutID, err := parseID(args[0], "workout id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	workout, err := client.GetWorkout(ctx, workoutID)
	if err != nil {
		return apiError(err, "loading workout")
	}

	printer.Header(workout.Title)
	if workout.Goal != "" {
		printer.Info("Goal: %s", workout.Goal)
	}
	if workout.Level != "" {
		printer.Info("Level: %s", workout.Level)
	}
	if workout.ValidUntil != "" {
		printer.Info("Valid until: %s", workout.ValidUntil)
	}

	if len(workout.Exercises) == 0 {
		printer.Info("No exercises in this plan")
		return nil
	}

	table := output.NewQuietTable([]string{"EXERCISE", "SETS", "REPS", "REST", "NOTES"}, printer.IsQuiet())
	for _, e := range workout.Exercises {
		table.AddRow([]string{e.Name, fmtIntPtr(e.Sets), fmtIntPtr(e.Reps), fmtRest(e.RestSeconds), e.Notes})
	}
	table.Render()
	return nil
}

func runWorkoutsCreate(cmd *cobra.Command, args []string) error {
	if err := guardRole(session.RoleTrainer); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	traineeID, _ := cmd.Flags().GetInt64("trainee")
	title, _ := cmd.Flags().GetString("title")
	if traineeID <= 0 || title == "" {
		return &output.CLIError{
			Summary:  "missing required flags",
			Detail:   "--trainee and --title are required",
			ExitCode: output.ExitUsageError,
		}
	}

	specs, _ := cmd.Flags().GetStringArray("exercise")
	exercises := make([]api.Exercise, 0, len(specs))
	for _, spec := range specs {
		exercise, err := parseExercise(spec)
		if err != nil {
			return &output.CLIError{
				Summary:  fmt.Sprintf("invalid exercise: %s", spec),
				Detail:   err.Error(),
				ExitCode: output.ExitUsageError,
			}
		}
		exercises = append(exercises, exercise)
	}

	workout := api.Workout{
		Title:     title,
		TraineeID: traineeID,
		TrainerID: id.ID,
		Exercises: exercises,
	}
	workout.Goal, _ = cmd.Flags().GetString("goal")
	workout.Level, _ = cmd.Flags().GetString("level")
	workout.ValidUntil, _ = cmd.Flags().GetString("valid-until")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if err := client.CreateWorkout(ctx, workout); err != nil {
		return apiError(err, "creating workout")
	}

	printer.Success("Workout '%s' assigned to trainee %d", title, traineeID)
	return nil
}

func runWorkoutsLog(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/treinos"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	missed, _ := cmd.Flags().GetBool("missed")
	name := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	err = client.LogWorkout(ctx, api.WorkoutLog{
		TraineeID:   id.ID,
		WorkoutName: name,
		Completed:   !missed,
	})
	if err != nil {
		return apiError(err, "logging workout")
	}

	if missed {
		printer.Success("Recorded '%s' as missed", name)
	} else {
		printer.Success("Recorded '%s' as done", name)
	}
	printer.PrintHints("workouts log")
	return nil
}

// parseExercise parses the name:sets:reps:rest flag format. Sets, reps, and
// rest are optional, so "Supino" and "Supino:4" are both accepted.
func parseExercise(spec string) (api.Exercise, error) {
	parts := strings.Split(spec, ":")
	if parts[0] == "" {
		return api.Exercise{}, fmt.Errorf("exercise name must not be empty")
	}

	exercise := api.Exercise{Name: parts[0]}
	numbers := []**int{&exercise.Sets, &exercise.Reps, &exercise.RestSeconds}
	for i, part := range parts[1:] {
		if i >= len(numbers) {
			return api.Exercise{}, fmt.Errorf("too many fields, want name:sets:reps:rest")
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return api.Exercise{}, fmt.Errorf("field %d must be a non-negative number", i+2)
		}
		*numbers[i] = &n
	}
	return exercise, nil
}

func fmtIntPtr(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

func fmtRest(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%ds", *n)
}
