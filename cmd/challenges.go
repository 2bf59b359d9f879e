package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxfit-project/maxfit/internal/api"
	"github.com/maxfit-project/maxfit/internal/output"
	"github.com/maxfit-project/maxfit/internal/session"
)

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "Community challenges",
}

var challengesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open challenges",
	RunE:  runChallengesList,
}

var challengesMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List challenges you joined",
	RunE:  runChallengesMine,
}

var challengesParticipantsCmd = &cobra.Command{
	Use:   "participants <id>",
	Short: "Show who joined a challenge",
	Args:  cobra.ExactArgs(1),
	RunE:  runChallengesParticipants,
}

var challengesJoinCmd = &cobra.Command{
	Use:   "join <id>",
	Short: "Join a challenge",
	Args:  cobra.ExactArgs(1),
	RunE:  runChallengesJoin,
}

var challengesLeaveCmd = &cobra.Command{
	Use:   "leave <id>",
	Short: "Leave a challenge",
	Args:  cobra.ExactArgs(1),
	RunE:  runChallengesLeave,
}

var challengesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a challenge",
	Long: `Create a community challenge.

Example:
  maxfit challenges create --title "30 dias de treino" \
    --description "Um treino por dia" --goal "30 treinos" \
    --start 2026-09-01 --end 2026-09-30`,
	RunE: runChallengesCreate,
}

var challengesCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a challenge as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runChallengesComplete,
}

var challengesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a challenge you created",
	Args:  cobra.ExactArgs(1),
	RunE:  runChallengesRemove,
}

func init() {
	rootCmd.AddCommand(challengesCmd)
	challengesCmd.AddCommand(
		challengesListCmd,
		challengesMineCmd,
		challengesParticipantsCmd,
		challengesJoinCmd,
		challengesLeaveCmd,
		challengesCreateCmd,
		challengesCompleteCmd,
		challengesRemoveCmd,
	)

	challengesListCmd.Flags().Bool("json", false, "output as JSON")

	challengesCreateCmd.Flags().String("title", "", "challenge title")
	challengesCreateCmd.Flags().String("description", "", "what the challenge is about")
	challengesCreateCmd.Flags().String("goal", "", "what counts as finishing")
	challengesCreateCmd.Flags().String("start", "", "start date (YYYY-MM-DD)")
	challengesCreateCmd.Flags().String("end", "", "end date (YYYY-MM-DD)")
}

func runChallengesList(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/desafios"); err != nil {
		return err
	}
	printer := newPrinter()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	challenges, err := client.ListChallenges(ctx)
	if err != nil {
		return apiError(err, "listing challenges")
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(cmd, challenges)
	}

	renderChallenges(printer, "Open Challenges", challenges)
	printer.PrintHints("challenges list")
	return nil
}

func runChallengesMine(cmd *cobra.Command, args []string) error {
	if err := guardRole(session.RoleTrainee); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	challenges, err := client.MyChallenges(ctx, id.ID)
	if err != nil {
		return apiError(err, "listing your challenges")
	}

	renderChallenges(printer, "Your Challenges", challenges)
	return nil
}

func renderChallenges(printer *output.Printer, title string, challenges []api.Challenge) {
	if len(challenges) == 0 {
		printer.Info("No challenges found")
		return
	}

	printer.Header(title)
	table := output.NewQuietTable([]string{"ID", "TITLE", "GOAL", "START", "END"}, printer.IsQuiet())
	for _, c := range challenges {
		table.AddRow([]string{
			strconv.FormatInt(c.ID, 10),
			c.Title,
			c.Goal,
			shortDate(c.StartDate),
			shortDate(c.EndDate),
		})
	}
	table.Render()
}

func runChallengesParticipants(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/desafios"); err != nil {
		return err
	}
	printer := newPrinter()

	challengeID, err := parseID(args[0], "challenge id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	participants, err := client.ListParticipants(ctx, challengeID)
	if err != nil {
		return apiError(err, "listing participants")
	}

	if len(participants) == 0 {
		printer.Info("Nobody joined this challenge yet")
		return nil
	}

	printer.Header("Participants")
	table := output.NewQuietTable([]string{"", "NAME", "PROGRESS"}, printer.IsQuiet())
	for _, p := range participants {
		badge := printer.StatusBadge("pending")
		if p.Completed {
			badge = printer.StatusBadge("done")
		}
		table.AddRow([]string{badge, p.Name, fmt.Sprintf("%.0f%%", p.Progress)})
	}
	table.Render()
	return nil
}

func runChallengesJoin(cmd *cobra.Command, args []string) error {
	if err := guardRole(session.RoleTrainee); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}
	challengeID, err := parseID(args[0], "challenge id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if err := client.JoinChallenge(ctx, challengeID, id.ID); err != nil {
		return apiError(err, "joining challenge")
	}

	printer.Success("Joined challenge %d", challengeID)
	printer.PrintHints("challenges join")
	return nil
}

func runChallengesLeave(cmd *cobra.Command, args []string) error {
	if err := guardRole(session.RoleTrainee); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}
	challengeID, err := parseID(args[0], "challenge id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if err := client.LeaveChallenge(ctx, challengeID, id.ID); err != nil {
		return apiError(err, "leaving challenge")
	}

	printer.Success("Left challenge %d", challengeID)
	return nil
}

func runChallengesCreate(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/desafios"); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		return &output.CLIError{
			Summary:  "missing required flags",
			Detail:   "--title is required",
			ExitCode: output.ExitUsageError,
		}
	}

	startFlag, _ := cmd.Flags().GetString("start")
	endFlag, _ := cmd.Flags().GetString("end")
	start, err := parseDate(startFlag)
	if err != nil {
		return err
	}
	end, err := parseDate(endFlag)
	if err != nil {
		return err
	}
	if !end.IsZero() && !start.IsZero() && end.Before(start) {
		return &output.CLIError{
			Summary:  "invalid dates",
			Detail:   "--end must not be before --start",
			ExitCode: output.ExitUsageError,
		}
	}

	challenge := api.NewChallenge{
		OwnerID:   id.ID,
		Title:     title,
		StartDate: start,
		EndDate:   end,
	}
	challenge.Description, _ = cmd.Flags().GetString("description")
	challenge.Goal, _ = cmd.Flags().GetString("goal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if err := client.CreateChallenge(ctx, challenge); err != nil {
		return apiError(err, "creating challenge")
	}

	printer.Success("Challenge '%s' created", title)
	return nil
}

func runChallengesComplete(cmd *cobra.Command, args []string) error {
	if err := guardRole(session.RoleTrainee); err != nil {
		return err
	}
	printer := newPrinter()

	id, err := currentIdentity()
	if err != nil {
		return err
	}
	challengeID, err := parseID(args[0], "challenge id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if err := client.CompleteChallenge(ctx, challengeID, id.ID); err != nil {
		return apiError(err, "completing challenge")
	}

	printer.Success("Challenge %d completed, well done", challengeID)
	return nil
}

func runChallengesRemove(cmd *cobra.Command, args []string) error {
	if err := guardRoute("/desafios"); err != nil {
		return err
	}
	printer := newPrinter()

	challengeID, err := parseID(args[0], "challenge id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if err := client.DeleteChallenge(ctx, challengeID); err != nil {
		return apiError(err, "removing challenge")
	}

	printer.Success("Challenge %d removed", challengeID)
	return nil
}

// parseDate accepts YYYY-MM-DD, empty means unset.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, &output.CLIError{
			Summary:  fmt.Sprintf("invalid date: %s", s),
			Detail:   "expected YYYY-MM-DD",
			ExitCode: output.ExitUsageError,
		}
	}
	return t, nil
}

// shortDate trims RFC3339 timestamps down to the date part.
func shortDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
