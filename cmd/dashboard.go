package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/output"
	"github.com/spigell/interview-panel/internal/recruiter"
)

const (
	PromptParticipants = "Participants"
	PromptInterviews   = "Interviews"
	PromptResults      = "Results"
	PromptRanking      = "Ranking by interview"
	PromptRefresh      = "Refresh"
	PromptQuit         = "Quit"
)

var errExit = errors.New("exit requested")

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Browse participants, interviews and results interactively",
	Run:   withApp(dashboard),
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func dashboard(ctx context.Context, app *application, cmd *cobra.Command, _ []string) error {
	user, err := app.requireRecruiter(ctx)
	if err != nil {
		return err
	}

	board := recruiter.NewDashboard(app.client, app.logger)

	snap, err := board.Load(ctx, recruiter.TabAll)
	if err != nil {
		return err
	}
	app.notifier.Info(fmt.Sprintf("Hello, %s.", user.Name))

	prompt := promptui.Select{
		Label: "Dashboard",
		Items: []string{PromptParticipants, PromptInterviews, PromptResults, PromptRanking, PromptRefresh, PromptQuit},
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		// another terminal may have signed out
		if app.auth.Sync(ctx) == nil {
			return errNotSignedIn
		}

		if action == PromptRefresh {
			fresh, err := board.Load(ctx, recruiter.TabAll)
			if err != nil {
				app.notifier.Fail(err)
				continue
			}
			snap = fresh
			app.notifier.Success("Dashboard refreshed.")
			continue
		}

		if err := handleDashboardAction(action, cmd.OutOrStdout(), snap); err != nil {
			if errors.Is(err, errExit) {
				app.logger.Debug("exiting", zap.String("reason", "quit from dashboard"))
				return nil
			}
			return err
		}
	}
}

func handleDashboardAction(action string, out io.Writer, snap *recruiter.Snapshot) error {
	switch action {
	case PromptParticipants:
		if err := output.Stats(out, snap.Stats); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return output.Participants(out, snap.Participants)
	case PromptInterviews:
		return output.Interviews(out, snap.Interviews)
	case PromptResults:
		return output.Results(out, snap.Completed)
	case PromptRanking:
		return output.Rankings(out, recruiter.RankByTitle(snap.Completed))
	case PromptQuit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
