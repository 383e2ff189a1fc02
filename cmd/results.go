package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spigell/interview-panel/internal/output"
	"github.com/spigell/interview-panel/internal/platform"
	"github.com/spigell/interview-panel/internal/recruiter"
)

var resultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "Review completed interviews",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List completed interviews, optionally ranked per interview title",
	Run:   withApp(listResults),
}

var resultsShowCmd = &cobra.Command{
	Use:   "show RESULT_ID",
	Short: "Show the answers of a completed interview",
	Args:  cobra.ExactArgs(1),
	Run:   withApp(showResult),
}

func init() {
	rootCmd.AddCommand(resultsCmd)
	resultsCmd.AddCommand(resultsListCmd, resultsShowCmd)

	resultsListCmd.Flags().String("user", "", "only results of this candidate id")
	resultsListCmd.Flags().Bool("ranking", false, "show the best and worst results per interview title")
}

func loadResults(ctx context.Context, app *application, userID string) ([]*platform.CompletedInterview, error) {
	if userID != "" {
		return app.client.CompletedInterviewsByUser(ctx, userID)
	}
	return app.client.ListCompletedInterviews(ctx)
}

func listResults(ctx context.Context, app *application, cmd *cobra.Command, _ []string) error {
	if _, err := app.requireRecruiter(ctx); err != nil {
		return err
	}

	userID, _ := cmd.Flags().GetString("user")
	ranking, _ := cmd.Flags().GetBool("ranking")

	list, err := loadResults(ctx, app, userID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		app.notifier.Info("No interviews have been completed yet.")
		return nil
	}

	if ranking {
		return output.Rankings(cmd.OutOrStdout(), recruiter.RankByTitle(list))
	}
	return output.Results(cmd.OutOrStdout(), list)
}

func showResult(ctx context.Context, app *application, cmd *cobra.Command, args []string) error {
	if _, err := app.requireRecruiter(ctx); err != nil {
		return err
	}

	list, err := app.client.ListCompletedInterviews(ctx)
	if err != nil {
		return err
	}

	for _, ci := range list {
		if ci.ID == args[0] {
			return output.Answers(cmd.OutOrStdout(), ci)
		}
	}

	return fmt.Errorf("completed interview %s not found", args[0])
}
