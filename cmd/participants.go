package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spigell/interview-panel/internal/output"
	"github.com/spigell/interview-panel/internal/platform"
	"github.com/spigell/interview-panel/internal/recruiter"
)

var participantsCmd = &cobra.Command{
	Use:     "participants",
	Aliases: []string{"p"},
	Short:   "Manage interview participants",
}

var participantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List participants with optional search, status filter and ordering",
	Run:   withApp(listParticipants),
}

var participantsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new participant",
	Run:   withApp(addParticipant),
}

var participantsAssignCmd = &cobra.Command{
	Use:   "assign PARTICIPANT_ID INTERVIEW_ID",
	Short: "Assign an interview to a participant",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(ctx context.Context, app *application, _ *cobra.Command, args []string) error {
		if _, err := app.requireRecruiter(ctx); err != nil {
			return err
		}
		if err := app.client.AssignInterview(ctx, args[0], args[1]); err != nil {
			return err
		}
		app.notifier.Success("Interview assigned.")
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(participantsCmd)
	participantsCmd.AddCommand(participantsListCmd, participantsAddCmd, participantsAssignCmd)

	participantsListCmd.Flags().StringP("search", "s", "", "match name or email")
	participantsListCmd.Flags().String("status", recruiter.StatusAll, "Pendiente, Asignado, Completado or all")
	participantsListCmd.Flags().String("sort", "", "order by name, date or status")

	participantsAddCmd.Flags().String("name", "", "full name")
	participantsAddCmd.Flags().String("email", "", "email address")
	participantsAddCmd.Flags().String("phone", "", "phone number")
}

func listParticipants(ctx context.Context, app *application, cmd *cobra.Command, _ []string) error {
	if _, err := app.requireRecruiter(ctx); err != nil {
		return err
	}

	search, _ := cmd.Flags().GetString("search")
	status, _ := cmd.Flags().GetString("status")
	sortBy, _ := cmd.Flags().GetString("sort")

	all, err := app.client.ListParticipants(ctx)
	if err != nil {
		return err
	}

	list, err := recruiter.FilterAndSort(ctx, app.logger, all, recruiter.Criteria{Search: search, Status: status, SortBy: sortBy})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := output.Stats(out, recruiter.ComputeStats(all)); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if len(list) == 0 {
		app.notifier.Info("No participants match.")
		return nil
	}
	return output.Participants(out, list)
}

func addParticipant(ctx context.Context, app *application, cmd *cobra.Command, _ []string) error {
	if _, err := app.requireRecruiter(ctx); err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")

	in := platform.NewParticipant{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
	if err := recruiter.ValidateParticipant(in); err != nil {
		return err
	}

	created, err := app.client.CreateParticipant(ctx, in)
	if err != nil {
		return err
	}

	app.notifier.Success(fmt.Sprintf("Participant %s created.", created.Name))
	return output.Participants(cmd.OutOrStdout(), []*platform.Participant{created})
}
