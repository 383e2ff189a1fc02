package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/ai"
	"github.com/spigell/interview-panel/internal/output"
	"github.com/spigell/interview-panel/internal/platform"
)

const (
	PromptSave       = "Save interview"
	PromptRegenerate = "Regenerate marked questions"
	PromptToggle     = "Approve / mark a question"
	PromptEdit       = "Edit a question"
	PromptCancel     = "Cancel"
)

var errCancelled = errors.New("cancelled")

var interviewsCmd = &cobra.Command{
	Use:     "interviews",
	Aliases: []string{"i"},
	Short:   "Manage interviews",
}

var interviewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List interviews",
	Run: withApp(func(ctx context.Context, app *application, cmd *cobra.Command, _ []string) error {
		if _, err := app.requireRecruiter(ctx); err != nil {
			return err
		}
		list, err := app.client.ListInterviews(ctx)
		if err != nil {
			return err
		}
		return output.Interviews(cmd.OutOrStdout(), list)
	}),
}

var interviewsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate questions with AI, review them and create an interview",
	Run:   withApp(createInterview),
}

var interviewsDeleteCmd = &cobra.Command{
	Use:   "delete INTERVIEW_ID",
	Short: "Delete an interview",
	Args:  cobra.ExactArgs(1),
	Run:   withApp(deleteInterview),
}

func init() {
	rootCmd.AddCommand(interviewsCmd)
	interviewsCmd.AddCommand(interviewsListCmd, interviewsCreateCmd, interviewsDeleteCmd)

	interviewsCreateCmd.Flags().String("title", "", "interview title")
	interviewsCreateCmd.Flags().String("description", "", "position description used to generate questions")
	interviewsCreateCmd.Flags().String("status", platform.InterviewDraft, "Borrador or Activa")
	interviewsCreateCmd.Flags().IntP("count", "n", 0, "number of questions (default from ai.questions)")
	interviewsCreateCmd.Flags().BoolP("yes", "y", false, "save the generated questions without review")

	interviewsDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

func createInterview(ctx context.Context, app *application, cmd *cobra.Command, _ []string) error {
	if _, err := app.requireRecruiter(ctx); err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	status, _ := cmd.Flags().GetString("status")
	count, _ := cmd.Flags().GetInt("count")
	skipReview, _ := cmd.Flags().GetBool("yes")

	if count <= 0 {
		count = app.config.AI.Questions
	}

	draft := ai.Draft{Title: title, Description: description, Status: status}
	if err := draft.Validate(); err != nil {
		return err
	}

	generator, err := app.questionGenerator(ctx)
	if err != nil {
		return err
	}

	app.notifier.Info("Generating questions...")
	questions, err := generator.Generate(ctx, draft, count)
	if err != nil {
		return fmt.Errorf("generating questions: %w", err)
	}

	review := ai.NewReview(draft, questions)
	if !skipReview {
		if err := reviewQuestions(ctx, app, cmd, review, generator); err != nil {
			if errors.Is(err, errCancelled) {
				app.notifier.Info("Interview discarded.")
				return nil
			}
			return err
		}
	}

	approved := review.Approved()
	if len(approved) == 0 {
		app.notifier.Warning("No questions approved, nothing to save.")
		return nil
	}

	created, err := app.client.CreateInterview(ctx, draft.Interview(approved))
	if err != nil {
		return err
	}

	app.logger.Debug("interview created", zap.String("id", created.ID), zap.Int("questions", len(created.Questions)))
	app.notifier.Success(fmt.Sprintf("Interview %q created.", created.Title))
	return output.Interviews(cmd.OutOrStdout(), []*platform.Interview{created})
}

// reviewQuestions runs the approve / edit / regenerate loop until the
// recruiter saves or cancels.
func reviewQuestions(ctx context.Context, app *application, cmd *cobra.Command, review *ai.Review, generator ai.QuestionGenerator) error {
	for {
		if err := printReview(cmd, review); err != nil {
			return err
		}

		items := []string{PromptSave, PromptToggle, PromptEdit}
		if review.NeedsRegeneration() > 0 {
			items = append(items, PromptRegenerate)
		}
		items = append(items, PromptCancel)

		menu := promptui.Select{Label: "Review the questions", Items: items}
		_, choice, err := menu.Run()
		if err != nil {
			return err
		}

		switch choice {
		case PromptSave:
			return nil
		case PromptCancel:
			return errCancelled
		case PromptToggle:
			i, err := pickQuestion(review)
			if err != nil {
				return err
			}
			if err := review.Toggle(i); err != nil {
				return err
			}
		case PromptEdit:
			i, err := pickQuestion(review)
			if err != nil {
				return err
			}
			prompt := promptui.Prompt{Label: "Question", Default: review.Items[i].Question.Text, AllowEdit: true}
			text, err := prompt.Run()
			if err != nil {
				return err
			}
			if err := review.Edit(i, text); err != nil {
				app.notifier.Fail(err)
			}
		case PromptRegenerate:
			app.notifier.Info("Regenerating marked questions...")
			n, err := review.RegenerateMarked(ctx, generator)
			if err != nil {
				app.notifier.Fail(err)
				continue
			}
			app.notifier.Success(fmt.Sprintf("%d questions regenerated.", n))
		}
	}
}

func printReview(cmd *cobra.Command, review *ai.Review) error {
	questions := make([]platform.Question, len(review.Items))
	statuses := make([]string, len(review.Items))
	for i, item := range review.Items {
		questions[i] = item.Question
		statuses[i] = string(item.Status)
	}
	return output.Questions(cmd.OutOrStdout(), questions, statuses)
}

func pickQuestion(review *ai.Review) (int, error) {
	items := make([]string, len(review.Items))
	for i, item := range review.Items {
		items[i] = strconv.Itoa(i+1) + ". " + item.Question.Text
	}

	menu := promptui.Select{Label: "Question", Items: items, Size: 10}
	i, _, err := menu.Run()
	return i, err
}

func deleteInterview(ctx context.Context, app *application, cmd *cobra.Command, args []string) error {
	if _, err := app.requireRecruiter(ctx); err != nil {
		return err
	}

	confirmed, _ := cmd.Flags().GetBool("yes")
	if !confirmed {
		prompt := promptui.Prompt{Label: fmt.Sprintf("Delete interview %s", args[0]), IsConfirm: true}
		if _, err := prompt.Run(); err != nil {
			app.notifier.Info("Nothing deleted.")
			return nil
		}
	}

	if err := app.client.DeleteInterview(ctx, args[0]); err != nil {
		return err
	}

	app.notifier.Success("Interview deleted.")
	return nil
}
