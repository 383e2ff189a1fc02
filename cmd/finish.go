package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/platform"
)

var finishCmd = &cobra.Command{
	Use:   "finish INTERVIEW_ID",
	Short: "Submit the answers and recordings of an interview",
	Args:  cobra.ExactArgs(1),
	Run:   withApp(finishInterview),
}

func init() {
	rootCmd.AddCommand(finishCmd)

	finishCmd.Flags().StringP("answers", "a", "", "JSON file with the answers")
	finishCmd.Flags().StringSliceP("recording", "r", nil, "recording to upload, repeatable")
	finishCmd.MarkFlagRequired("answers")
}

func finishInterview(ctx context.Context, app *application, cmd *cobra.Command, args []string) error {
	user, err := app.requireUser(ctx)
	if err != nil {
		return err
	}

	answersFile, _ := cmd.Flags().GetString("answers")
	recordings, _ := cmd.Flags().GetStringSlice("recording")

	body, err := buildSubmission(user.ID, user.Email, answersFile, recordings)
	if err != nil {
		return err
	}

	app.logger.Debug("submitting interview",
		zap.String("interview_id", args[0]),
		zap.Int("recordings", len(recordings)),
		zap.Int("size", len(body.Bytes())),
	)

	if err := app.client.FinishInterview(ctx, args[0], body); err != nil {
		return err
	}

	app.notifier.Success("Interview submitted.")
	return nil
}

func buildSubmission(userID, email, answersFile string, recordings []string) (*platform.MultipartBody, error) {
	answers, err := os.ReadFile(answersFile)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	if !json.Valid(answers) {
		return nil, &platform.ValidationError{Message: fmt.Sprintf("%s is not valid JSON", answersFile), Fields: []string{"answers"}}
	}

	files := make([]platform.File, 0, len(recordings))
	for _, path := range recordings {
		files = append(files, platform.File{Field: "recordings", Name: filepath.Base(path), Path: path})
	}

	return platform.NewMultipartBody(map[string]string{
		"userId":  userID,
		"email":   email,
		"answers": string(answers),
	}, files...)
}
