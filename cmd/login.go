package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/auth"
	"github.com/spigell/interview-panel/internal/recruiter"
	"github.com/spigell/interview-panel/internal/secrets"
)

const passwordEnv = "INTERVIEW_PANEL_PASSWORD"

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and remember the session",
	Run:   withApp(login),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",
	Run: withApp(func(ctx context.Context, app *application, _ *cobra.Command, _ []string) error {
		if err := app.auth.Logout(ctx); err != nil {
			return fmt.Errorf("clearing the session: %w", err)
		}
		app.notifier.Success("Signed out.")
		return nil
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed in user",
	Run: withApp(func(ctx context.Context, app *application, cmd *cobra.Command, _ []string) error {
		user := app.auth.Init(ctx)
		if user == nil {
			app.notifier.Info("Not signed in.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), describeUser(user))
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)

	loginCmd.Flags().StringP("email", "e", "", "account email")
	loginCmd.Flags().String("password-file", "", "file holding the password (default is to ask, or "+passwordEnv+")")
}

func login(ctx context.Context, app *application, cmd *cobra.Command, _ []string) error {
	email, _ := cmd.Flags().GetString("email")
	passwordFile, _ := cmd.Flags().GetString("password-file")

	email = strings.TrimSpace(email)
	if email == "" {
		prompt := promptui.Prompt{
			Label: "Email",
			Validate: func(input string) error {
				if !recruiter.ValidEmail(input) {
					return fmt.Errorf("invalid email address")
				}
				return nil
			},
		}

		var err error
		if email, err = prompt.Run(); err != nil {
			return err
		}
	}

	password, err := secrets.Load(secrets.Source{
		Name: "password",
		File: passwordFile,
		Env:  passwordEnv,
	})
	if err != nil {
		if passwordFile != "" {
			return err
		}

		prompt := promptui.Prompt{Label: "Password", Mask: '*'}
		if password, err = prompt.Run(); err != nil {
			return err
		}
	}

	if err := recruiter.ValidateCredentials(email, password); err != nil {
		return err
	}

	result, err := app.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	user, err := app.auth.Login(ctx, auth.LoginArgs{Email: result.Email, Role: result.Role})
	if err != nil {
		return fmt.Errorf("saving the session: %w", err)
	}

	app.logger.Debug("login completed", zap.String("email", user.Email), zap.Bool("session_saved", app.store.Available()))
	app.notifier.Success(fmt.Sprintf("Welcome, %s.", user.Name))
	fmt.Fprintln(cmd.OutOrStdout(), describeUser(user))

	return nil
}

func describeUser(user *auth.UserProfile) string {
	name := strings.TrimSpace(user.Name + " " + user.LastName)
	return fmt.Sprintf("%s <%s> (%s)", name, user.Email, user.Type)
}
