package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"feedboard/internal/controller"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		var landed string
		nav := controller.NavigateFunc(func(route string) { landed = route })
		login := controller.NewLogin(app.client, app.sessions, nav, app.logger)

		if login.Submit(cmd.Context(), email, password) {
			user := app.sessions.CurrentUser(cmd.Context())
			if user != nil {
				fmt.Printf("%s (signed in as %s, user %d)\n", login.SuccessMessage(), user.Name, user.UserID)
			} else {
				fmt.Println(login.SuccessMessage())
			}
			app.logger.WithField("route", landed).Debug("navigated")
			return nil
		}

		for _, msg := range []string{login.EmailError(), login.PasswordError(), login.ErrorMessage()} {
			if msg != "" {
				return fmt.Errorf("%s", msg)
			}
		}
		return fmt.Errorf("login failed")
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the locally persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.sessions.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
