package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"feedboard/internal/controller"
	"feedboard/internal/domain"
	"feedboard/internal/listing"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Administer user accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the user listing, optionally searched, filtered and sorted",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, users, err := newUserManagement(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		search, _ := cmd.Flags().GetString("search")
		role, _ := cmd.Flags().GetString("role")
		sortBy, _ := cmd.Flags().GetString("sort-by")
		desc, _ := cmd.Flags().GetBool("desc")

		users.SetSearchTerm(search)
		users.SetRoleFilter(role)
		users.SetSort(listing.UserSortField(sortBy))
		if desc {
			users.ToggleSortOrder()
		}

		if !users.LoadUsers(cmd.Context()) {
			return fmt.Errorf("%s", users.ErrorMessage())
		}

		for _, user := range users.FilteredUsers() {
			fmt.Printf("#%d %s <%s> %s since %s\n",
				user.UserID, user.Name, user.Email,
				listing.FormatRole(user.Role), listing.FormatDate(user.StartDate))
		}
		return nil
	},
}

var usersStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show user statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, users, err := newUserManagement(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		if !users.LoadUsers(cmd.Context()) {
			return fmt.Errorf("%s", users.ErrorMessage())
		}

		stats := users.Stats()
		fmt.Printf("total: %d\nemployees: %d\nadmins: %d\nrecent (30d): %d\n",
			stats.TotalUsers, stats.TotalEmployees, stats.TotalAdmins, stats.RecentUsers)
		return nil
	},
}

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new user",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, users, err := newUserManagement(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		// the duplicate-email check compares against the fetched listing
		if !users.LoadUsers(cmd.Context()) {
			return fmt.Errorf("%s", users.ErrorMessage())
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")
		startDate, _ := cmd.Flags().GetString("start-date")

		users.OpenAddUserForm()
		users.SetNewUser(domain.CreateUser{
			Name:      name,
			Email:     email,
			Password:  password,
			Role:      role,
			StartDate: startDate,
		})

		if !users.AddUser(cmd.Context()) {
			return fmt.Errorf("%s", users.ErrorMessage())
		}
		fmt.Println(users.SuccessMessage())
		return nil
	},
}

func newUserManagement(cmd *cobra.Command) (*app, *controller.UserManagement, error) {
	app, err := newApp(cmd)
	if err != nil {
		return nil, nil, err
	}

	nav := controller.NavigateFunc(func(route string) {
		app.logger.WithField("route", route).Debug("navigate")
	})
	admin := controller.NewAdmin(app.sessions, nav, app.logger)
	if !admin.Enter(cmd.Context()) {
		app.Close()
		return nil, nil, fmt.Errorf("not logged in, run: feedboard login")
	}

	return app, controller.NewUserManagement(app.client, app.logger, app.cfg.Messages.AdminTTL), nil
}

func init() {
	usersListCmd.Flags().String("search", "", "match name or email substring")
	usersListCmd.Flags().String("role", listing.RoleFilterAll, "role filter: all, employee or admin")
	usersListCmd.Flags().String("sort-by", string(listing.UserSortName), "sort field: name, email, role or startDate")
	usersListCmd.Flags().Bool("desc", false, "sort descending")

	usersAddCmd.Flags().String("name", "", "full name")
	usersAddCmd.Flags().String("email", "", "email address")
	usersAddCmd.Flags().String("password", "", "initial password")
	usersAddCmd.Flags().String("role", "", "role, defaults to Employee")
	usersAddCmd.Flags().String("start-date", "", "start date (YYYY-MM-DD), defaults to today")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersStatsCmd)
	usersCmd.AddCommand(usersAddCmd)
	rootCmd.AddCommand(usersCmd)
}
