package cmd

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/finovahq/agentdesk/internal/ux"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage dashboard users and their roles",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		users, err := client.Users(cmd.Context())
		if err != nil {
			return ux.FormatError(err, "fetching users")
		}

		formatter, err := formatterFor(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("output")
		if format != "table" && format != "" {
			return formatter.Format(users)
		}

		rows := make([][]string, 0, len(users))
		for _, u := range users {
			email := ""
			if u.Email != nil {
				email = *u.Email
			}
			active := "active"
			if !u.IsActive {
				active = "inactive"
			}
			rows = append(rows, []string{
				u.ID, u.Username, email, active, strings.Join(u.RoleList, ","),
			})
		}
		return formatter.Format(ux.Table{
			Headers: []string{"ID", "USERNAME", "EMAIL", "STATUS", "ROLES"},
			Rows:    rows,
		})
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new user account",
	Long: `Register a new user account.

Examples:
  agentdesk users create --username agent9
  agentdesk users create --username agent9 --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if username == "" {
			return fmt.Errorf("--username is required")
		}

		if password == "" {
			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("cannot read password: %w", err)
			}
			password = string(raw)
		}

		if err := client.CreateUser(cmd.Context(), username, password); err != nil {
			return ux.FormatError(err, "creating user")
		}

		fmt.Printf("User %q created\n", username)
		return nil
	},
}

var usersRolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the role catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		roles, err := client.Roles(cmd.Context())
		if err != nil {
			return ux.FormatError(err, "fetching roles")
		}

		formatter, err := formatterFor(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("output")
		if format != "table" && format != "" {
			return formatter.Format(roles)
		}

		rows := make([][]string, 0, len(roles))
		for _, r := range roles {
			rows = append(rows, []string{r.ID, r.RoleName, r.Description})
		}
		return formatter.Format(ux.Table{
			Headers: []string{"ID", "ROLE", "DESCRIPTION"},
			Rows:    rows,
		})
	},
}

var usersAssignRolesCmd = &cobra.Command{
	Use:   "assign-roles <user-id>",
	Short: "Replace the role list of a user",
	Long: `Replace the role list of a user. The given roles become the user's
complete role set.

Examples:
  agentdesk users assign-roles U42 --role agent
  agentdesk users assign-roles U42 --role agent --role admin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		roles, _ := cmd.Flags().GetStringArray("role")
		if len(roles) == 0 {
			return fmt.Errorf("at least one --role is required")
		}

		if err := client.AssignRolesToUser(cmd.Context(), args[0], roles); err != nil {
			return ux.FormatError(err, "assigning roles")
		}

		fmt.Printf("Roles updated: %s\n", strings.Join(roles, ", "))
		return nil
	},
}

func init() {
	usersCreateCmd.Flags().String("username", "", "New account username (required)")
	usersCreateCmd.Flags().String("password", "", "New account password (prompted when omitted)")

	usersAssignRolesCmd.Flags().StringArray("role", nil, "Role name (repeatable)")

	addOutputFlag(usersListCmd)
	addOutputFlag(usersRolesCmd)

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersRolesCmd)
	usersCmd.AddCommand(usersAssignRolesCmd)
	rootCmd.AddCommand(usersCmd)
}
