package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/finovahq/agentdesk/internal/ux"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication with the collection platform",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store a session token",
	Long: `Log in to the collection platform. The session token is stored in
~/.agentdesk/session.json and sent on every subsequent request.

Examples:
  agentdesk auth login --username agent1
  agentdesk auth login --username agent1 --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		client, err := getClient()
		if err != nil {
			return err
		}

		resp, err := client.Login(cmd.Context(), username, password)
		if err != nil {
			return ux.EnhanceError(err)
		}

		if resp.Message != "" {
			fmt.Println(resp.Message)
		} else {
			fmt.Println("Logged in")
		}
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		if err := client.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session status and permissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		if !client.IsAuthenticated() {
			fmt.Println("Not logged in.")
			fmt.Println("Use 'agentdesk auth login' to authenticate.")
			return nil
		}

		// Presence of a token says nothing about validity; ask the server
		permissions, err := client.MyPermissions(cmd.Context())
		if err != nil {
			fmt.Println("Session token present but rejected by the server.")
			fmt.Println("Use 'agentdesk auth login' to re-authenticate.")
			return nil
		}

		fmt.Println("Logged in")
		fmt.Println("Permissions:")
		for _, p := range permissions {
			fmt.Printf("  - %s\n", p)
		}
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("username", "", "Account username (required)")
	authLoginCmd.Flags().String("password", "", "Account password (prompted when omitted)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}
