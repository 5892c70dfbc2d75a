package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finovahq/agentdesk/internal/platform"
	"github.com/finovahq/agentdesk/internal/ux"
)

var agencyCmd = &cobra.Command{
	Use:   "agency",
	Short: "Manage collection agencies",
}

var agencyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new collection agency",
	Long: `Register a new collection agency.

Examples:
  agentdesk agency create --name "Swift Recovery" --phone 9876543210 --email ops@swift.example --address "14 MG Road"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")
		address, _ := cmd.Flags().GetString("address")
		status, _ := cmd.Flags().GetString("status")

		if name == "" {
			return fmt.Errorf("--name is required")
		}

		agency, err := client.CreateAgency(cmd.Context(), platform.CreateAgencyRequest{
			AgencyName: name,
			Phone:      phone,
			Email:      email,
			Address:    address,
			Status:     status,
		})
		if err != nil {
			return ux.FormatError(err, "creating agency")
		}

		fmt.Printf("Agency %q created (%s)\n", agency.AgencyName, agency.ID)
		return nil
	},
}

var agencyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered agencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		agencies, err := client.Agencies(cmd.Context())
		if err != nil {
			return ux.FormatError(err, "fetching agencies")
		}

		formatter, err := formatterFor(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("output")
		if format != "table" && format != "" {
			return formatter.Format(agencies)
		}

		rows := make([][]string, 0, len(agencies))
		for _, a := range agencies {
			rows = append(rows, []string{a.ID, a.AgencyName, a.Status, a.Phone, a.Email})
		}
		return formatter.Format(ux.Table{
			Headers: []string{"ID", "NAME", "STATUS", "PHONE", "EMAIL"},
			Rows:    rows,
		})
	},
}

var agencyDeleteCmd = &cobra.Command{
	Use:   "delete <agency-id>",
	Short: "Delete an agency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		if err := client.DeleteAgency(cmd.Context(), args[0]); err != nil {
			return ux.FormatError(err, "deleting agency")
		}

		fmt.Println("Agency deleted")
		return nil
	},
}

var agencyUsersCmd = &cobra.Command{
	Use:   "users <agency-id>",
	Short: "List the users mapped under an agency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		users, err := client.AgencyUsers(cmd.Context(), args[0])
		if err != nil {
			return ux.FormatError(err, "fetching agency users")
		}

		return printAgencyUsers(cmd, users)
	},
}

var agencyUnassignedUsersCmd = &cobra.Command{
	Use:   "unassigned-users",
	Short: "List users not mapped to any agency",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		users, err := client.UnassignedUsers(cmd.Context())
		if err != nil {
			return ux.FormatError(err, "fetching unassigned users")
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
			rows = append(rows, []string{u.ID, u.Username, email})
		}
		return formatter.Format(ux.Table{
			Headers: []string{"ID", "USERNAME", "EMAIL"},
			Rows:    rows,
		})
	},
}

var agencyAssignUserCmd = &cobra.Command{
	Use:   "assign-user",
	Short: "Map a user into an agency with a role",
	Long: `Map a user into an agency with a role (admin, manager, or agent).

Examples:
  agentdesk agency assign-user --user U42 --agency A7 --role agent
  agentdesk agency assign-user --user U42 --agency A7 --role agent --manager U9`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		userID, _ := cmd.Flags().GetString("user")
		agencyID, _ := cmd.Flags().GetString("agency")
		role, _ := cmd.Flags().GetString("role")
		managerID, _ := cmd.Flags().GetString("manager")

		if userID == "" || agencyID == "" {
			return fmt.Errorf("--user and --agency are required")
		}

		req := platform.AssignUserToAgencyRequest{
			UserID:     userID,
			AgencyID:   agencyID,
			AgencyRole: role,
		}
		if managerID != "" {
			req.ManagerID = &managerID
		}

		if err := client.AssignUserToAgency(cmd.Context(), req); err != nil {
			return ux.FormatError(err, "mapping user")
		}

		fmt.Printf("User %s mapped into agency %s as %s\n", userID, agencyID, role)
		return nil
	},
}

var agencyCasesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List the cases owned by your agency",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		cases, err := client.AgencyCases(cmd.Context())
		if err != nil {
			return ux.FormatError(err, "fetching agency cases")
		}

		formatter, err := formatterFor(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("output")
		if format != "table" && format != "" {
			return formatter.Format(cases)
		}

		rows := make([][]string, 0, len(cases))
		for _, c := range cases {
			rows = append(rows, []string{c.ID, c.LoanID, c.CaseStatus, c.DPDBucket})
		}
		return formatter.Format(ux.Table{
			Headers: []string{"ID", "LOAN", "STATUS", "BUCKET"},
			Rows:    rows,
		})
	},
}

var agencyAgentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the agents within your own agency",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		users, err := client.MyAgencyUsers(cmd.Context())
		if err != nil {
			return ux.FormatError(err, "fetching agency agents")
		}

		return printAgencyUsers(cmd, users)
	},
}

func printAgencyUsers(cmd *cobra.Command, users []platform.AgencyUser) error {
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
		manager := ""
		if u.ManagerID != nil {
			manager = *u.ManagerID
		}
		rows = append(rows, []string{u.UserID, u.Username, u.Email, u.AgencyRole, manager})
	}
	return formatter.Format(ux.Table{
		Headers: []string{"ID", "USERNAME", "EMAIL", "ROLE", "MANAGER"},
		Rows:    rows,
	})
}

func init() {
	agencyCreateCmd.Flags().String("name", "", "Agency name (required)")
	agencyCreateCmd.Flags().String("phone", "", "Contact phone (10 digits)")
	agencyCreateCmd.Flags().String("email", "", "Contact email")
	agencyCreateCmd.Flags().String("address", "", "Postal address")
	agencyCreateCmd.Flags().String("status", "active", "Initial status (active, inactive)")

	agencyAssignUserCmd.Flags().String("user", "", "User ID (required)")
	agencyAssignUserCmd.Flags().String("agency", "", "Agency ID (required)")
	agencyAssignUserCmd.Flags().String("role", platform.AgencyRoleAgent, "Agency role (admin, manager, agent)")
	agencyAssignUserCmd.Flags().String("manager", "", "Manager user ID")

	addOutputFlag(agencyListCmd)
	addOutputFlag(agencyUsersCmd)
	addOutputFlag(agencyUnassignedUsersCmd)
	addOutputFlag(agencyCasesCmd)
	addOutputFlag(agencyAgentsCmd)

	agencyCmd.AddCommand(agencyCreateCmd)
	agencyCmd.AddCommand(agencyListCmd)
	agencyCmd.AddCommand(agencyDeleteCmd)
	agencyCmd.AddCommand(agencyUsersCmd)
	agencyCmd.AddCommand(agencyUnassignedUsersCmd)
	agencyCmd.AddCommand(agencyAssignUserCmd)
	agencyCmd.AddCommand(agencyCasesCmd)
	agencyCmd.AddCommand(agencyAgentsCmd)
	rootCmd.AddCommand(agencyCmd)
}
