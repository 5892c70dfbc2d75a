package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/finovahq/agentdesk/internal/errors"
	"github.com/finovahq/agentdesk/internal/ux"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Import cases and distribute them",
}

var onboardUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Bulk-import cases from a CSV export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		path := args[0]
		file, err := os.Open(path)
		if err != nil {
			return ux.EnhanceError(errors.NewUploadOpenError(path, err))
		}
		defer file.Close()

		result, err := client.UploadCases(cmd.Context(), filepath.Base(path), file)
		if err != nil {
			return ux.FormatError(err, "uploading cases")
		}

		if result.Message != "" {
			fmt.Println(result.Message)
		}
		if result.CasesImported > 0 {
			fmt.Printf("%d cases imported\n", result.CasesImported)
		}
		return nil
	},
}

var onboardUnassignedCmd = &cobra.Command{
	Use:   "unassigned",
	Short: "List imported cases not yet assigned to an agency",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		cases, err := client.UnassignedCases(cmd.Context())
		if err != nil {
			return ux.FormatError(err, "fetching unassigned cases")
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
			rows = append(rows, []string{c.ID, c.LoanID, strconv.Itoa(c.DPD), c.DPDBucket})
		}
		return formatter.Format(ux.Table{
			Headers: []string{"ID", "LOAN", "DPD", "BUCKET"},
			Rows:    rows,
		})
	},
}

var onboardAssignCmd = &cobra.Command{
	Use:   "assign <case-id>...",
	Short: "Assign cases to an agency in one batch",
	Long: `Assign one or more cases to an agency. All case IDs go out in a
single request.

Examples:
  agentdesk onboard assign C1 C2 C3 --agency A7`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		agencyID, _ := cmd.Flags().GetString("agency")
		if agencyID == "" {
			return fmt.Errorf("--agency is required")
		}

		if err := client.AssignCasesToAgency(cmd.Context(), agencyID, args); err != nil {
			return ux.FormatError(err, "assigning cases")
		}

		fmt.Printf("%d cases assigned to agency %s\n", len(args), agencyID)
		return nil
	},
}

var onboardAssignUserCmd = &cobra.Command{
	Use:   "assign-user <case-id>",
	Short: "Hand an agency case to one of its agents",
	Long: `Hand an agency case to one of its agents.

Examples:
  agentdesk onboard assign-user C1 --user U42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		if err := client.AssignCaseToUser(cmd.Context(), args[0], userID); err != nil {
			return ux.FormatError(err, "assigning case")
		}

		fmt.Printf("Case %s assigned to user %s\n", args[0], userID)
		return nil
	},
}

func init() {
	onboardAssignCmd.Flags().String("agency", "", "Target agency ID (required)")
	onboardAssignUserCmd.Flags().String("user", "", "Target user ID (required)")

	addOutputFlag(onboardUnassignedCmd)

	onboardCmd.AddCommand(onboardUploadCmd)
	onboardCmd.AddCommand(onboardUnassignedCmd)
	onboardCmd.AddCommand(onboardAssignCmd)
	onboardCmd.AddCommand(onboardAssignUserCmd)
	rootCmd.AddCommand(onboardCmd)
}
