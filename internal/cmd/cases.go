package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/finovahq/agentdesk/internal/platform"
	"github.com/finovahq/agentdesk/internal/ux"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Work assigned collection cases",
}

var casesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cases assigned to you",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		result, err := client.Cases(cmd.Context())
		if err != nil {
			return ux.FormatError(err, "fetching cases")
		}

		formatter, err := formatterFor(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("output")
		if format != "table" && format != "" {
			return formatter.Format(result.Cases)
		}

		rows := make([][]string, 0, len(result.Cases))
		for _, c := range result.Cases {
			rows = append(rows, []string{
				c.ID, c.LoanID, c.CaseStatus,
				strconv.Itoa(c.DPD), c.DPDBucket,
				fmt.Sprintf("%.2f", c.EMIAmount),
				fmt.Sprintf("%.2f", c.PrincipalOutstanding),
			})
		}
		if err := formatter.Format(ux.Table{
			Headers: []string{"ID", "LOAN", "STATUS", "DPD", "BUCKET", "EMI", "PRINCIPAL"},
			Rows:    rows,
		}); err != nil {
			return err
		}

		if result.TotalEarnings > 0 {
			fmt.Printf("\nTotal earnings: %.2f\n", result.TotalEarnings)
		}
		return nil
	},
}

var casesShowCmd = &cobra.Command{
	Use:   "show <case-id>",
	Short: "Show the full detail of one case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		detail, err := client.CaseDetails(cmd.Context(), args[0])
		if err != nil {
			return ux.FormatError(err, "fetching case")
		}

		formatter, err := formatterFor(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("output")
		if format != "table" && format != "" {
			return formatter.Format(detail)
		}

		return formatter.Format(ux.Table{
			Headers: []string{"FIELD", "VALUE"},
			Rows: [][]string{
				{"Case", detail.CaseID},
				{"Loan", detail.LoanID},
				{"Agent", detail.AgentName},
				{"Status", detail.CaseStatus},
				{"DPD", fmt.Sprintf("%d (%s)", detail.DPD, detail.DPDBucket)},
				{"Loan amount", fmt.Sprintf("%.2f", detail.LoanAmount)},
				{"Monthly EMI", fmt.Sprintf("%.2f", detail.EMIMonthly)},
				{"EMIs paid", strconv.Itoa(detail.EMIsPaidTillDate)},
				{"EMIs pending", strconv.Itoa(detail.EMIsPending)},
				{"Bounce charges", fmt.Sprintf("%.2f", detail.BounceCharges)},
				{"Customer phone", detail.CustomerPhone},
				{"Customer address", detail.CustomerAddr},
			},
		})
	},
}

var casesTrailsCmd = &cobra.Command{
	Use:   "trails <case-id>",
	Short: "List the contact trails recorded on a case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		trails, err := client.Trails(cmd.Context(), args[0])
		if err != nil {
			return ux.FormatError(err, "fetching trails")
		}

		formatter, err := formatterFor(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("output")
		if format != "table" && format != "" {
			return formatter.Format(trails)
		}

		rows := make([][]string, 0, len(trails))
		for _, trail := range trails {
			contacted := "no"
			if trail.Contacted {
				contacted = "yes"
			}
			rows = append(rows, []string{
				strconv.Itoa(trail.TrailID), contacted, trail.PaymentDate, trail.Remarks,
			})
		}
		return formatter.Format(ux.Table{
			Headers: []string{"ID", "CONTACTED", "PAYMENT DATE", "REMARKS"},
			Rows:    rows,
		})
	},
}

var casesTrailCmd = &cobra.Command{
	Use:   "trail <case-id>",
	Short: "Record a contact trail on a case",
	Long: `Record a contact trail on a case.

Examples:
  agentdesk cases trail C123 --contacted --payment-date 2026-09-15 --remarks "Promised EMI by mid month"
  agentdesk cases trail C123 --remarks "No answer"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		contacted, _ := cmd.Flags().GetBool("contacted")
		paymentDate, _ := cmd.Flags().GetString("payment-date")
		remarks, _ := cmd.Flags().GetString("remarks")

		trail, err := client.AddTrail(cmd.Context(), args[0], platform.TrailInput{
			Contacted:   contacted,
			PaymentDate: paymentDate,
			Remarks:     remarks,
		})
		if err != nil {
			return ux.FormatError(err, "recording trail")
		}

		fmt.Printf("Trail %d recorded\n", trail.TrailID)
		return nil
	},
}

var casesPaymentLinkCmd = &cobra.Command{
	Use:   "payment-link <case-id>",
	Short: "Generate a payment link for a case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		link, err := client.PaymentLink(cmd.Context(), args[0])
		if err != nil {
			return ux.FormatError(err, "generating payment link")
		}

		fmt.Println(link)
		return nil
	},
}

func init() {
	addOutputFlag(casesListCmd)
	addOutputFlag(casesShowCmd)
	addOutputFlag(casesTrailsCmd)

	casesTrailCmd.Flags().Bool("contacted", false, "customer was reached")
	casesTrailCmd.Flags().String("payment-date", "", "promised payment date (YYYY-MM-DD)")
	casesTrailCmd.Flags().String("remarks", "", "free-form remarks")

	casesCmd.AddCommand(casesListCmd)
	casesCmd.AddCommand(casesShowCmd)
	casesCmd.AddCommand(casesTrailsCmd)
	casesCmd.AddCommand(casesTrailCmd)
	casesCmd.AddCommand(casesPaymentLinkCmd)
	rootCmd.AddCommand(casesCmd)
}
