package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/finovahq/agentdesk/internal/platform"
)

// newLoginForm builds the credential prompt shown before a session exists
func newLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Validate(requireField("username")),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(requireField("password")),
		).
			Title("Sign in").
			Description("Enter to submit • Ctrl+C to quit"),
	)
}

// newTrailForm builds the contact-trail entry dialog
func newTrailForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("contacted").
				Title("Customer contacted?").
				Affirmative("Yes").
				Negative("No"),
			huh.NewInput().
				Key("payment_date").
				Title("Promised payment date").
				Description("YYYY-MM-DD, leave empty if none"),
			huh.NewText().
				Key("remarks").
				Title("Remarks"),
		).Title("Record trail"),
	)
}

// newAgencyForm builds the agency creation dialog. Phone and email get the
// same lightweight checks the create endpoint enforces.
func newAgencyForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("agency_name").
				Title("Agency name").
				Validate(requireField("agency name")),
			huh.NewInput().
				Key("address").
				Title("Address"),
			huh.NewInput().
				Key("phone").
				Title("Phone").
				Validate(platform.ValidatePhone),
			huh.NewInput().
				Key("email").
				Title("Email").
				Validate(platform.ValidateEmail),
			huh.NewSelect[string]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("active", "active"),
					huh.NewOption("inactive", "inactive"),
				),
		).Title("Create agency"),
	)
}

// newUploadForm asks for the CSV path for a bulk case import
func newUploadForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("CSV file path").
				Validate(requireField("file path")),
		).Title("Import cases"),
	)
}

// newUserForm builds the user creation dialog
func newUserForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Validate(requireField("username")),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(requireField("password")),
		).Title("Create user"),
	)
}

// newRoleForm builds the role assignment dialog, pre-selecting the roles
// the user already holds
func newRoleForm(catalog []platform.Role, current []string) *huh.Form {
	held := make(map[string]bool, len(current))
	for _, r := range current {
		held[r] = true
	}

	var options []huh.Option[string]
	for _, role := range catalog {
		options = append(options, huh.NewOption(role.RoleName, role.RoleName).Selected(held[role.RoleName]))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key("roles").
				Title("Roles").
				Options(options...),
		).Title("Assign roles"),
	)
}

func requireField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// updateForm routes a message into the active form and fires the matching
// API call once the form completes. Aborted forms are discarded.
func (m Model) updateForm(form *huh.Form, msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := form.Update(msg)
	f, ok := updated.(*huh.Form)
	if !ok {
		return m, cmd
	}

	switch form {
	case m.loginForm:
		m.loginForm = f
		if f.State == huh.StateCompleted {
			username := f.GetString("username")
			password := f.GetString("password")
			m.loginForm = nil
			return m, m.login(username, password)
		}

	case m.trailForm:
		m.trailForm = f
		if f.State == huh.StateCompleted {
			input := platform.TrailInput{
				Contacted:   f.GetBool("contacted"),
				PaymentDate: f.GetString("payment_date"),
				Remarks:     f.GetString("remarks"),
			}
			m.trailForm = nil
			return m, m.addTrail(m.detailID, input)
		}
		if f.State == huh.StateAborted {
			m.trailForm = nil
		}

	case m.agencyForm:
		m.agencyForm = f
		if f.State == huh.StateCompleted {
			req := platform.CreateAgencyRequest{
				AgencyName: f.GetString("agency_name"),
				Address:    f.GetString("address"),
				Phone:      f.GetString("phone"),
				Email:      f.GetString("email"),
				Status:     f.GetString("status"),
			}
			m.agencyForm = nil
			return m, m.createAgency(req)
		}
		if f.State == huh.StateAborted {
			m.agencyForm = nil
		}

	case m.uploadForm:
		m.uploadForm = f
		if f.State == huh.StateCompleted {
			path := f.GetString("path")
			m.uploadForm = nil
			return m, m.uploadCases(path)
		}
		if f.State == huh.StateAborted {
			m.uploadForm = nil
		}

	case m.userForm:
		m.userForm = f
		if f.State == huh.StateCompleted {
			username := f.GetString("username")
			password := f.GetString("password")
			m.userForm = nil
			return m, m.createUser(username, password)
		}
		if f.State == huh.StateAborted {
			m.userForm = nil
		}

	case m.roleForm:
		m.roleForm = f
		if f.State == huh.StateCompleted {
			roles, _ := f.Get("roles").([]string)
			m.roleForm = nil
			if m.userRowIndex < len(m.users) {
				return m, m.assignRoles(m.users[m.userRowIndex].ID, roles)
			}
		}
		if f.State == huh.StateAborted {
			m.roleForm = nil
		}
	}

	return m, cmd
}

// newCaseTable builds the case list table
func newCaseTable(cases []platform.Case, height int) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Loan", Width: 14},
		{Title: "Status", Width: 10},
		{Title: "DPD", Width: 5},
		{Title: "Bucket", Width: 8},
		{Title: "EMI", Width: 10},
		{Title: "Principal", Width: 12},
	}

	rows := make([]table.Row, 0, len(cases))
	for _, c := range cases {
		rows = append(rows, table.Row{
			c.ID,
			c.LoanID,
			c.CaseStatus,
			fmt.Sprintf("%d", c.DPD),
			c.DPDBucket,
			fmt.Sprintf("%.2f", c.EMIAmount),
			fmt.Sprintf("%.2f", c.PrincipalOutstanding),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Background(lipgloss.Color("63")).
		Foreground(lipgloss.Color("230")).
		Bold(true)
	t.SetStyles(s)

	return t
}
