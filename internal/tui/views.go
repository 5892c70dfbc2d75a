package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/finovahq/agentdesk/internal/platform"
)

// renderLogin renders the credential prompt
func (m Model) renderLogin() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("💰 AgentDesk"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Loan collection dashboard"))
	b.WriteString("\n\n")

	if m.loginForm != nil {
		b.WriteString(m.loginForm.View())
	}

	if m.lastError != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("✗ ") + m.lastError)
	}

	return b.String()
}

// renderHome renders the landing view with earnings and navigation
func (m Model) renderHome() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("💰 AgentDesk"))
	b.WriteString("\n\n")

	if m.totalEarnings > 0 {
		earnings := fmt.Sprintf("Total earnings: %s",
			m.styles.Success.Render(fmt.Sprintf("₹%.2f", m.totalEarnings)))
		b.WriteString(m.styles.Border.Render(earnings))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Subtitle.Render("Navigation"))
	b.WriteString("\n")
	for i, item := range m.nav {
		line := fmt.Sprintf("%s %s", item.Icon, item.Label)
		if i == m.navIndex {
			line = m.styles.Highlighted.Render(line)
		} else {
			line = m.styles.Muted.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.nav) == 0 {
		b.WriteString(m.styles.Muted.Render("Loading permissions..."))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter("tab next • enter open • l logout • q quit"))
	return b.String()
}

// renderCases renders the assigned-case table
func (m Model) renderCases() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("📋 My Cases"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading cases..."))
		return b.String()
	}

	if len(m.cases) == 0 {
		b.WriteString(m.styles.Muted.Render("No cases assigned"))
	} else {
		b.WriteString(m.caseTable.View())
	}

	b.WriteString(m.renderFooter("enter open • r refresh • esc home • q quit"))
	return b.String()
}

// renderCaseDetail renders a single case with trails and payment link
func (m Model) renderCaseDetail() string {
	var b strings.Builder

	if m.trailForm != nil {
		b.WriteString(m.styles.Title.Render("📝 Record Trail"))
		b.WriteString("\n\n")
		b.WriteString(m.trailForm.View())
		return b.String()
	}

	b.WriteString(m.styles.Title.Render("📄 Case Detail"))
	b.WriteString("\n")

	if m.detail == nil {
		b.WriteString(m.styles.Muted.Render("Loading case..."))
		return b.String()
	}

	d := m.detail
	fields := []string{
		m.labelled("Case", d.CaseID),
		m.labelled("Loan", d.LoanID),
		m.labelled("Agent", d.AgentName),
		m.labelled("Status", d.CaseStatus),
		m.labelled("DPD", fmt.Sprintf("%d (%s)", d.DPD, d.DPDBucket)),
		m.labelled("Loan amount", fmt.Sprintf("₹%.2f", d.LoanAmount)),
		m.labelled("Monthly EMI", fmt.Sprintf("₹%.2f", d.EMIMonthly)),
		m.labelled("EMIs paid", fmt.Sprintf("%d (%d pending)", d.EMIsPaidTillDate, d.EMIsPending)),
		m.labelled("Bounce charges", fmt.Sprintf("₹%.2f", d.BounceCharges)),
		m.labelled("Customer phone", d.CustomerPhone),
		m.labelled("Customer address", d.CustomerAddr),
	}
	b.WriteString(m.styles.Border.Render(strings.Join(fields, "\n")))
	b.WriteString("\n\n")

	if m.paymentLink != "" {
		b.WriteString(m.styles.Success.Render("🔗 Payment link: ") + m.paymentLink)
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Subtitle.Render("Trails"))
	b.WriteString("\n")
	if len(m.trails) == 0 {
		b.WriteString(m.styles.Muted.Render("No trails recorded"))
		b.WriteString("\n")
	}
	for _, trail := range m.trails {
		icon := m.styles.Muted.Render("○")
		if trail.Contacted {
			icon = m.styles.Success.Render("✓")
		}
		line := fmt.Sprintf("%s %s", icon, trail.Remarks)
		if trail.PaymentDate != "" {
			line += m.styles.Muted.Render(" (promised " + trail.PaymentDate + ")")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter("t add trail • p payment link • esc back"))
	return b.String()
}

// renderAgencies renders the agency management view
func (m Model) renderAgencies() string {
	var b strings.Builder

	if m.agencyForm != nil {
		b.WriteString(m.styles.Title.Render("🏢 Create Agency"))
		b.WriteString("\n\n")
		b.WriteString(m.agencyForm.View())
		return b.String()
	}

	b.WriteString(m.styles.Title.Render("🏢 Agencies"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading agencies..."))
		return b.String()
	}

	if len(m.agencies) == 0 {
		b.WriteString(m.styles.Muted.Render("No agencies registered"))
		b.WriteString("\n")
	}
	for i, agency := range m.agencies {
		status := m.styles.Success.Render(agency.Status)
		if agency.Status != "active" {
			status = m.styles.Warning.Render(agency.Status)
		}
		line := fmt.Sprintf("%s  %s  %s", agency.AgencyName, status, m.styles.Muted.Render(agency.Email))
		if i == m.agencyIndex {
			line = m.styles.Highlighted.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.confirmDelete && m.agencyIndex < len(m.agencies) {
		prompt := fmt.Sprintf("Delete %q? %s %s",
			m.agencies[m.agencyIndex].AgencyName,
			m.styles.Key.Render("[y]")+" yes",
			m.styles.Key.Render("[n]")+" no")
		b.WriteString("\n")
		b.WriteString(m.styles.Border.BorderForeground(lipgloss.Color("196")).Render(prompt))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter("n new • d delete • r refresh • esc home"))
	return b.String()
}

// renderMapping renders the agency-user mapping view
func (m Model) renderMapping() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("🔗 Agency User Mapping"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading..."))
		return b.String()
	}

	agency := "none"
	if m.mapAgencyIndex < len(m.agencies) {
		agency = m.agencies[m.mapAgencyIndex].AgencyName
	}
	role := platform.AgencyRoles[m.mapRoleIndex]
	target := fmt.Sprintf("Target: %s as %s",
		m.styles.Status.Render(agency), m.styles.Warning.Render(role))
	b.WriteString(target)
	b.WriteString("\n\n")

	b.WriteString(m.styles.Subtitle.Render("Unassigned users"))
	b.WriteString("\n")
	if len(m.unassignedUsers) == 0 {
		b.WriteString(m.styles.Muted.Render("Everyone is mapped"))
		b.WriteString("\n")
	}
	for i, user := range m.unassignedUsers {
		line := user.Username
		if user.Email != nil {
			line += m.styles.Muted.Render("  " + *user.Email)
		}
		if i == m.userIndex {
			line = m.styles.Highlighted.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter("↑↓ user • ←→ agency • s role • enter assign • esc home"))
	return b.String()
}

// renderOnboarding renders the bulk import and assignment view
func (m Model) renderOnboarding() string {
	var b strings.Builder

	if m.uploadForm != nil {
		b.WriteString(m.styles.Title.Render("📤 Import Cases"))
		b.WriteString("\n\n")
		b.WriteString(m.uploadForm.View())
		return b.String()
	}

	b.WriteString(m.styles.Title.Render("📤 Case Onboarding"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading unassigned cases..."))
		return b.String()
	}

	agency := "none"
	if m.onboardAgencyIdx < len(m.agencies) {
		agency = m.agencies[m.onboardAgencyIdx].AgencyName
	}
	b.WriteString(fmt.Sprintf("Assign to: %s  %s",
		m.styles.Status.Render(agency),
		m.styles.Muted.Render(fmt.Sprintf("(%d selected)", len(m.selectedCaseIDs())))))
	b.WriteString("\n\n")

	if len(m.unassignedCases) == 0 {
		b.WriteString(m.styles.Muted.Render("No unassigned cases — import a CSV with 'u'"))
		b.WriteString("\n")
	}
	for i, c := range m.unassignedCases {
		check := "[ ]"
		if m.selectedCases[c.ID] {
			check = m.styles.Success.Render("[x]")
		}
		line := fmt.Sprintf("%s %s  %s  %s", check, c.ID, c.LoanID,
			m.styles.Muted.Render(fmt.Sprintf("dpd %d", c.DPD)))
		if i == m.onboardIndex {
			line = m.styles.Highlighted.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter("space select • ←→ agency • a assign • u upload • esc home"))
	return b.String()
}

// renderAgencyCases renders the case distribution view
func (m Model) renderAgencyCases() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("💼 Agency Cases"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading agency cases..."))
		return b.String()
	}

	var casesPane strings.Builder
	casesPane.WriteString(m.styles.Subtitle.Render("Cases"))
	casesPane.WriteString("\n")
	if len(m.agencyCases) == 0 {
		casesPane.WriteString(m.styles.Muted.Render("No cases in agency"))
	}
	for i, c := range m.agencyCases {
		line := fmt.Sprintf("%s  %s", c.ID, c.LoanID)
		if i == m.acCaseIndex && !m.acAgentFocused {
			line = m.styles.Highlighted.Render(line)
		}
		casesPane.WriteString(line)
		casesPane.WriteString("\n")
	}

	var agentsPane strings.Builder
	agentsPane.WriteString(m.styles.Subtitle.Render("Agents"))
	agentsPane.WriteString("\n")
	if len(m.agents) == 0 {
		agentsPane.WriteString(m.styles.Muted.Render("No agents mapped"))
	}
	for i, agent := range m.agents {
		line := fmt.Sprintf("%s %s", agent.Username, m.styles.Muted.Render("("+agent.AgencyRole+")"))
		if i == m.acAgentIndex && m.acAgentFocused {
			line = m.styles.Highlighted.Render(line)
		}
		agentsPane.WriteString(line)
		agentsPane.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Border.Render(casesPane.String()),
		" ",
		m.styles.Border.Render(agentsPane.String())))

	b.WriteString(m.renderFooter("tab switch pane • enter assign • r refresh • esc home"))
	return b.String()
}

// renderUsers renders the user management view
func (m Model) renderUsers() string {
	var b strings.Builder

	if m.userForm != nil {
		b.WriteString(m.styles.Title.Render("👥 Create User"))
		b.WriteString("\n\n")
		b.WriteString(m.userForm.View())
		return b.String()
	}
	if m.roleForm != nil {
		b.WriteString(m.styles.Title.Render("👥 Assign Roles"))
		b.WriteString("\n\n")
		b.WriteString(m.roleForm.View())
		return b.String()
	}

	b.WriteString(m.styles.Title.Render("👥 User Management"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading users..."))
		return b.String()
	}

	if len(m.users) == 0 {
		b.WriteString(m.styles.Muted.Render("No users found"))
		b.WriteString("\n")
	}
	for i, user := range m.users {
		active := m.styles.Success.Render("active")
		if !user.IsActive {
			active = m.styles.Error.Render("inactive")
		}
		roles := strings.Join(user.RoleList, ", ")
		if roles == "" {
			roles = m.styles.Muted.Render("no roles")
		}
		line := fmt.Sprintf("%s  %s  %s", user.Username, active, roles)
		if i == m.userRowIndex {
			line = m.styles.Highlighted.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter("n new user • a assign roles • r refresh • esc home"))
	return b.String()
}

// renderHelp renders the help view
func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("❓ Help"))
	b.WriteString("\n\n")

	hotkeys := []struct {
		key  string
		desc string
	}{
		{"tab / shift+tab", "Cycle navigation entries"},
		{"enter", "Open the highlighted entry"},
		{"esc", "Back to home (or case list)"},
		{"r", "Refresh the current view"},
		{"l", "Log out (home view)"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
		{"Ctrl+C", "Force quit"},
	}

	for _, hk := range hotkeys {
		keyText := m.styles.Key.Render(fmt.Sprintf("%-18s", hk.key))
		b.WriteString(keyText + " " + m.styles.KeyDesc.Render(hk.desc))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Press ? or Esc to return"))
	return b.String()
}

// renderFooter renders the status line, error banner, and key hints
func (m Model) renderFooter(hints string) string {
	var b strings.Builder
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.Success.Render("✓ ") + m.status)
		b.WriteString("\n")
	}
	if m.lastError != "" {
		b.WriteString(m.styles.Error.Render("✗ ") + m.lastError)
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(hints))
	return b.String()
}

func (m Model) labelled(label, value string) string {
	return m.styles.Muted.Render(fmt.Sprintf("%-18s", label+":")) + value
}
