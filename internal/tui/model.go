package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/finovahq/agentdesk/internal/platform"
)

// ViewType represents the current view being displayed
type ViewType int

// View type constants
const (
	// ViewLogin is the credential prompt shown before a session exists
	ViewLogin ViewType = iota
	// ViewHome is the landing view with earnings and navigation
	ViewHome
	// ViewCases is the assigned-case list
	ViewCases
	// ViewCaseDetail is a single case with its trails and payment link
	ViewCaseDetail
	// ViewOnboarding is the bulk import and assignment view
	ViewOnboarding
	// ViewAgencies is the agency management view
	ViewAgencies
	// ViewMapping maps users into agencies
	ViewMapping
	// ViewAgencyCases distributes agency cases to agents
	ViewAgencyCases
	// ViewUsers is the user and role management view
	ViewUsers
	// ViewHelp is the help screen
	ViewHelp
)

// Model represents the dashboard TUI application state
type Model struct {
	client *platform.Client

	// Navigation state
	currentView ViewType
	prevView    ViewType
	permissions []string
	nav         []NavItem
	navIndex    int

	// UI state
	width     int
	height    int
	ready     bool
	quitting  bool
	loading   bool
	status    string
	lastError string

	// Login state
	loginForm *huh.Form

	// Case list state
	caseTable     table.Model
	cases         []platform.Case
	totalEarnings float64

	// Case detail state
	detail      *platform.CaseDetail
	detailID    string
	trails      []platform.Trail
	paymentLink string
	trailForm   *huh.Form

	// Agency state
	agencies      []platform.Agency
	agencyIndex   int
	agencyForm    *huh.Form
	confirmDelete bool

	// Agency-user mapping state
	unassignedUsers []platform.User
	userIndex       int
	mapAgencyIndex  int
	mapRoleIndex    int

	// Onboarding state
	unassignedCases  []platform.Case
	selectedCases    map[string]bool
	onboardIndex     int
	onboardAgencyIdx int
	uploadForm       *huh.Form

	// Agency case distribution state
	agencyCases    []platform.Case
	agents         []platform.AgencyUser
	acCaseIndex    int
	acAgentIndex   int
	acAgentFocused bool

	// User management state
	users        []platform.User
	roles        []platform.Role
	userRowIndex int
	userForm     *huh.Form
	roleForm     *huh.Form

	styles Styles
}

// Styles contains lipgloss styles for the TUI
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Muted       lipgloss.Style
	Border      lipgloss.Style
	Highlighted lipgloss.Style
	Help        lipgloss.Style
	Key         lipgloss.Style
	KeyDesc     lipgloss.Style
}

// NewModel creates a new dashboard model. When authenticated is false the
// model starts at the login view, otherwise it loads permissions and lands
// on home.
func NewModel(client *platform.Client, authenticated bool) Model {
	m := Model{
		client:        client,
		currentView:   ViewHome,
		selectedCases: make(map[string]bool),
		styles:        DefaultStyles(),
	}
	if !authenticated {
		m.currentView = ViewLogin
		m.loginForm = newLoginForm()
	}
	return m
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginBottom(1),
		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")), // Cyan
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")), // Yellow
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")). // Purple
			Padding(1, 2),
		Highlighted: lipgloss.NewStyle().
			Background(lipgloss.Color("63")).  // Purple
			Foreground(lipgloss.Color("230")). // Light yellow
			Bold(true).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginTop(1),
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")), // Purple
		KeyDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
	}
}

// Init initializes the TUI model (required by Bubble Tea)
func (m Model) Init() tea.Cmd {
	if m.currentView == ViewLogin {
		return m.loginForm.Init()
	}
	return m.loadPermissions()
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case ErrMsg:
		m.loading = false
		m.lastError = msg.Err.Error()
		if m.currentView == ViewLogin {
			// A completed form would resubmit the same credentials on the
			// next keypress, so hand the user a fresh one.
			m.loginForm = newLoginForm()
			return m, m.loginForm.Init()
		}
		return m, nil

	case LoggedInMsg:
		m.loginForm = nil
		m.lastError = ""
		m.status = "Logged in"
		m.currentView = ViewHome
		return m, m.loadPermissions()

	case LoggedOutMsg:
		m.permissions = nil
		m.nav = nil
		m.status = ""
		m.lastError = ""
		m.loginForm = newLoginForm()
		m.currentView = ViewLogin
		return m, m.loginForm.Init()

	case PermissionsLoadedMsg:
		m.permissions = msg.Permissions
		m.nav = NavForPermissions(msg.Permissions)
		// /cases is gated server-side, so only preload for users who can see it.
		if m.hasPermission("view_cases") {
			return m, m.loadCases()
		}
		return m, nil

	case CasesLoadedMsg:
		m.loading = false
		m.cases = msg.Result.Cases
		m.totalEarnings = msg.Result.TotalEarnings
		m.caseTable = newCaseTable(msg.Result.Cases, m.tableHeight())
		return m, nil

	case CaseDetailLoadedMsg:
		m.loading = false
		m.detail = &msg.Detail
		m.trails = msg.Trails
		m.paymentLink = ""
		m.currentView = ViewCaseDetail
		return m, nil

	case PaymentLinkMsg:
		m.loading = false
		m.paymentLink = msg.Link
		return m, nil

	case TrailAddedMsg:
		m.status = "Trail recorded"
		return m, m.loadCaseDetail(m.detailID)

	case AgenciesLoadedMsg:
		m.loading = false
		m.agencies = msg.Agencies
		if m.agencyIndex >= len(m.agencies) {
			m.agencyIndex = 0
		}
		return m, nil

	case AgencyMutatedMsg:
		m.status = msg.Status
		m.confirmDelete = false
		return m, m.loadAgencies()

	case MappingLoadedMsg:
		m.loading = false
		m.agencies = msg.Agencies
		m.unassignedUsers = msg.Users
		m.userIndex = 0
		m.mapAgencyIndex = 0
		return m, nil

	case UserMappedMsg:
		m.status = msg.Status
		return m, m.loadMapping()

	case OnboardingLoadedMsg:
		m.loading = false
		m.unassignedCases = msg.Cases
		m.agencies = msg.Agencies
		m.selectedCases = make(map[string]bool)
		m.onboardIndex = 0
		return m, nil

	case UploadDoneMsg:
		m.uploadForm = nil
		m.status = msg.Result.Message
		return m, m.loadOnboarding()

	case CasesAssignedMsg:
		m.status = msg.Status
		return m, m.loadOnboarding()

	case AgencyCasesLoadedMsg:
		m.loading = false
		m.agencyCases = msg.Cases
		m.agents = msg.Agents
		m.acCaseIndex = 0
		m.acAgentIndex = 0
		return m, nil

	case CaseDistributedMsg:
		m.status = msg.Status
		return m, m.loadAgencyCases()

	case UsersLoadedMsg:
		m.loading = false
		m.users = msg.Users
		m.roles = msg.Roles
		if m.userRowIndex >= len(m.users) {
			m.userRowIndex = 0
		}
		return m, nil

	case UserMutatedMsg:
		m.status = msg.Status
		return m, m.loadUsers()
	}

	// Active forms swallow input until completed or aborted
	if form, handled := m.activeForm(); handled {
		return m.updateForm(form, msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(key)
	}

	if m.currentView == ViewCases {
		var cmd tea.Cmd
		m.caseTable, cmd = m.caseTable.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the TUI (required by Bubble Tea)
func (m Model) View() string {
	if m.quitting {
		return "Goodbye.\n"
	}

	switch m.currentView {
	case ViewLogin:
		return m.renderLogin()
	case ViewHome:
		return m.renderHome()
	case ViewCases:
		return m.renderCases()
	case ViewCaseDetail:
		return m.renderCaseDetail()
	case ViewOnboarding:
		return m.renderOnboarding()
	case ViewAgencies:
		return m.renderAgencies()
	case ViewMapping:
		return m.renderMapping()
	case ViewAgencyCases:
		return m.renderAgencyCases()
	case ViewUsers:
		return m.renderUsers()
	case ViewHelp:
		return m.renderHelp()
	default:
		return m.renderHome()
	}
}

// activeForm returns the form currently capturing input, if any
func (m Model) activeForm() (*huh.Form, bool) {
	switch {
	case m.currentView == ViewLogin && m.loginForm != nil:
		return m.loginForm, true
	case m.trailForm != nil:
		return m.trailForm, true
	case m.agencyForm != nil:
		return m.agencyForm, true
	case m.uploadForm != nil:
		return m.uploadForm, true
	case m.userForm != nil:
		return m.userForm, true
	case m.roleForm != nil:
		return m.roleForm, true
	}
	return nil, false
}

// handleKeyPress handles keyboard input outside of forms
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Delete confirmation intercepts y/n on the agency view
	if m.confirmDelete && m.currentView == ViewAgencies {
		switch key {
		case "y", "enter":
			m.confirmDelete = false
			if m.agencyIndex < len(m.agencies) {
				return m, m.deleteAgency(m.agencies[m.agencyIndex].ID)
			}
		case "n", "esc":
			m.confirmDelete = false
		}
		return m, nil
	}

	switch key {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.prevView
		} else {
			m.prevView = m.currentView
			m.currentView = ViewHelp
		}
		return m, nil

	case "tab":
		if m.currentView == ViewAgencyCases {
			m.acAgentFocused = !m.acAgentFocused
			return m, nil
		}
		if len(m.nav) > 0 {
			m.navIndex = (m.navIndex + 1) % len(m.nav)
		}
		return m, nil

	case "shift+tab":
		if len(m.nav) > 0 {
			m.navIndex = (m.navIndex - 1 + len(m.nav)) % len(m.nav)
		}
		return m, nil

	case "esc":
		if m.currentView == ViewCaseDetail {
			m.currentView = ViewCases
			return m, nil
		}
		m.currentView = ViewHome
		return m, nil
	}

	switch m.currentView {
	case ViewHome:
		return m.handleHomeKeys(key)
	case ViewCases:
		return m.handleCasesKeys(msg)
	case ViewCaseDetail:
		return m.handleDetailKeys(key)
	case ViewAgencies:
		return m.handleAgenciesKeys(key)
	case ViewMapping:
		return m.handleMappingKeys(key)
	case ViewOnboarding:
		return m.handleOnboardingKeys(key)
	case ViewAgencyCases:
		return m.handleAgencyCasesKeys(key)
	case ViewUsers:
		return m.handleUsersKeys(key)
	}

	return m, nil
}

func (m Model) handleHomeKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter":
		if m.navIndex < len(m.nav) {
			return m.openView(m.nav[m.navIndex].View)
		}
	case "l":
		return m, m.logout()
	}
	return m, nil
}

func (m Model) handleCasesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		row := m.caseTable.SelectedRow()
		if len(row) > 0 {
			m.detailID = row[0]
			m.loading = true
			return m, m.loadCaseDetail(row[0])
		}
		return m, nil
	case "r":
		m.loading = true
		return m, m.loadCases()
	}
	var cmd tea.Cmd
	m.caseTable, cmd = m.caseTable.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "t":
		m.trailForm = newTrailForm()
		return m, m.trailForm.Init()
	case "p":
		m.loading = true
		return m, m.loadPaymentLink(m.detailID)
	}
	return m, nil
}

func (m Model) handleAgenciesKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.agencyIndex > 0 {
			m.agencyIndex--
		}
	case "down", "j":
		if m.agencyIndex < len(m.agencies)-1 {
			m.agencyIndex++
		}
	case "n":
		m.agencyForm = newAgencyForm()
		return m, m.agencyForm.Init()
	case "d":
		if len(m.agencies) > 0 {
			m.confirmDelete = true
		}
	case "r":
		m.loading = true
		return m, m.loadAgencies()
	}
	return m, nil
}

func (m Model) handleMappingKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.userIndex > 0 {
			m.userIndex--
		}
	case "down", "j":
		if m.userIndex < len(m.unassignedUsers)-1 {
			m.userIndex++
		}
	case "left", "h":
		if m.mapAgencyIndex > 0 {
			m.mapAgencyIndex--
		}
	case "right":
		if m.mapAgencyIndex < len(m.agencies)-1 {
			m.mapAgencyIndex++
		}
	case "s":
		m.mapRoleIndex = (m.mapRoleIndex + 1) % len(platform.AgencyRoles)
	case "enter":
		if m.userIndex < len(m.unassignedUsers) && m.mapAgencyIndex < len(m.agencies) {
			return m, m.assignUserToAgency(
				m.unassignedUsers[m.userIndex].ID,
				m.agencies[m.mapAgencyIndex].ID,
				platform.AgencyRoles[m.mapRoleIndex],
			)
		}
	case "r":
		m.loading = true
		return m, m.loadMapping()
	}
	return m, nil
}

func (m Model) handleOnboardingKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.onboardIndex > 0 {
			m.onboardIndex--
		}
	case "down", "j":
		if m.onboardIndex < len(m.unassignedCases)-1 {
			m.onboardIndex++
		}
	case " ":
		if m.onboardIndex < len(m.unassignedCases) {
			id := m.unassignedCases[m.onboardIndex].ID
			m.selectedCases[id] = !m.selectedCases[id]
		}
	case "left", "h":
		if m.onboardAgencyIdx > 0 {
			m.onboardAgencyIdx--
		}
	case "right":
		if m.onboardAgencyIdx < len(m.agencies)-1 {
			m.onboardAgencyIdx++
		}
	case "u":
		m.uploadForm = newUploadForm()
		return m, m.uploadForm.Init()
	case "a":
		ids := m.selectedCaseIDs()
		if len(ids) > 0 && m.onboardAgencyIdx < len(m.agencies) {
			return m, m.assignCases(m.agencies[m.onboardAgencyIdx].ID, ids)
		}
	case "r":
		m.loading = true
		return m, m.loadOnboarding()
	}
	return m, nil
}

func (m Model) handleAgencyCasesKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.acAgentFocused {
			if m.acAgentIndex > 0 {
				m.acAgentIndex--
			}
		} else if m.acCaseIndex > 0 {
			m.acCaseIndex--
		}
	case "down", "j":
		if m.acAgentFocused {
			if m.acAgentIndex < len(m.agents)-1 {
				m.acAgentIndex++
			}
		} else if m.acCaseIndex < len(m.agencyCases)-1 {
			m.acCaseIndex++
		}
	case "enter":
		if m.acCaseIndex < len(m.agencyCases) && m.acAgentIndex < len(m.agents) {
			return m, m.assignCaseToUser(
				m.agencyCases[m.acCaseIndex].ID,
				m.agents[m.acAgentIndex].UserID,
			)
		}
	case "r":
		m.loading = true
		return m, m.loadAgencyCases()
	}
	return m, nil
}

func (m Model) handleUsersKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.userRowIndex > 0 {
			m.userRowIndex--
		}
	case "down", "j":
		if m.userRowIndex < len(m.users)-1 {
			m.userRowIndex++
		}
	case "n":
		m.userForm = newUserForm()
		return m, m.userForm.Init()
	case "a":
		if m.userRowIndex < len(m.users) {
			m.roleForm = newRoleForm(m.roles, m.users[m.userRowIndex].RoleList)
			return m, m.roleForm.Init()
		}
	case "r":
		m.loading = true
		return m, m.loadUsers()
	}
	return m, nil
}

// openView switches to a navigation target and kicks off its data load
func (m Model) openView(view ViewType) (tea.Model, tea.Cmd) {
	m.currentView = view
	m.lastError = ""
	m.status = ""
	m.loading = true

	switch view {
	case ViewCases:
		return m, m.loadCases()
	case ViewOnboarding:
		return m, m.loadOnboarding()
	case ViewAgencies:
		return m, m.loadAgencies()
	case ViewMapping:
		return m, m.loadMapping()
	case ViewAgencyCases:
		return m, m.loadAgencyCases()
	case ViewUsers:
		return m, m.loadUsers()
	default:
		m.loading = false
		m.currentView = ViewHome
		return m, nil
	}
}

func (m Model) hasPermission(perm string) bool {
	for _, p := range m.permissions {
		if p == perm {
			return true
		}
	}
	return false
}

func (m Model) selectedCaseIDs() []string {
	var ids []string
	for _, c := range m.unassignedCases {
		if m.selectedCases[c.ID] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func (m Model) tableHeight() int {
	if m.height > 12 {
		return m.height - 10
	}
	return 10
}
