package tui

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/finovahq/agentdesk/internal/errors"
	"github.com/finovahq/agentdesk/internal/platform"
)

// Messages carrying API results back into the model

// ErrMsg carries any failed API call; views degrade to an error banner
type ErrMsg struct {
	Err error
}

// LoggedInMsg indicates a successful login
type LoggedInMsg struct{}

// LoggedOutMsg indicates the session was cleared
type LoggedOutMsg struct{}

// PermissionsLoadedMsg carries the caller's permission set
type PermissionsLoadedMsg struct {
	Permissions []string
}

// CasesLoadedMsg carries the assigned-case list and earnings
type CasesLoadedMsg struct {
	Result platform.CasesResult
}

// CaseDetailLoadedMsg carries one case with its trails
type CaseDetailLoadedMsg struct {
	Detail platform.CaseDetail
	Trails []platform.Trail
}

// PaymentLinkMsg carries a generated payment link
type PaymentLinkMsg struct {
	Link string
}

// TrailAddedMsg indicates a trail was recorded
type TrailAddedMsg struct {
	Trail platform.Trail
}

// AgenciesLoadedMsg carries the agency list
type AgenciesLoadedMsg struct {
	Agencies []platform.Agency
}

// AgencyMutatedMsg indicates an agency was created or deleted
type AgencyMutatedMsg struct {
	Status string
}

// MappingLoadedMsg carries agencies plus users awaiting a mapping
type MappingLoadedMsg struct {
	Agencies []platform.Agency
	Users    []platform.User
}

// UserMappedMsg indicates a user was mapped into an agency
type UserMappedMsg struct {
	Status string
}

// OnboardingLoadedMsg carries unassigned cases plus assignment targets
type OnboardingLoadedMsg struct {
	Cases    []platform.Case
	Agencies []platform.Agency
}

// UploadDoneMsg carries the outcome of a bulk import
type UploadDoneMsg struct {
	Result platform.UploadResult
}

// CasesAssignedMsg indicates a bulk assignment succeeded
type CasesAssignedMsg struct {
	Status string
}

// AgencyCasesLoadedMsg carries the caller's agency cases and agents
type AgencyCasesLoadedMsg struct {
	Cases  []platform.Case
	Agents []platform.AgencyUser
}

// CaseDistributedMsg indicates a case was handed to an agent
type CaseDistributedMsg struct {
	Status string
}

// UsersLoadedMsg carries the user list and role catalog
type UsersLoadedMsg struct {
	Users []platform.User
	Roles []platform.Role
}

// UserMutatedMsg indicates a user was created or had roles changed
type UserMutatedMsg struct {
	Status string
}

// Commands

func (m Model) login(username, password string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.client.Login(context.Background(), username, password); err != nil {
			return ErrMsg{Err: err}
		}
		return LoggedInMsg{}
	}
}

func (m Model) logout() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Logout(); err != nil {
			return ErrMsg{Err: err}
		}
		return LoggedOutMsg{}
	}
}

func (m Model) loadPermissions() tea.Cmd {
	return func() tea.Msg {
		permissions, err := m.client.MyPermissions(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return PermissionsLoadedMsg{Permissions: permissions}
	}
}

func (m Model) loadCases() tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.Cases(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return CasesLoadedMsg{Result: *result}
	}
}

func (m Model) loadCaseDetail(caseID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		detail, err := m.client.CaseDetails(ctx, caseID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		trails, err := m.client.Trails(ctx, caseID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return CaseDetailLoadedMsg{Detail: *detail, Trails: trails}
	}
}

func (m Model) loadPaymentLink(caseID string) tea.Cmd {
	return func() tea.Msg {
		link, err := m.client.PaymentLink(context.Background(), caseID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return PaymentLinkMsg{Link: link}
	}
}

func (m Model) addTrail(caseID string, input platform.TrailInput) tea.Cmd {
	return func() tea.Msg {
		trail, err := m.client.AddTrail(context.Background(), caseID, input)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return TrailAddedMsg{Trail: *trail}
	}
}

func (m Model) loadAgencies() tea.Cmd {
	return func() tea.Msg {
		agencies, err := m.client.Agencies(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return AgenciesLoadedMsg{Agencies: agencies}
	}
}

func (m Model) createAgency(req platform.CreateAgencyRequest) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.client.CreateAgency(context.Background(), req); err != nil {
			return ErrMsg{Err: err}
		}
		return AgencyMutatedMsg{Status: "Agency created"}
	}
}

func (m Model) deleteAgency(agencyID string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.DeleteAgency(context.Background(), agencyID); err != nil {
			return ErrMsg{Err: err}
		}
		return AgencyMutatedMsg{Status: "Agency deleted"}
	}
}

func (m Model) loadMapping() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		agencies, err := m.client.Agencies(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		users, err := m.client.UnassignedUsers(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return MappingLoadedMsg{Agencies: agencies, Users: users}
	}
}

func (m Model) assignUserToAgency(userID, agencyID, role string) tea.Cmd {
	return func() tea.Msg {
		req := platform.AssignUserToAgencyRequest{
			UserID:     userID,
			AgencyID:   agencyID,
			AgencyRole: role,
		}
		if err := m.client.AssignUserToAgency(context.Background(), req); err != nil {
			return ErrMsg{Err: err}
		}
		return UserMappedMsg{Status: "User mapped to agency"}
	}
}

func (m Model) loadOnboarding() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		cases, err := m.client.UnassignedCases(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		agencies, err := m.client.Agencies(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return OnboardingLoadedMsg{Cases: cases, Agencies: agencies}
	}
}

func (m Model) uploadCases(path string) tea.Cmd {
	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return ErrMsg{Err: errors.NewUploadOpenError(path, err)}
		}
		defer file.Close()

		result, err := m.client.UploadCases(context.Background(), filepath.Base(path), file)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return UploadDoneMsg{Result: *result}
	}
}

func (m Model) assignCases(agencyID string, caseIDs []string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.AssignCasesToAgency(context.Background(), agencyID, caseIDs); err != nil {
			return ErrMsg{Err: err}
		}
		return CasesAssignedMsg{Status: "Cases assigned to agency"}
	}
}

func (m Model) loadAgencyCases() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		cases, err := m.client.AgencyCases(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		agents, err := m.client.MyAgencyUsers(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return AgencyCasesLoadedMsg{Cases: cases, Agents: agents}
	}
}

func (m Model) assignCaseToUser(caseID, userID string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.AssignCaseToUser(context.Background(), caseID, userID); err != nil {
			return ErrMsg{Err: err}
		}
		return CaseDistributedMsg{Status: "Case assigned to agent"}
	}
}

func (m Model) loadUsers() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		users, err := m.client.Users(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		roles, err := m.client.Roles(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return UsersLoadedMsg{Users: users, Roles: roles}
	}
}

func (m Model) createUser(username, password string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.CreateUser(context.Background(), username, password); err != nil {
			return ErrMsg{Err: err}
		}
		return UserMutatedMsg{Status: "User created"}
	}
}

func (m Model) assignRoles(userID string, roles []string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.AssignRolesToUser(context.Background(), userID, roles); err != nil {
			return ErrMsg{Err: err}
		}
		return UserMutatedMsg{Status: "Roles updated"}
	}
}
