package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

// TestRootSubcommands tests that every top-level command is registered
func TestRootSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"auth":      false,
		"cases":     false,
		"agency":    false,
		"users":     false,
		"onboard":   false,
		"dashboard": false,
		"config":    false,
		"version":   false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found on root command", name)
		}
	}
}

// TestAuthSubcommands tests that all auth subcommands are registered
func TestAuthSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"login":  false,
		"logout": false,
		"status": false,
	}

	for _, cmd := range authCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in auth command", name)
		}
	}
}

// TestAuthLoginFlags tests that auth login has correct flags
func TestAuthLoginFlags(t *testing.T) {
	loginCmd := findSubcommand(t, authCmd, "login")

	if loginCmd.Flags().Lookup("username") == nil {
		t.Error("flag 'username' not found on auth login command")
	}
	if loginCmd.Flags().Lookup("password") == nil {
		t.Error("flag 'password' not found on auth login command")
	}
}

// TestCasesSubcommands tests the agent workflow surface
func TestCasesSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"list":         false,
		"show":         false,
		"trails":       false,
		"trail":        false,
		"payment-link": false,
	}

	for _, cmd := range casesCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in cases command", name)
		}
	}
}

// TestCasesTrailFlags tests the trail entry flags
func TestCasesTrailFlags(t *testing.T) {
	trailCmd := findSubcommand(t, casesCmd, "trail")

	for _, flag := range []string{"contacted", "payment-date", "remarks"} {
		if trailCmd.Flags().Lookup(flag) == nil {
			t.Errorf("flag '%s' not found on cases trail command", flag)
		}
	}
}

// TestAgencySubcommands tests the agency management surface
func TestAgencySubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"create":           false,
		"list":             false,
		"delete":           false,
		"users":            false,
		"assign-user":      false,
		"unassigned-users": false,
		"cases":            false,
		"agents":           false,
	}

	for _, cmd := range agencyCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in agency command", name)
		}
	}
}

// TestAgencyAssignUserFlags tests the mapping flags and role default
func TestAgencyAssignUserFlags(t *testing.T) {
	assignCmd := findSubcommand(t, agencyCmd, "assign-user")

	for _, flag := range []string{"user", "agency", "role", "manager"} {
		if assignCmd.Flags().Lookup(flag) == nil {
			t.Errorf("flag '%s' not found on agency assign-user command", flag)
		}
	}

	if got := assignCmd.Flags().Lookup("role").DefValue; got != "agent" {
		t.Errorf("expected role default 'agent', got '%s'", got)
	}
}

// TestUsersSubcommands tests the user management surface
func TestUsersSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"list":         false,
		"create":       false,
		"roles":        false,
		"assign-roles": false,
	}

	for _, cmd := range usersCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in users command", name)
		}
	}
}

// TestOnboardSubcommands tests the onboarding surface
func TestOnboardSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"upload":      false,
		"unassigned":  false,
		"assign":      false,
		"assign-user": false,
	}

	for _, cmd := range onboardCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in onboard command", name)
		}
	}
}

// TestConfigSubcommands tests the config surface
func TestConfigSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"view": false,
		"path": false,
		"set":  false,
	}

	for _, cmd := range configCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in config command", name)
		}
	}
}

func findSubcommand(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, cmd := range parent.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	t.Fatalf("%s subcommand not found", name)
	return nil
}
