package tui

// NavItem is one sidebar entry gated by a backend permission
type NavItem struct {
	Permission string
	Label      string
	Icon       string
	View       ViewType
}

// navCatalog is the full navigation surface. Entries with an empty
// permission are always visible; the rest require the named permission
// to be present in the authenticated user's permission set.
var navCatalog = []NavItem{
	{Permission: "", Label: "Home", Icon: "🏠", View: ViewHome},
	{Permission: "view_cases", Label: "My Cases", Icon: "📋", View: ViewCases},
	{Permission: "upload_cases", Label: "Case Onboarding", Icon: "📤", View: ViewOnboarding},
	{Permission: "view_agencies", Label: "Agencies", Icon: "🏢", View: ViewAgencies},
	{Permission: "view_agency_user_mapping", Label: "Agency Users", Icon: "🔗", View: ViewMapping},
	{Permission: "view_agency_users", Label: "Agency Cases", Icon: "💼", View: ViewAgencyCases},
	{Permission: "view_users", Label: "User Management", Icon: "👥", View: ViewUsers},
}

// NavForPermissions filters the navigation catalog down to the entries
// the given permission set unlocks. Unknown permissions are ignored.
func NavForPermissions(permissions []string) []NavItem {
	allowed := make(map[string]bool, len(permissions))
	for _, p := range permissions {
		allowed[p] = true
	}

	var items []NavItem
	for _, item := range navCatalog {
		if item.Permission == "" || allowed[item.Permission] {
			items = append(items, item)
		}
	}
	return items
}
