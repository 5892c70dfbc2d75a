package tui

import "testing"

// TestNavForPermissionsAlwaysIncludesHome tests the permission-free entry
func TestNavForPermissionsAlwaysIncludesHome(t *testing.T) {
	items := NavForPermissions(nil)

	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}

	if items[0].Label != "Home" {
		t.Errorf("Expected 'Home', got '%s'", items[0].Label)
	}
}

// TestNavForPermissionsFilters tests permission gating
func TestNavForPermissionsFilters(t *testing.T) {
	items := NavForPermissions([]string{"view_cases", "view_trails", "generate_payment_link"})

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	if items[1].View != ViewCases {
		t.Errorf("Expected ViewCases, got %v", items[1].View)
	}
}

// TestNavForPermissionsIgnoresUnknown tests tolerance of new permissions
func TestNavForPermissionsIgnoresUnknown(t *testing.T) {
	items := NavForPermissions([]string{"view_my_permissions", "some_future_permission"})

	if len(items) != 1 {
		t.Errorf("Expected only Home, got %d items", len(items))
	}
}

// TestNavForPermissionsAdminSurface tests the full admin navigation
func TestNavForPermissionsAdminSurface(t *testing.T) {
	admin := []string{
		"view_users", "view_agencies", "view_agency_user_mapping",
		"upload_cases", "view_unassigned_cases", "assign_cases",
		"view_agency_users",
	}

	items := NavForPermissions(admin)

	// Everything except My Cases, which needs view_cases
	if len(items) != len(navCatalog)-1 {
		t.Errorf("Expected %d items, got %d", len(navCatalog)-1, len(items))
	}
}
