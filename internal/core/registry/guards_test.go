package registry

import "testing"

func TestCanInsertDepartment(t *testing.T) {
	tests := []struct {
		name    string
		dept    string
		allowed bool
	}{
		{"simple name", "Design", true},
		{"name with space", "Panel Assembly", true},
		{"empty name", "", false},
		{"only spaces", "   ", false},
		{"digits rejected", "Bay 2", false},
		{"punctuation rejected", "Paint-Shop", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanInsertDepartment(InsertDepartmentContext{Name: tt.dept})
			if result.Allowed != tt.allowed {
				t.Errorf("CanInsertDepartment(%q) allowed = %v, want %v (reason: %s)",
					tt.dept, result.Allowed, tt.allowed, result.Reason)
			}
			if !tt.allowed && result.Error() == nil {
				t.Error("expected non-nil error for disallowed guard")
			}
		})
	}
}
