package domain

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		want Role
		ok   bool
	}{
		{"user", RoleUser, true},
		{"USER", RoleUser, true},
		{"mod", RoleModerator, true},
		{"moderator", RoleModerator, true},
		{"admin", RoleAdmin, true},
		{" Admin ", RoleAdmin, true},
		{"superuser", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("ParseRole(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveRoles_DefaultsToUser(t *testing.T) {
	roles := ResolveRoles(nil)
	if len(roles) != 1 || roles[0] != RoleUser {
		t.Fatalf("expected {USER}, got %v", roles)
	}
}

func TestResolveRoles_UnknownFallsBackToUser(t *testing.T) {
	roles := ResolveRoles([]string{"wizard"})
	if len(roles) != 1 || roles[0] != RoleUser {
		t.Fatalf("expected {USER}, got %v", roles)
	}
}

func TestResolveRoles_Deduplicates(t *testing.T) {
	roles := ResolveRoles([]string{"admin", "ADMIN", "bogus", "user"})
	if len(roles) != 2 || roles[0] != RoleAdmin || roles[1] != RoleUser {
		t.Fatalf("expected {ADMIN, USER}, got %v", roles)
	}
}

func TestPrincipal_HasAnyRole(t *testing.T) {
	p := Principal{Roles: []Role{RoleUser}}
	if p.HasAnyRole(RoleAdmin) {
		t.Fatalf("USER must not satisfy an ADMIN requirement")
	}
	if !p.HasAnyRole(RoleAdmin, RoleUser) {
		t.Fatalf("OR semantics: USER must satisfy {ADMIN, USER}")
	}

	elevated := Principal{Roles: []Role{RoleUser, RoleAdmin}}
	if !elevated.HasAnyRole(RoleAdmin) {
		t.Fatalf("USER+ADMIN must satisfy an ADMIN requirement")
	}
}
