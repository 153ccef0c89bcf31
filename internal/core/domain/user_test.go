package domain

import "testing"

func TestRolesIntersect(t *testing.T) {
	cases := []struct {
		name     string
		held     []string
		required []string
		want     bool
	}{
		{"shared role", []string{RoleReader}, []string{RoleReader}, true},
		{"one of several", []string{RoleReader, RoleWriter}, []string{RoleWriter}, true},
		{"disjoint", []string{RoleReader}, []string{RoleWriter}, false},
		{"empty required admits", nil, nil, true},
		{"empty held rejected", nil, []string{RoleReader}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RolesIntersect(tc.held, tc.required); got != tc.want {
				t.Fatalf("RolesIntersect(%v, %v) = %v, want %v", tc.held, tc.required, got, tc.want)
			}
		})
	}
}

func TestUserHasAnyRole(t *testing.T) {
	u := &User{Username: "alice", Roles: []string{RoleReader}}
	if !u.HasAnyRole(RoleReader, RoleWriter) {
		t.Fatalf("expected reader to satisfy reader|writer")
	}
	if u.HasAnyRole(RoleWriter) {
		t.Fatalf("reader should not satisfy writer")
	}
}
