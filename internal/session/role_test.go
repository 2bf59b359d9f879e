package session

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"ALUNO", RoleTrainee},
		{"aluno", RoleTrainee},
		{"  Aluno  ", RoleTrainee},
		{"TRAINEE", RoleTrainee},
		{"PERSONAL", RoleTrainer},
		{"personal", RoleTrainer},
		{"trainer", RoleTrainer},
		{"", RoleNone},
		{"ADMIN", RoleNone},
		{"  ", RoleNone},
	}

	for _, tc := range cases {
		if got := ParseRole(tc.in); got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleTrainee.Valid() || !RoleTrainer.Valid() {
		t.Error("expected known roles to be valid")
	}
	if RoleNone.Valid() {
		t.Error("expected RoleNone to be invalid")
	}
	if Role("ADMIN").Valid() {
		t.Error("expected unknown role to be invalid")
	}
}
