package models

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want string
	}{
		{"full name", &User{FirstName: "Maya", LastName: "Reyes", Email: "m@x.com"}, "Maya Reyes"},
		{"first name only", &User{FirstName: "Maya"}, "Maya"},
		{"last name only", &User{LastName: "Reyes"}, "Reyes"},
		{"email fallback", &User{Email: "m@x.com"}, "m@x.com"},
		{"whitespace names fall back", &User{FirstName: "  ", LastName: " ", Email: "m@x.com"}, "m@x.com"},
		{"nothing usable", &User{}, UnknownUserName},
		{"nil user", nil, UnknownUserName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
