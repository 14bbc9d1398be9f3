package model

import "testing"

func TestComputeCapabilities(t *testing.T) {
	owner := "alice"
	participants := []string{"bob"}

	tests := []struct {
		name       string
		login      string
		admin      bool
		wantStrong bool
		wantWeak   bool
	}{
		{name: "owner", login: "alice", wantStrong: true, wantWeak: true},
		{name: "participant", login: "bob", wantStrong: false, wantWeak: true},
		{name: "outsider", login: "carol", wantStrong: false, wantWeak: false},
		{name: "admin outsider", login: "carol", admin: true, wantStrong: true, wantWeak: true},
		{name: "admin without login", login: "", admin: true, wantStrong: true, wantWeak: true},
		{name: "anonymous", login: "", wantStrong: false, wantWeak: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := ComputeCapabilities(tt.login, tt.admin, owner, participants)
			if caps.Strong != tt.wantStrong {
				t.Errorf("Strong = %v, want %v", caps.Strong, tt.wantStrong)
			}
			if caps.Weak != tt.wantWeak {
				t.Errorf("Weak = %v, want %v", caps.Weak, tt.wantWeak)
			}
		})
	}
}
