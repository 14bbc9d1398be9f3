package model

import "testing"

func intPtr(n int) *int { return &n }

func TestEvalLinkState(t *testing.T) {
	linkedDB := &Database{ID: 7, WorkloadID: intPtr(42)}
	unlinkedDB := &Database{ID: 7}

	tests := []struct {
		name     string
		details  *WorkloadDetails
		personal *Database
		want     LinkState
	}{
		{
			name:    "nothing available",
			details: &WorkloadDetails{},
			want:    LinkNone,
		},
		{
			name:     "personal database unlinked",
			details:  &WorkloadDetails{},
			personal: unlinkedDB,
			want:     LinkPersonalUnlinked,
		},
		{
			name:     "personal database linked elsewhere",
			details:  &WorkloadDetails{},
			personal: linkedDB,
			want:     LinkNone,
		},
		{
			name:    "workload has linked database",
			details: &WorkloadDetails{Database: linkedDB},
			want:    LinkLinked,
		},
		{
			name:     "linked wins over personal",
			details:  &WorkloadDetails{Database: linkedDB},
			personal: unlinkedDB,
			want:     LinkLinked,
		},
		{
			name: "nil details",
			want: LinkNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvalLinkState(tt.details, tt.personal); got != tt.want {
				t.Errorf("EvalLinkState = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDatabaseLinked(t *testing.T) {
	var nilDB *Database
	if nilDB.Linked() {
		t.Error("nil database should not be linked")
	}
	if (&Database{}).Linked() {
		t.Error("database without workload id should not be linked")
	}
	if !(&Database{WorkloadID: intPtr(1)}).Linked() {
		t.Error("database with workload id should be linked")
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"running", StatusRunning},
		{"exited", StatusExited},
		{"paused", StatusPaused},
		{"terminating", StatusUnknown},
		{"", StatusUnknown},
	}
	for _, tt := range tests {
		if got := ClassifyStatus(tt.raw); got != tt.want {
			t.Errorf("ClassifyStatus(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
