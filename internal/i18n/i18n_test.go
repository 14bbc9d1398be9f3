package i18n

import "testing"

func TestStatus(t *testing.T) {
	if got := Status("running"); got != "Running" {
		t.Errorf("Status(running) = %q", got)
	}
	if got := Status("definitely-not-a-state"); got != "Unknown" {
		t.Errorf("unknown status should fall back, got %q", got)
	}
	if got := Status(""); got != "Unknown" {
		t.Errorf("empty status should fall back, got %q", got)
	}
}

func TestErrorMessage(t *testing.T) {
	if got := ErrorMessage("LINK_FAILED"); got != "Failed to link the database to the project." {
		t.Errorf("ErrorMessage(LINK_FAILED) = %q", got)
	}
	want := ErrorMessage("DEFAULT")
	if got := ErrorMessage("SOME_NEW_CODE"); got != want {
		t.Errorf("unknown code should use DEFAULT, got %q", got)
	}
}

func TestReplace(t *testing.T) {
	got := Replace("participants.confirm_remove", "name", "bob")
	if got != "Remove bob from this workload?" {
		t.Errorf("Replace = %q", got)
	}
}

func TestTUnknownKeyVisible(t *testing.T) {
	if got := T("no.such.key"); got != "no.such.key" {
		t.Errorf("T should echo unknown keys, got %q", got)
	}
}
