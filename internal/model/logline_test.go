package model

import "testing"

func TestParseLogLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantTS  string
		wantMsg string
		wantLvl LogLevel
	}{
		{
			name:    "timestamped info line",
			line:    "2024-03-01T10:15:00Z server listening on :8080",
			wantTS:  "2024-03-01T10:15:00Z",
			wantMsg: "server listening on :8080",
			wantLvl: LogInfo,
		},
		{
			name:    "fractional seconds truncated",
			line:    "2024-03-01T10:15:00.123456Z ready",
			wantTS:  "2024-03-01T10:15:00",
			wantMsg: "ready",
			wantLvl: LogInfo,
		},
		{
			name:    "no timestamp keeps whole line",
			line:    "plain message without timestamp",
			wantTS:  "",
			wantMsg: "plain message without timestamp",
			wantLvl: LogInfo,
		},
		{
			name:    "first token not ending in Z",
			line:    "2024-03-01T10:15:00 something",
			wantTS:  "",
			wantMsg: "2024-03-01T10:15:00 something",
			wantLvl: LogInfo,
		},
		{
			name:    "message whitespace trimmed",
			line:    "2024-03-01T10:15:00Z   padded message  ",
			wantTS:  "2024-03-01T10:15:00Z",
			wantMsg: "padded message",
			wantLvl: LogInfo,
		},
		{
			name:    "error marker",
			line:    "2024-03-01T10:15:00Z request failed: connection refused",
			wantTS:  "2024-03-01T10:15:00Z",
			wantMsg: "request failed: connection refused",
			wantLvl: LogError,
		},
		{
			name:    "warning marker lowercase",
			line:    "warning: disk nearly full",
			wantMsg: "warning: disk nearly full",
			wantLvl: LogWarn,
		},
		{
			name:    "error wins over warn",
			line:    "WARN then ERROR in one line",
			wantMsg: "WARN then ERROR in one line",
			wantLvl: LogError,
		},
		{
			name:    "empty line",
			line:    "",
			wantMsg: "",
			wantLvl: LogInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLogLine(tt.line)
			if got.Timestamp != tt.wantTS {
				t.Errorf("Timestamp = %q, want %q", got.Timestamp, tt.wantTS)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMsg)
			}
			if got.Level != tt.wantLvl {
				t.Errorf("Level = %q, want %q", got.Level, tt.wantLvl)
			}
		})
	}
}

func TestParseLogs(t *testing.T) {
	lines := ParseLogs("2024-03-01T10:15:00Z one\ntwo\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Timestamp == "" || lines[1].Timestamp != "" {
		t.Errorf("unexpected timestamps: %+v", lines)
	}

	if got := ParseLogs(""); got != nil {
		t.Errorf("empty text should parse to nil, got %v", got)
	}
}
