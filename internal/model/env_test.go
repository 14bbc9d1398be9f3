package model

import (
	"reflect"
	"testing"
)

func TestParseEnvText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]string
	}{
		{
			name: "basic lines",
			text: "A=1\nB=2",
			want: map[string]string{"A": "1", "B": "2"},
		},
		{
			name: "trims keys and values, drops malformed",
			text: "A=1\nBAD\nB = 2 \n=skip",
			want: map[string]string{"A": "1", "B": "2"},
		},
		{
			name: "value may contain equals",
			text: "URL=postgres://u:p@host?sslmode=disable",
			want: map[string]string{"URL": "postgres://u:p@host?sslmode=disable"},
		},
		{
			name: "duplicate keys collapse to last",
			text: "A=1\nA=2",
			want: map[string]string{"A": "2"},
		},
		{
			name: "empty value kept",
			text: "EMPTY=",
			want: map[string]string{"EMPTY": ""},
		},
		{
			name: "blank buffer",
			text: "",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEnvText(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseEnvText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEnvTextRoundTrip(t *testing.T) {
	orig := map[string]string{
		"DATABASE_URL": "mysql://db:3306/app",
		"DEBUG":        "true",
		"PORT":         "8080",
	}
	if got := ParseEnvText(FormatEnvText(orig)); !reflect.DeepEqual(got, orig) {
		t.Errorf("round trip = %v, want %v", got, orig)
	}
}

func TestFormatEnvTextStableOrder(t *testing.T) {
	vars := map[string]string{"B": "2", "A": "1", "C": "3"}
	want := "A=1\nB=2\nC=3"
	for i := 0; i < 10; i++ {
		if got := FormatEnvText(vars); got != want {
			t.Fatalf("FormatEnvText = %q, want %q", got, want)
		}
	}
	if got := FormatEnvText(nil); got != "" {
		t.Errorf("FormatEnvText(nil) = %q, want empty", got)
	}
}
