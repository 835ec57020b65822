package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("NEWSFLOW_TEST_STR", "value")
	if got := GetEnvString("NEWSFLOW_TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetEnvString = %q, want %q", got, "value")
	}
	if got := GetEnvString("NEWSFLOW_TEST_STR_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnvString unset = %q, want %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("NEWSFLOW_TEST_INT", "42")
	if got := GetEnvInt("NEWSFLOW_TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt = %d, want 42", got)
	}

	t.Setenv("NEWSFLOW_TEST_INT", "abc")
	if got := GetEnvInt("NEWSFLOW_TEST_INT", 7); got != 7 {
		t.Errorf("GetEnvInt invalid = %d, want default 7", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"T", false, true},
		{"0", true, false},
		{"false", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Setenv("NEWSFLOW_TEST_BOOL", tt.value)
		if got := GetEnvBool("NEWSFLOW_TEST_BOOL", tt.def); got != tt.want {
			t.Errorf("GetEnvBool(%q, %v) = %v, want %v", tt.value, tt.def, got, tt.want)
		}
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("NEWSFLOW_TEST_DUR", "90s")
	if got := GetEnvDuration("NEWSFLOW_TEST_DUR", time.Minute); got != 90*time.Second {
		t.Errorf("GetEnvDuration = %v, want 90s", got)
	}

	t.Setenv("NEWSFLOW_TEST_DUR", "soon")
	if got := GetEnvDuration("NEWSFLOW_TEST_DUR", time.Minute); got != time.Minute {
		t.Errorf("GetEnvDuration invalid = %v, want default 1m", got)
	}
}
