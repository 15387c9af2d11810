package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CASEBOOK_TEST_STR", "value")

	if got := GetEnv("CASEBOOK_TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetEnv() = %q, want %q", got, "value")
	}
	if got := GetEnv("CASEBOOK_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, want default %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "25", 25},
		{"invalid falls back", "abc", 10},
		{"empty falls back", "", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CASEBOOK_TEST_INT", tt.value)
			if got := GetEnvInt("CASEBOOK_TEST_INT", 10); got != tt.want {
				t.Errorf("GetEnvInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"true word", "true", true},
		{"one", "1", true},
		{"yes", "yes", true},
		{"false word", "false", false},
		{"off", "off", false},
		{"garbage falls back", "maybe", false},
		{"empty falls back", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CASEBOOK_TEST_BOOL", tt.value)
			if got := GetEnvBool("CASEBOOK_TEST_BOOL", false); got != tt.want {
				t.Errorf("GetEnvBool() = %v, want %v", got, tt.want)
			}
		})
	}
}
