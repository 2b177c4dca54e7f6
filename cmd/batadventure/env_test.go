package main

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestEnvName(t *testing.T) {
	tests := []struct {
		flag     string
		expected string
	}{
		{"fps", "BAT_FPS"},
		{"db", "BAT_DB"},
		{"idle-timeout", "BAT_IDLE_TIMEOUT"},
		{"host-key", "BAT_HOST_KEY"},
	}

	for _, tc := range tests {
		if got := envName(tc.flag); got != tc.expected {
			t.Errorf("envName(%q) = %q, expected %q", tc.flag, got, tc.expected)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BAT_FPS":   "30",
		"BAT_MODE":  "multi",
		"BAT_SOUND": "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fps := flags.Int("fps", 60, "")
	mode := flags.String("mode", "", "")
	sound := flags.Bool("sound", false, "")
	db := flags.String("db", "default.db", "")

	// Given on the command line, so the environment must not override it
	if err := flags.Parse([]string{"--mode", "single"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if err := applyEnv(flags, lookup); err != nil {
		t.Fatalf("applyEnv() failed: %v", err)
	}
	if *fps != 30 {
		t.Errorf("fps = %d, expected 30 from BAT_FPS", *fps)
	}
	if *mode != "single" {
		t.Errorf("mode = %q, expected the command line value", *mode)
	}
	if !*sound {
		t.Error("sound should be enabled from BAT_SOUND")
	}
	if *db != "default.db" {
		t.Errorf("db = %q, expected the default", *db)
	}
}

func TestApplyEnvInvalidValue(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("fps", 60, "")

	err := applyEnv(flags, func(string) (string, bool) { return "fast", true })
	if err == nil {
		t.Fatal("expected an error for a non-numeric BAT_FPS")
	}
}
