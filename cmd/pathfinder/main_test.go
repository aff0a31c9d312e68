package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/arcade-pathfinder/internal/encoding"
	"github.com/vovakirdan/arcade-pathfinder/internal/scenario"
)

func TestRoundingWarmup(t *testing.T) {
	expected := map[string]bool{
		"search":    true,
		"dodge":     true,
		"step":      true,
		"round":     true,
		"bench":     true,
		"scenarios": false,
		"runs":      false,
		"stats":     false,
		"schema":    false,
	}

	for _, cmd := range rootCmd.Commands() {
		want, ok := expected[cmd.Name()]
		if !ok {
			continue
		}
		if got := cmd.Annotations[annotationRounding] == "true"; got != want {
			t.Errorf("%s warms the rounding tables = %v, expected %v", cmd.Name(), got, want)
		}
		delete(expected, cmd.Name())
	}
	for name := range expected {
		t.Errorf("command %s is not registered", name)
	}
}

func TestParseRoundArgs(t *testing.T) {
	tests := []struct {
		args    []string
		value   float64
		digits  int
		wantErr bool
	}{
		{[]string{"2.675"}, 2.675, 2, false},
		{[]string{"2.5", "0"}, 2.5, 0, false},
		{[]string{"-1e3", "4"}, -1000, 4, false},
		{[]string{"abc"}, 0, 0, true},
		{[]string{"NaN", "0"}, 0, 0, true},
		{[]string{"Inf"}, 0, 0, true},
		{[]string{"-Inf", "2"}, 0, 0, true},
		{[]string{"1.5", "-1"}, 0, 0, true},
		{[]string{"1.5", "two"}, 0, 0, true},
	}

	for _, tt := range tests {
		value, digits, err := parseRoundArgs(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseRoundArgs(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (value != tt.value || digits != tt.digits) {
			t.Errorf("parseRoundArgs(%v) = (%v, %d), expected (%v, %d)", tt.args, value, digits, tt.value, tt.digits)
		}
	}
}

func TestLoadIntentSyncsStateSettings(t *testing.T) {
	s, err := scenario.Create("flat-jump")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	b := s.Build()
	b.Settings.AllowDamage = true
	b.Settings.SimpleGeometry = false

	dir := filepath.Join(t.TempDir(), "problem")
	if err := encoding.SaveDir(dir, b); err != nil {
		t.Fatalf("SaveDir() error = %v", err)
	}

	flagMove = "D"
	got, _, err := loadIntent(dir)
	if err != nil {
		t.Fatalf("loadIntent() error = %v", err)
	}
	want := got.Settings.Physics()
	if got.Initial.Settings != want {
		t.Errorf("Initial.Settings = %+v, expected %+v", got.Initial.Settings, want)
	}
	if got.Target.Settings != want {
		t.Errorf("Target.Settings = %+v, expected %+v", got.Target.Settings, want)
	}
}
