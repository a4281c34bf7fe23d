package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	if rules.Round.Attempts != 6 {
		t.Errorf("Expected 6 attempts, got %d", rules.Round.Attempts)
	}
	if rules.Scoring.CorrectLetter != 10 {
		t.Errorf("Expected +10 per letter, got %d", rules.Scoring.CorrectLetter)
	}
	if rules.Scoring.WrongPenalty != 5 {
		t.Errorf("Expected -5 penalty, got %d", rules.Scoring.WrongPenalty)
	}
	if rules.Scoring.PerfectWordBonus != 50 || rules.Scoring.WordBonus != 20 {
		t.Errorf("Unexpected word bonuses: %+v", rules.Scoring)
	}
	if rules.Hints.Normal != 3 || rules.Hints.Hard != 1 || rules.Hints.Custom != 2 {
		t.Errorf("Unexpected starting hints: %+v", rules.Hints)
	}
}

func TestLoadEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// No custom path and no user/local config in a test environment
	// means the embedded YAML is used; it must agree with DefaultRules.
	rules, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if rules != DefaultRules() {
		t.Errorf("Embedded defaults %+v differ from hardcoded %+v", rules, DefaultRules())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := []byte(`
round:
  attempts: 8
scoring:
  correct_letter: 15
  wrong_penalty: 3
  perfect_word_bonus: 60
  word_bonus: 25
  hint_completion: 12
hints:
  normal: 5
  hard: 2
  custom: 4
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	rules, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if rules.Round.Attempts != 8 {
		t.Errorf("Expected 8 attempts, got %d", rules.Round.Attempts)
	}
	if rules.Scoring.CorrectLetter != 15 || rules.Scoring.HintCompletion != 12 {
		t.Errorf("Unexpected scoring: %+v", rules.Scoring)
	}
	if rules.Hints.Normal != 5 {
		t.Errorf("Expected 5 normal hints, got %d", rules.Hints.Normal)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config path")
	}
}

func TestStartingHints(t *testing.T) {
	rules := DefaultRules()

	cases := []struct {
		difficulty Difficulty
		want       int
	}{
		{DifficultyNormal, 3},
		{DifficultyHard, 1},
		{DifficultyCustom, 2},
	}
	for _, tc := range cases {
		if got := rules.StartingHints(tc.difficulty); got != tc.want {
			t.Errorf("StartingHints(%s) = %d, want %d", tc.difficulty, got, tc.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		input string
		want  Difficulty
		ok    bool
	}{
		{"normal", DifficultyNormal, true},
		{"easy", DifficultyNormal, true},
		{"1", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"2", DifficultyHard, true},
		{"custom", DifficultyCustom, true},
		{"3", DifficultyCustom, true},
		{"nightmare", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseDifficulty(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseDifficulty(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
