package game

import (
	"math/rand"
	"testing"

	"github.com/vmerkulov/tui-hangman/internal/config"
)

func newTestRound(t *testing.T, secret string) *Round {
	t.Helper()
	r, err := NewRound(secret, config.DefaultRules())
	if err != nil {
		t.Fatalf("NewRound(%q) failed: %v", secret, err)
	}
	return r
}

func TestNewRoundValidation(t *testing.T) {
	rules := config.DefaultRules()

	if _, err := NewRound("", rules); err == nil {
		t.Error("Expected error for empty secret")
	}
	if _, err := NewRound("Cat", rules); err == nil {
		t.Error("Expected error for uppercase secret")
	}
	if _, err := NewRound("c-t", rules); err == nil {
		t.Error("Expected error for non-alphabetic secret")
	}

	r, err := NewRound("cat", rules)
	if err != nil {
		t.Fatalf("NewRound failed: %v", err)
	}
	if r.Mask() != "---" {
		t.Errorf("Expected initial mask ---, got %q", r.Mask())
	}
	if r.AttemptsLeft() != 6 {
		t.Errorf("Expected 6 attempts, got %d", r.AttemptsLeft())
	}
}

func TestCorrectGuessesToWin(t *testing.T) {
	// secret "cat", guesses c,a,t: mask and score advance exactly as the
	// scoring rules dictate, ending in a win.
	r := newTestRound(t, "cat")

	steps := []struct {
		letter byte
		mask   string
		score  int
	}{
		{'c', "c--", 10},
		{'a', "ca-", 20},
		{'t', "cat", 30},
	}

	for _, step := range steps {
		outcome, err := r.GuessLetter(step.letter)
		if err != nil {
			t.Fatalf("GuessLetter(%c) failed: %v", step.letter, err)
		}
		if r.Mask() != step.mask {
			t.Errorf("After %c: expected mask %q, got %q", step.letter, step.mask, r.Mask())
		}
		if r.Score() != step.score {
			t.Errorf("After %c: expected score %d, got %d", step.letter, step.score, r.Score())
		}
		want := OutcomeContinue
		if step.mask == "cat" {
			want = OutcomeWin
		}
		if outcome != want {
			t.Errorf("After %c: expected outcome %v, got %v", step.letter, want, outcome)
		}
	}

	if r.AttemptsLeft() != 6 {
		t.Errorf("Correct guesses must not consume attempts, got %d left", r.AttemptsLeft())
	}
}

func TestWrongGuessesToLose(t *testing.T) {
	// secret "dog", six wrong letters drive attempts 6 -> 0 with the score
	// floored at zero throughout.
	r := newTestRound(t, "dog")

	wrong := []byte{'x', 'y', 'z', 'q', 'j', 'v'}
	for i, letter := range wrong {
		outcome, err := r.GuessLetter(letter)
		if err != nil {
			t.Fatalf("GuessLetter(%c) failed: %v", letter, err)
		}
		if r.Score() != 0 {
			t.Errorf("Score must stay floored at 0, got %d", r.Score())
		}
		if r.AttemptsLeft() != 6-(i+1) {
			t.Errorf("After %d wrong guesses: expected %d attempts, got %d", i+1, 6-(i+1), r.AttemptsLeft())
		}
		want := OutcomeContinue
		if i == len(wrong)-1 {
			want = OutcomeLose
		}
		if outcome != want {
			t.Errorf("After %d wrong guesses: expected %v, got %v", i+1, want, outcome)
		}
	}

	if r.WrongGuesses() != 6 {
		t.Errorf("Expected 6 wrong guesses, got %d", r.WrongGuesses())
	}

	// Terminal state: further guesses are rejected, attempts never go negative.
	if _, err := r.GuessLetter('w'); err != ErrRoundOver {
		t.Errorf("Expected ErrRoundOver after loss, got %v", err)
	}
	if r.AttemptsLeft() != 0 {
		t.Errorf("Attempts must never go negative, got %d", r.AttemptsLeft())
	}
}

func TestRepeatGuessIsNoOp(t *testing.T) {
	r := newTestRound(t, "book")

	if _, err := r.GuessLetter('o'); err != nil {
		t.Fatalf("GuessLetter(o) failed: %v", err)
	}
	mask, score, attempts := r.Mask(), r.Score(), r.AttemptsLeft()

	if _, err := r.GuessLetter('o'); err != ErrRepeatLetter {
		t.Fatalf("Expected ErrRepeatLetter, got %v", err)
	}
	if r.Mask() != mask || r.Score() != score || r.AttemptsLeft() != attempts {
		t.Error("Repeat guess changed state")
	}

	// Repeating a wrong letter is equally free.
	if _, err := r.GuessLetter('z'); err != nil {
		t.Fatalf("GuessLetter(z) failed: %v", err)
	}
	attempts = r.AttemptsLeft()
	if _, err := r.GuessLetter('z'); err != ErrRepeatLetter {
		t.Fatalf("Expected ErrRepeatLetter, got %v", err)
	}
	if r.AttemptsLeft() != attempts {
		t.Error("Repeated wrong guess consumed an attempt")
	}
}

func TestRevealAllOccurrences(t *testing.T) {
	r := newTestRound(t, "banana")

	if _, err := r.GuessLetter('a'); err != nil {
		t.Fatalf("GuessLetter(a) failed: %v", err)
	}
	if r.Mask() != "-a-a-a" {
		t.Errorf("Expected -a-a-a, got %q", r.Mask())
	}
	if r.Score() != 10 {
		t.Errorf("Multi-occurrence reveal awards the letter once, got score %d", r.Score())
	}
}

func TestPerfectWordGuess(t *testing.T) {
	// secret "sun", whole-word guess as the very first action earns the
	// perfect bonus and the flag.
	r := newTestRound(t, "sun")

	outcome, err := r.GuessWord("sun")
	if err != nil {
		t.Fatalf("GuessWord failed: %v", err)
	}
	if outcome != OutcomeWin {
		t.Errorf("Expected win, got %v", outcome)
	}
	if !r.PerfectGuess() {
		t.Error("Expected perfect guess flag")
	}
	if r.Score() != 50 {
		t.Errorf("Expected score 50, got %d", r.Score())
	}
	if r.Mask() != "sun" {
		t.Errorf("Expected fully revealed mask, got %q", r.Mask())
	}
}

func TestWordGuessAfterOneReveal(t *testing.T) {
	// One prior correct letter still counts as a perfect word guess.
	r := newTestRound(t, "planet")
	if _, err := r.GuessLetter('p'); err != nil {
		t.Fatalf("GuessLetter failed: %v", err)
	}

	if _, err := r.GuessWord("planet"); err != nil {
		t.Fatalf("GuessWord failed: %v", err)
	}
	if !r.PerfectGuess() {
		t.Error("Expected perfect flag with one prior reveal")
	}
	if r.Score() != 10+50 {
		t.Errorf("Expected score 60, got %d", r.Score())
	}
}

func TestWordGuessLateBonus(t *testing.T) {
	// Two prior reveals demote the whole-word guess to the smaller bonus.
	r := newTestRound(t, "planet")
	if _, err := r.GuessLetter('p'); err != nil {
		t.Fatal(err)
	}
	if _, err := r.GuessLetter('l'); err != nil {
		t.Fatal(err)
	}

	outcome, err := r.GuessWord("planet")
	if err != nil {
		t.Fatalf("GuessWord failed: %v", err)
	}
	if outcome != OutcomeWin {
		t.Errorf("Expected win, got %v", outcome)
	}
	if r.PerfectGuess() {
		t.Error("Perfect flag must be false after two reveals")
	}
	if r.Score() != 10+10+20 {
		t.Errorf("Expected score 40, got %d", r.Score())
	}
}

func TestWrongWordGuessPenalty(t *testing.T) {
	r := newTestRound(t, "planet")
	if _, err := r.GuessLetter('p'); err != nil {
		t.Fatal(err)
	}

	if _, err := r.GuessWord("planes"); err != nil {
		t.Fatalf("GuessWord failed: %v", err)
	}
	if r.AttemptsLeft() != 5 {
		t.Errorf("Wrong word must cost one attempt, got %d left", r.AttemptsLeft())
	}
	if r.Score() != 5 {
		t.Errorf("Expected score 10-5=5, got %d", r.Score())
	}
	if r.WrongGuesses() != 1 {
		t.Errorf("Expected 1 wrong guess, got %d", r.WrongGuesses())
	}
}

func TestWinOnLastAttempt(t *testing.T) {
	// A correct guess with zero attempts to spare still wins: win is
	// checked first and correct guesses never decrement attempts.
	r := newTestRound(t, "ox")
	for _, letter := range []byte{'a', 'b', 'c', 'd', 'e'} {
		if _, err := r.GuessLetter(letter); err != nil {
			t.Fatal(err)
		}
	}
	if r.AttemptsLeft() != 1 {
		t.Fatalf("Expected 1 attempt left, got %d", r.AttemptsLeft())
	}

	if _, err := r.GuessLetter('o'); err != nil {
		t.Fatal(err)
	}
	outcome, err := r.GuessLetter('x')
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeWin {
		t.Errorf("Expected win on last attempt, got %v", outcome)
	}
}

func TestHintRevealsRandomLetter(t *testing.T) {
	r := newTestRound(t, "cab")
	bank := NewHintBank(2)
	rng := rand.New(rand.NewSource(7))

	letter, outcome, err := r.UseHint(bank, rng)
	if err != nil {
		t.Fatalf("UseHint failed: %v", err)
	}
	if outcome != OutcomeContinue {
		t.Errorf("Expected continue, got %v", outcome)
	}
	if bank.Balance() != 1 {
		t.Errorf("Expected 1 hint left, got %d", bank.Balance())
	}
	if !r.HasGuessed(letter) {
		t.Errorf("Hinted letter %c must count as guessed", letter)
	}
	if r.Score() != 0 {
		t.Errorf("Hint alone must not change the score, got %d", r.Score())
	}

	found := false
	for i := 0; i < len(r.Mask()); i++ {
		if r.Mask()[i] == letter {
			found = true
		}
	}
	if !found {
		t.Errorf("Hinted letter %c not revealed in mask %q", letter, r.Mask())
	}
}

func TestHintWithoutBalance(t *testing.T) {
	r := newTestRound(t, "cat")
	bank := NewHintBank(0)
	rng := rand.New(rand.NewSource(1))

	mask := r.Mask()
	_, _, err := r.UseHint(bank, rng)
	if err != ErrNoHints {
		t.Fatalf("Expected ErrNoHints, got %v", err)
	}
	if r.Mask() != mask || r.Score() != 0 || bank.Balance() != 0 {
		t.Error("Failed hint must not change any state")
	}
}

func TestHintCompletionFlatAward(t *testing.T) {
	// When a hint reveal finishes the word it adds the flat completion
	// award exactly once, even though the reveal may expose several
	// positions.
	r := newTestRound(t, "mom")
	bank := NewHintBank(3)
	rng := rand.New(rand.NewSource(3))

	if _, err := r.GuessLetter('o'); err != nil {
		t.Fatal(err)
	}
	// Only 'm' remains hidden (two positions); the hint must pick it.
	letter, outcome, err := r.UseHint(bank, rng)
	if err != nil {
		t.Fatalf("UseHint failed: %v", err)
	}
	if letter != 'm' {
		t.Fatalf("Expected hint to reveal m, got %c", letter)
	}
	if outcome != OutcomeWin {
		t.Errorf("Expected win, got %v", outcome)
	}
	if r.Score() != 10+10 {
		t.Errorf("Expected 10 (letter) + 10 (flat completion), got %d", r.Score())
	}
	if bank.Balance() != 2 {
		t.Errorf("Expected 2 hints left, got %d", bank.Balance())
	}
}

func TestHintOnSolvedWord(t *testing.T) {
	r := newTestRound(t, "ox")
	bank := NewHintBank(1)
	rng := rand.New(rand.NewSource(1))

	if _, err := r.GuessLetter('o'); err != nil {
		t.Fatal(err)
	}
	if _, err := r.GuessLetter('x'); err != nil {
		t.Fatal(err)
	}

	_, _, err := r.UseHint(bank, rng)
	if err != ErrRoundOver {
		t.Fatalf("Expected ErrRoundOver on solved word, got %v", err)
	}
	if bank.Balance() != 1 {
		t.Errorf("No hint may be consumed on a solved word, got %d", bank.Balance())
	}
}

func TestHintDeterminism(t *testing.T) {
	// Same seed, same hint sequence.
	for range 2 {
		r1 := newTestRound(t, "abcdef")
		r2 := newTestRound(t, "abcdef")
		b1, b2 := NewHintBank(6), NewHintBank(6)
		rng1 := rand.New(rand.NewSource(99))
		rng2 := rand.New(rand.NewSource(99))

		for i := 0; i < 3; i++ {
			l1, _, err1 := r1.UseHint(b1, rng1)
			l2, _, err2 := r2.UseHint(b2, rng2)
			if err1 != nil || err2 != nil {
				t.Fatalf("UseHint failed: %v / %v", err1, err2)
			}
			if l1 != l2 {
				t.Errorf("Hint %d diverged: %c vs %c", i, l1, l2)
			}
		}
		if r1.Mask() != r2.Mask() {
			t.Errorf("Masks diverged: %q vs %q", r1.Mask(), r2.Mask())
		}
	}
}

func TestAllDistinctLettersWin(t *testing.T) {
	secrets := []string{"a", "go", "banana", "mississippi", "rhythm"}
	for _, secret := range secrets {
		r := newTestRound(t, secret)
		seen := map[byte]bool{}
		for i := 0; i < len(secret); i++ {
			letter := secret[i]
			if seen[letter] {
				continue
			}
			seen[letter] = true
			if _, err := r.GuessLetter(letter); err != nil {
				t.Fatalf("%q: GuessLetter(%c) failed: %v", secret, letter, err)
			}
		}
		if r.Status() != OutcomeWin {
			t.Errorf("%q: expected win after covering all letters, got %v", secret, r.Status())
		}
		if r.Mask() != secret {
			t.Errorf("%q: expected full mask, got %q", secret, r.Mask())
		}
	}
}

func TestGuessedLettersSorted(t *testing.T) {
	r := newTestRound(t, "cab")
	for _, letter := range []byte{'z', 'a', 'm'} {
		if _, err := r.GuessLetter(letter); err != nil {
			t.Fatal(err)
		}
	}
	if got := string(r.GuessedLetters()); got != "amz" {
		t.Errorf("Expected amz, got %q", got)
	}
}

func TestInvalidGuessInput(t *testing.T) {
	r := newTestRound(t, "cat")

	if _, err := r.GuessLetter('1'); err != ErrInvalidGuess {
		t.Errorf("Expected ErrInvalidGuess for digit, got %v", err)
	}
	if _, err := r.GuessWord("c"); err != ErrInvalidGuess {
		t.Errorf("Expected ErrInvalidGuess for single-char word, got %v", err)
	}
	if _, err := r.GuessWord("ca7"); err != ErrInvalidGuess {
		t.Errorf("Expected ErrInvalidGuess for non-alpha word, got %v", err)
	}
	if r.AttemptsLeft() != 6 {
		t.Error("Invalid input must not consume attempts")
	}
}
