// Package words provides category-based word lists for the game.
// Lists load from YAML with the same search order as game configs and
// fall back to embedded defaults, so the provider never comes up empty.
package words

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/words.yaml
var defaultWordsYAML []byte

// FallbackCategory is used when an unknown or empty category is requested.
const FallbackCategory = "mixed"

// Provider serves lowercase candidate words per category.
type Provider struct {
	categories map[string][]string
}

// Load builds a provider.
// Search order: customPath -> ~/.hangman/configs/words.yaml -> ./configs/words.yaml -> embedded default
func Load(customPath string) (*Provider, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("words: failed to read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".hangman", "configs", "words.yaml")
		if data, err := os.ReadFile(userPath); err == nil {
			if p, err := parse(data, userPath); err == nil {
				return p, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "words.yaml")); err == nil {
		if p, err := parse(data, "configs/words.yaml"); err == nil {
			return p, nil
		}
	}

	return parse(defaultWordsYAML, "embedded defaults")
}

// parse unmarshals category lists, lower-casing words and dropping
// anything that is not purely alphabetic.
func parse(data []byte, source string) (*Provider, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("words: failed to parse %s: %w", source, err)
	}

	categories := make(map[string][]string, len(raw))
	for name, list := range raw {
		clean := make([]string, 0, len(list))
		for _, w := range list {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" && alphabetic(w) {
				clean = append(clean, w)
			}
		}
		if len(clean) > 0 {
			categories[strings.ToLower(name)] = clean
		}
	}

	p := &Provider{categories: categories}
	if len(p.Words(FallbackCategory)) == 0 {
		return nil, fmt.Errorf("words: %s has no usable fallback list", source)
	}
	return p, nil
}

// Words returns the list for the category, falling back to the mixed
// list for an unknown or empty category. The returned slice is shared;
// callers must not mutate it.
func (p *Provider) Words(category string) []string {
	if list, ok := p.categories[strings.ToLower(category)]; ok {
		return list
	}
	return p.categories[FallbackCategory]
}

// Categories returns the custom-play category names, sorted. The
// difficulty-backing lists (normal, hard) are not included.
func (p *Provider) Categories() []string {
	var names []string
	for name := range p.categories {
		if name == "normal" || name == "hard" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stats describes a category for the selector screen.
type Stats struct {
	Category  string
	WordCount int
	AvgLength float64
	Rating    int // 1..5, longer words and smaller pools rate harder
}

// CategoryStats computes selector metadata for a category.
func (p *Provider) CategoryStats(category string) Stats {
	list := p.Words(category)

	total := 0
	for _, w := range list {
		total += len(w)
	}
	avg := 0.0
	if len(list) > 0 {
		avg = float64(total) / float64(len(list))
	}

	return Stats{
		Category:  category,
		WordCount: len(list),
		AvgLength: avg,
		Rating:    rating(avg, len(list)),
	}
}

// rating maps average word length and pool size to a 1..5 difficulty.
func rating(avgLength float64, wordCount int) int {
	var lengthScore int
	switch {
	case avgLength < 4:
		lengthScore = 1
	case avgLength < 5:
		lengthScore = 2
	case avgLength < 6:
		lengthScore = 3
	case avgLength < 8:
		lengthScore = 4
	default:
		lengthScore = 5
	}

	var countAdj int
	switch {
	case wordCount > 500:
		countAdj = -1
	case wordCount > 200:
		countAdj = 0
	case wordCount > 100:
		countAdj = 1
	default:
		countAdj = 2
	}

	r := lengthScore + countAdj
	if r < 1 {
		r = 1
	}
	if r > 5 {
		r = 5
	}
	return r
}

func alphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
