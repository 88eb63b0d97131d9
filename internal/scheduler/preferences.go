package scheduler

import "strings"

// HobbyExtractor finds recognised hobbies in free-text preferences.
// Implementations must be pure and return hobbies in a stable order;
// the first entry is the one the allocator books.
type HobbyExtractor interface {
	ExtractHobbies(text string) []string
}

// DefaultHobbies is the vocabulary recognised by the default extractor, in priority order.
var DefaultHobbies = []string{
	"yoga",
	"painting",
	"reading",
	"gardening",
	"music",
	"dance",
	"run",
	"jog",
	"cycling",
}

// KeywordExtractor matches vocabulary entries as case-insensitive substrings.
type KeywordExtractor struct {
	vocabulary []string
}

// NewKeywordExtractor creates an extractor over words, or DefaultHobbies when none are given.
func NewKeywordExtractor(words ...string) *KeywordExtractor {
	if len(words) == 0 {
		words = DefaultHobbies
	}
	vocab := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			vocab = append(vocab, w)
		}
	}
	return &KeywordExtractor{vocabulary: vocab}
}

// ExtractHobbies returns matches in vocabulary order, not input order.
func (k *KeywordExtractor) ExtractHobbies(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, word := range k.vocabulary {
		if strings.Contains(lower, word) {
			found = append(found, word)
		}
	}
	return found
}
