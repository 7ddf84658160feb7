package childes

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// MLU holds a speaker's mean length of utterance in words and its
// standard deviation, both rounded to two decimal places.
type MLU struct {
	Mean   float64
	StdDev float64
}

// MatchMode selects how a frequency pattern is matched against tokens.
type MatchMode string

const (
	MatchStartsWith MatchMode = "startswith"
	MatchContains   MatchMode = "contains"
	MatchEndsWith   MatchMode = "endswith"
	MatchEquals     MatchMode = "equals"
)

// Tier selects the text source for frequency counting: the primary speaker
// tier or a named dependent tier.
type Tier struct {
	name      string
	dependent bool
}

// SpeakerTier selects the transcribed speech on the speaker tier.
func SpeakerTier() Tier { return Tier{} }

// DependentTier selects a named annotation tier, e.g. "%mor". Utterances
// lacking the tier contribute no tokens.
func DependentTier(name string) Tier { return Tier{name: name, dependent: true} }

// TokenCount is one entry of a FrequencyTable.
type TokenCount struct {
	Token string
	Count int
}

// FrequencyTable is a token frequency count ordered by descending count.
// Ties keep first-seen order, so tables are deterministic.
type FrequencyTable []TokenCount

// Total returns the total number of tokens counted.
func (ft FrequencyTable) Total() int {
	total := 0
	for _, tc := range ft {
		total += tc.Count
	}
	return total
}

// Get returns the count for a token, or 0 if absent.
func (ft FrequencyTable) Get(token string) int {
	for _, tc := range ft {
		if tc.Token == token {
			return tc.Count
		}
	}
	return 0
}

// WordMLU computes the word-based mean length of utterance for a speaker,
// along with the population standard deviation over per-utterance word
// counts. A nil ignore list means DefaultIgnore.
//
// Words exactly matching the ignore list are skipped, as are bracket
// markers starting with "[:" or "[*" (experimenter corrections). Both
// values are 0 when no utterance matches the speaker; the deviation is 0
// for fewer than two utterances.
func (t *Transcript) WordMLU(speaker string, ignore []string) MLU {
	if ignore == nil {
		ignore = DefaultIgnore
	}

	var counts []int
	total := 0
	for _, u := range t.utterances {
		if u.Speaker != speaker {
			continue
		}

		// "[: x]" would split into two words; normalize to "[:x]" so the
		// whole marker is dropped as one.
		text := strings.ReplaceAll(u.Text, "[: ", "[:")

		n := 0
		for _, word := range strings.Fields(text) {
			if inList(word, ignore) {
				continue
			}
			if strings.HasPrefix(word, "[:") || strings.HasPrefix(word, "[*") {
				continue
			}
			n++
		}
		counts = append(counts, n)
		total += n
	}

	if len(counts) == 0 {
		return MLU{}
	}

	mlu := MLU{Mean: round2(float64(total) / float64(len(counts)))}
	if len(counts) > 1 {
		mean := float64(total) / float64(len(counts))
		variance := 0.0
		for _, n := range counts {
			d := float64(n) - mean
			variance += d * d
		}
		variance /= float64(len(counts))
		mlu.StdDev = round2(math.Sqrt(variance))
	}
	return mlu
}

// Frequencies counts token frequencies over the selected tier for one
// speaker's utterances. A non-empty pattern filters tokens using mode;
// an unsupported mode is reported as ErrInvalidMatchMode. Tokens come
// from Tokenize with the default ignore list.
func (t *Transcript) Frequencies(speaker string, tier Tier, pattern string, mode MatchMode) (FrequencyTable, error) {
	if pattern != "" {
		switch mode {
		case MatchStartsWith, MatchContains, MatchEndsWith, MatchEquals:
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidMatchMode, mode)
		}
	}

	counts := map[string]int{}
	var order []string

	for _, u := range t.utterances {
		if u.Speaker != speaker {
			continue
		}

		text := u.Text
		if tier.dependent {
			text = u.Dependent[tier.name]
		}

		for token := range Tokenize(text, nil) {
			if pattern != "" && !matches(token, pattern, mode) {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	table := make(FrequencyTable, 0, len(order))
	for _, token := range order {
		table = append(table, TokenCount{Token: token, Count: counts[token]})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})
	return table, nil
}

// TTR computes the type-token ratio of a frequency table: distinct tokens
// divided by total tokens, rounded to two decimal places. An empty table
// yields 0.
func TTR(table FrequencyTable) float64 {
	tokens := table.Total()
	if tokens == 0 {
		return 0
	}
	return round2(float64(len(table)) / float64(tokens))
}

func matches(token, pattern string, mode MatchMode) bool {
	switch mode {
	case MatchStartsWith:
		return strings.HasPrefix(token, pattern)
	case MatchContains:
		return strings.Contains(token, pattern)
	case MatchEndsWith:
		return strings.HasSuffix(token, pattern)
	case MatchEquals:
		return token == pattern
	}
	return false
}

func inList(s string, list []string) bool {
	for _, item := range list {
		if s == item {
			return true
		}
	}
	return false
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
