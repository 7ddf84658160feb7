package childes

import "strings"

// Transcript represents one recorded conversation session.
//
// The raw file lines are merged into logical lines once at construction and
// the utterance structure is derived from them; the result is read-only.
// Header lookups are performed on demand.
type Transcript struct {
	// Corpus, Child and Recording identify where the transcript came from.
	// They are informational; parsing does not depend on them.
	Corpus    string
	Child     string
	Recording string

	merged     []string
	utterances []Utterance
}

// New builds a Transcript from raw file lines. Continuation lines are
// merged and the utterance sequence is parsed immediately.
func New(raw []string) *Transcript {
	merged := MergeLines(raw)
	return &Transcript{
		merged:     merged,
		utterances: parseUtterances(merged),
	}
}

// MergedLines returns the transcript as logical lines, one per record.
// The returned slice is shared; callers must not modify it.
func (t *Transcript) MergedLines() []string {
	return t.merged
}

// MergeLines turns raw file lines into logical lines. Each line is stripped
// of surrounding whitespace; lines starting with "@", "*" or "%" begin a new
// record, anything else is a continuation appended to the previous record
// with a single separating space. A continuation before any marked line
// becomes its own record verbatim. Empty input yields an empty sequence.
func MergeLines(raw []string) []string {
	var merged []string
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "@") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "%") {
			merged = append(merged, line)
			continue
		}
		if len(merged) > 0 {
			merged[len(merged)-1] += " " + line
		} else {
			merged = append(merged, line)
		}
	}
	return merged
}
