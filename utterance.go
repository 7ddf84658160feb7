package childes

import "strings"

// Utterance is one turn of speech by a participant together with its
// dependent annotation tiers.
type Utterance struct {
	// ID is a dense sequential number starting at 1 in transcript order.
	ID int

	// Speaker is the speaker tier marker, e.g. "*CHI".
	Speaker string

	// Text is the transcribed speech on the speaker tier.
	Text string

	// Dependent maps annotation tier markers to their text, e.g.
	// "%mor" -> "n|hello n|world". May be empty.
	Dependent map[string]string
}

// Utterances returns the transcript's utterances in order of appearance.
// The returned slice is shared; callers must not modify it.
func (t *Transcript) Utterances() []Utterance {
	return t.utterances
}

// parseUtterances walks the merged lines restricted to "*" and "%" markers
// and groups each speaker line with the dependent tiers that follow it.
//
// IDs are assigned at emission, so emitted IDs are always dense from 1
// regardless of any discarded leading fragment. Dependent tiers seen before
// the first speaker line are discarded, and a trailing record with no
// speaker tier is dropped: an utterance without a speaker tier is never
// emitted.
func parseUtterances(merged []string) []Utterance {
	var out []Utterance
	cur := Utterance{Dependent: map[string]string{}}

	for _, line := range merged {
		if !strings.HasPrefix(line, "*") && !strings.HasPrefix(line, "%") {
			continue
		}

		marker, text, _ := strings.Cut(line, "\t")
		marker = strings.TrimSuffix(marker, ":")

		if strings.HasPrefix(marker, "*") {
			if cur.Speaker != "" {
				cur.ID = len(out) + 1
				out = append(out, cur)
			}
			// Annotations with no preceding speaker line are dropped here
			// along with everything else in cur.
			cur = Utterance{Speaker: marker, Text: text, Dependent: map[string]string{}}
			continue
		}

		cur.Dependent[marker] = text
	}

	if cur.Speaker != "" {
		cur.ID = len(out) + 1
		out = append(out, cur)
	}

	return out
}
