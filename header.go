package childes

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Header holds the raw participant and age fields extracted from a
// transcript's header lines.
type Header struct {
	// Participants is the value of the @Participants line, e.g.
	// "CHI Gijs Target_Child, MOT Moeder Mother".
	Participants string

	// Age is the child's age in CHILDES "years;months.days" notation,
	// taken from the first @ID line that carries one, e.g. "2;3.15".
	Age string
}

// Header extracts participant and age information from the transcript's
// header lines. It fails with ErrMissingHeader if the @Participants line or
// an age-carrying @ID line is absent.
func (t *Transcript) Header() (Header, error) {
	participants, err := t.headerValue("@Participants")
	if err != nil {
		return Header{}, err
	}

	age, err := t.ageField()
	if err != nil {
		return Header{}, err
	}

	return Header{Participants: participants, Age: age}, nil
}

// AgeInDays returns the child's age converted to a day count using the
// CHILDES convention of 30-day months: years*360 + months*30 + days. This
// is an intentional simplification, not a calendar computation.
func (t *Transcript) AgeInDays() (int, error) {
	hdr, err := t.Header()
	if err != nil {
		return 0, err
	}

	years, rest, ok := strings.Cut(hdr.Age, ";")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAge, hdr.Age)
	}
	months, days, ok := strings.Cut(rest, ".")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAge, hdr.Age)
	}

	y, err := strconv.Atoi(years)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAge, hdr.Age)
	}
	m, err := strconv.Atoi(months)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAge, hdr.Age)
	}
	d, err := strconv.Atoi(days)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAge, hdr.Age)
	}

	return y*360 + m*30 + d, nil
}

// ParticipantTiers returns the speaker tier markers declared in the
// @Participants header. Every space-separated token of exactly three
// characters is treated as a speaker code and prefixed with "*", so
// "CHI" becomes "*CHI". This is the CHILDES three-letter-code heuristic,
// not a validated participant-role list.
func (t *Transcript) ParticipantTiers() ([]string, error) {
	hdr, err := t.Header()
	if err != nil {
		return nil, err
	}

	var tiers []string
	for _, tok := range strings.Split(hdr.Participants, " ") {
		if len(tok) == 3 {
			tiers = append(tiers, "*"+tok)
		}
	}
	return tiers, nil
}

// Language returns the transcript's primary language parsed from the
// @Languages header. When the header lists several languages the first one
// is taken.
func (t *Transcript) Language() (language.Tag, error) {
	value, err := t.headerValue("@Languages")
	if err != nil {
		return language.Und, err
	}

	code, _, _ := strings.Cut(value, ",")
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return language.Und, fmt.Errorf("parse @Languages %q: %w", value, err)
	}
	return tag, nil
}

// headerValue returns the tab-separated value of the first header line
// starting with the given marker.
func (t *Transcript) headerValue(marker string) (string, error) {
	for _, line := range t.merged {
		if !strings.HasPrefix(line, marker) {
			continue
		}
		if _, value, ok := strings.Cut(line, "\t"); ok {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrMissingHeader, marker)
}

// ageField returns the age field from the first @ID header that carries
// one. @ID lines are pipe-separated; the age is the first field containing
// a ";".
func (t *Transcript) ageField() (string, error) {
	for _, line := range t.merged {
		if !strings.HasPrefix(line, "@ID") || !strings.Contains(line, ";") {
			continue
		}
		for _, field := range strings.Split(line, "|") {
			if strings.Contains(field, ";") {
				return field, nil
			}
		}
	}
	return "", fmt.Errorf("%w: @ID age line", ErrMissingHeader)
}
