package childes

import (
	"reflect"
	"testing"
)

func TestUtterances_SpeakerWithAnnotation(t *testing.T) {
	tr := New([]string{"*CHI:\thello world .", "%mor:\tn|hello n|world"})

	utts := tr.Utterances()
	if len(utts) != 1 {
		t.Fatalf("len(utts) = %d, want 1", len(utts))
	}

	u := utts[0]
	if u.ID != 1 {
		t.Errorf("ID = %d, want 1", u.ID)
	}
	if u.Speaker != "*CHI" {
		t.Errorf("Speaker = %q, want %q", u.Speaker, "*CHI")
	}
	if u.Text != "hello world ." {
		t.Errorf("Text = %q, want %q", u.Text, "hello world .")
	}
	want := map[string]string{"%mor": "n|hello n|world"}
	if !reflect.DeepEqual(u.Dependent, want) {
		t.Errorf("Dependent = %v, want %v", u.Dependent, want)
	}
}

func TestUtterances_DenseIDs(t *testing.T) {
	tr := New([]string{
		"*CHI:\tone .",
		"*MOT:\ttwo .",
		"%com:\taside",
		"*CHI:\tthree .",
	})

	utts := tr.Utterances()
	if len(utts) != 3 {
		t.Fatalf("len(utts) = %d, want 3", len(utts))
	}
	for i, u := range utts {
		if u.ID != i+1 {
			t.Errorf("utts[%d].ID = %d, want %d", i, u.ID, i+1)
		}
	}
	if len(utts[1].Dependent) != 1 {
		t.Errorf("annotation should attach to the second utterance, got %v", utts[1].Dependent)
	}
	if len(utts[2].Dependent) != 0 {
		t.Errorf("third utterance should have no annotations, got %v", utts[2].Dependent)
	}
}

func TestUtterances_CountMatchesSpeakerLines(t *testing.T) {
	lines := []string{
		"@Begin",
		"*CHI:\ta .",
		"%mor:\tx",
		"*MOT:\tb .",
		"*CHI:\tc .",
		"%com:\ty",
		"@End",
	}
	tr := New(lines)

	if got := len(tr.Utterances()); got != 3 {
		t.Errorf("len(Utterances()) = %d, want 3", got)
	}
}

func TestUtterances_LeadingAnnotationDiscarded(t *testing.T) {
	tr := New([]string{"%com:\tbefore any speaker", "*CHI:\thello ."})

	utts := tr.Utterances()
	if len(utts) != 1 {
		t.Fatalf("len(utts) = %d, want 1", len(utts))
	}
	if utts[0].ID != 1 {
		t.Errorf("ID = %d, want 1", utts[0].ID)
	}
	if len(utts[0].Dependent) != 0 {
		t.Errorf("leading annotation should be discarded, got %v", utts[0].Dependent)
	}
}

func TestUtterances_AnnotationOnlyInput(t *testing.T) {
	tr := New([]string{"%mor:\tn|orphan"})

	if utts := tr.Utterances(); len(utts) != 0 {
		t.Errorf("Utterances() = %v, want none", utts)
	}
}

func TestUtterances_AnnotationAfterInterveningHeader(t *testing.T) {
	// Header lines between a speaker line and its annotations do not break
	// the association.
	tr := New([]string{"*CHI:\thi .", "@Situation:\tplaying", "%com:\tnote"})

	utts := tr.Utterances()
	if len(utts) != 1 {
		t.Fatalf("len(utts) = %d, want 1", len(utts))
	}
	if utts[0].Dependent["%com"] != "note" {
		t.Errorf("Dependent = %v, want %%com attached", utts[0].Dependent)
	}
}

func TestUtterances_MissingTab(t *testing.T) {
	tr := New([]string{"*CHI:"})

	utts := tr.Utterances()
	if len(utts) != 1 {
		t.Fatalf("len(utts) = %d, want 1", len(utts))
	}
	if utts[0].Speaker != "*CHI" {
		t.Errorf("Speaker = %q, want %q", utts[0].Speaker, "*CHI")
	}
	if utts[0].Text != "" {
		t.Errorf("Text = %q, want empty", utts[0].Text)
	}
}
