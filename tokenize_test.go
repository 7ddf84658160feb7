package childes

import (
	"reflect"
	"slices"
	"testing"
)

func collect(text string, ignore []string) []string {
	return slices.Collect(Tokenize(text, ignore))
}

func TestTokenize_DefaultIgnore(t *testing.T) {
	got := collect("hello world .", nil)
	want := []string{"hello", "world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokenize_StripsEdgesRepeatedly(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"foo...", "foo"},
		{"(.)foo[?]", "foo"},
		{"?!foo,", "foo"},
		{"foo(.)(.)", "foo"},
	}

	for _, tc := range cases {
		got := collect(tc.in, nil)
		if len(got) != 1 || got[0] != tc.want {
			t.Errorf("Tokenize(%q) = %v, want [%q]", tc.in, got, tc.want)
		}
	}
}

func TestTokenize_DropsPurePunctuation(t *testing.T) {
	if got := collect(". ! [?] (.) --", nil); len(got) != 0 {
		t.Errorf("tokens = %v, want none", got)
	}
}

func TestTokenize_KeepsInteriorPunctuation(t *testing.T) {
	got := collect("it's [:foo] well-known", nil)
	want := []string{"it's", "[:foo]", "well-known"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokenize_CustomIgnore(t *testing.T) {
	got := collect("xxfooxx bar", []string{"xx"})
	want := []string{"foo", "bar"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokenize_Idempotent(t *testing.T) {
	first := collect("hello, world . (.)extra[?] it's", nil)
	for _, tok := range first {
		again := collect(tok, nil)
		if len(again) != 1 || again[0] != tok {
			t.Errorf("re-tokenizing %q = %v, want unchanged", tok, again)
		}
	}
}

func TestTokenize_Restartable(t *testing.T) {
	seq := Tokenize("one two three .", nil)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second pass = %v, want %v", second, first)
	}
	if len(first) != 3 {
		t.Errorf("len(tokens) = %d, want 3", len(first))
	}
}

func TestTokenize_EarlyStop(t *testing.T) {
	var got []string
	for tok := range Tokenize("a b c", nil) {
		got = append(got, tok)
		if len(got) == 2 {
			break
		}
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("tokens = %v, want [a b]", got)
	}
}
