// Package testutil provides fixtures for testing transcript parsing.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleTranscript returns a small well-formed CHAT transcript with a
// continuation line, two speakers and a %mor annotation.
func SampleTranscript() string {
	return strings.Join([]string{
		"@UTF8",
		"@Begin",
		"@Languages:\tnld",
		"@Participants:\tCHI Gijs Target_Child, MOT Moeder Mother",
		"@ID:\tnld|Schaerlaekens|CHI|2;3.15|male|||Target_Child|||",
		"*CHI:\thello world .",
		"%mor:\tn|hello n|world",
		"*MOT:\twhat a long sentence this",
		"\tis going to be .",
		"*CHI:\tbar bar .",
		"@End",
	}, "\n")
}

// WriteRecording writes a transcript under root/corpus/child/recording,
// creating directories as needed.
func WriteRecording(t *testing.T, root, corpus, child, recording, content string) {
	t.Helper()

	dir := filepath.Join(root, corpus, child)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create corpus dir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, recording), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write recording %s: %v", recording, err)
	}
}

// WriteCorpus writes a corpus tree from a nested map of
// corpus -> child -> recording -> content.
func WriteCorpus(t *testing.T, root string, tree map[string]map[string]map[string]string) {
	t.Helper()

	for corpus, children := range tree {
		for child, recordings := range children {
			for recording, content := range recordings {
				WriteRecording(t, root, corpus, child, recording, content)
			}
		}
	}
}

// Lines splits transcript text into raw lines the way a file read would.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}
