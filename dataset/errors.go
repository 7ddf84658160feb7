package dataset

import "errors"

var (
	// ErrRecordingNotFound indicates the (corpus, child, recording) triple
	// is not in the snapshot or its file could not be read.
	ErrRecordingNotFound = errors.New("recording not found")

	// ErrCorpusNotFound indicates the corpus is not in the snapshot.
	ErrCorpusNotFound = errors.New("corpus not found")

	// ErrChildNotFound indicates the child is not in the snapshot.
	ErrChildNotFound = errors.New("child not found")
)
