// Package childes parses CHAT-style transcripts from child language
// acquisition corpora and computes linguistic statistics over them.
//
// A transcript is a newline-delimited text file where each logical line
// starts with a marker character: "@" for header lines, "*" for speaker
// lines, and "%" for dependent annotation lines. Unmarked lines continue
// the previous marked line. The core types:
//
//   - Transcript: one recording session, with merged lines and utterances
//   - Utterance: one speaker turn plus its dependent annotation tiers
//   - FrequencyTable: token counts ordered by descending frequency
//
// Supporting subpackages:
//
//   - dataset: corpus/child/recording discovery and file access
//   - config: analysis option defaults, YAML load/save
//   - testutil: test fixtures and corpus builders
//
// # Quick Start
//
//	import (
//	    "github.com/acqlab/childes"
//	    "github.com/acqlab/childes/dataset"
//	)
//
//	ds, _ := dataset.Load("/data/corpora")
//	tr, _ := ds.Open("Schaerlaekens", "Gijs", "021023.cha")
//
//	mlu := tr.WordMLU("*CHI", nil)
//	freqs, _ := tr.Frequencies("*CHI", childes.SpeakerTier(), "", "")
//	ttr := childes.TTR(freqs)
//
// All derived structures are computed from in-memory line sequences and are
// read-only after construction, so separate transcripts can be processed in
// parallel without coordination.
package childes
