// Package dataset discovers CHILDES corpora on disk and opens transcripts.
//
// It expects the folder structure:
//
//	<root>/<corpus>/<child>/<recording>.cha
//
// Load walks the tree once and returns an immutable snapshot indexed by
// (corpus, child, recording). Open reads a recording's raw lines and hands
// them to the childes parser. The snapshot never mutates after Load, so it
// may be shared across goroutines.
package dataset
