// Package config holds analysis option defaults with YAML persistence.
//
// Options covers the tunable knobs of transcript analysis: the recording
// file extension, the tokenizer and MLU ignore lists, and the default
// speaker marker. Values resolve in order: defaults, then YAML file, then
// CHILDES_* environment variables.
package config
