package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	nanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"

	"github.com/acqlab/childes"
	"github.com/acqlab/childes/config"
)

// Dataset is an immutable snapshot of a corpus tree. Build one with Load.
type Dataset struct {
	id        string
	root      string
	extension string
	log       *logrus.Logger

	// recordings maps (corpus, child, recording) to the file path.
	recordings map[key]string
}

type key struct {
	corpus    string
	child     string
	recording string
}

// Option configures Load.
type Option func(*Dataset)

// WithLogger sets the logger used for discovery diagnostics. By default
// diagnostics are discarded.
func WithLogger(log *logrus.Logger) Option {
	return func(d *Dataset) { d.log = log }
}

// WithOptions applies analysis options, of which Load uses the recording
// file extension.
func WithOptions(opts config.Options) Option {
	return func(d *Dataset) { d.extension = opts.Extension }
}

// Load walks root for <corpus>/<child>/<recording> entries and builds a
// snapshot. Entries without the configured extension are skipped. The walk
// itself never fails on unreadable subdirectories; those are logged and
// skipped. Only an unreadable root is an error.
func Load(root string, opts ...Option) (*Dataset, error) {
	d := &Dataset{
		root:       root,
		extension:  config.Default().Extension,
		recordings: make(map[key]string),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = logrus.New()
		d.log.SetOutput(io.Discard)
	}

	id, err := nanoid.New()
	if err != nil {
		return nil, err
	}
	d.id = id

	corpora, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dataset root %s: %w", root, err)
	}

	for _, corpus := range corpora {
		if !corpus.IsDir() {
			continue
		}
		corpusPath := filepath.Join(root, corpus.Name())

		children, err := os.ReadDir(corpusPath)
		if err != nil {
			d.log.WithError(err).WithField("corpus", corpus.Name()).
				Warn("skipping unreadable corpus")
			continue
		}

		for _, child := range children {
			if !child.IsDir() {
				continue
			}
			childPath := filepath.Join(corpusPath, child.Name())

			recordings, err := os.ReadDir(childPath)
			if err != nil {
				d.log.WithError(err).WithFields(logrus.Fields{
					"corpus": corpus.Name(),
					"child":  child.Name(),
				}).Warn("skipping unreadable child directory")
				continue
			}

			for _, rec := range recordings {
				if rec.IsDir() || !strings.HasSuffix(rec.Name(), d.extension) {
					d.log.WithField("entry", rec.Name()).
						Debug("skipping non-recording entry")
					continue
				}
				k := key{corpus.Name(), child.Name(), rec.Name()}
				d.recordings[k] = filepath.Join(childPath, rec.Name())
			}
		}
	}

	d.log.WithFields(logrus.Fields{
		"dataset_id": d.id,
		"recordings": len(d.recordings),
	}).Info("dataset loaded")

	return d, nil
}

// ID returns the snapshot's generated identifier.
func (d *Dataset) ID() string { return d.id }

// Root returns the dataset root directory.
func (d *Dataset) Root() string { return d.root }

// Len returns the number of recordings in the snapshot.
func (d *Dataset) Len() int { return len(d.recordings) }

// Open reads a recording's raw lines and parses them into a Transcript.
// It returns ErrRecordingNotFound when the triple is not in the snapshot
// or the file has disappeared since Load.
func (d *Dataset) Open(corpus, child, recording string) (*childes.Transcript, error) {
	path, ok := d.recordings[key{corpus, child, recording}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s/%s", ErrRecordingNotFound, corpus, child, recording)
	}

	lines, err := d.readLines(path)
	if err != nil {
		d.log.WithError(err).WithField("path", path).Error("reading recording")
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s/%s/%s", ErrRecordingNotFound, corpus, child, recording)
		}
		return nil, fmt.Errorf("read recording %s: %w", path, err)
	}

	t := childes.New(lines)
	t.Corpus = corpus
	t.Child = child
	t.Recording = recording
	return t, nil
}

// RawLines returns a recording's raw file lines without parsing them. This
// is the fetch capability the core consumes.
func (d *Dataset) RawLines(corpus, child, recording string) ([]string, error) {
	path, ok := d.recordings[key{corpus, child, recording}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s/%s", ErrRecordingNotFound, corpus, child, recording)
	}
	return d.readLines(path)
}

// Corpora returns the corpus names in the snapshot, sorted.
func (d *Dataset) Corpora() []string {
	seen := map[string]bool{}
	for k := range d.recordings {
		seen[k.corpus] = true
	}
	return sortedKeys(seen)
}

// Children returns the child names under a corpus, sorted. It returns
// ErrCorpusNotFound for an unknown corpus.
func (d *Dataset) Children(corpus string) ([]string, error) {
	seen := map[string]bool{}
	for k := range d.recordings {
		if k.corpus == corpus {
			seen[k.child] = true
		}
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCorpusNotFound, corpus)
	}
	return sortedKeys(seen), nil
}

// Recordings returns the recording names under a corpus and child, sorted.
// It returns ErrChildNotFound for an unknown pair.
func (d *Dataset) Recordings(corpus, child string) ([]string, error) {
	seen := map[string]bool{}
	for k := range d.recordings {
		if k.corpus == corpus && k.child == child {
			seen[k.recording] = true
		}
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrChildNotFound, corpus, child)
	}
	return sortedKeys(seen), nil
}

func (d *Dataset) readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
