// Package syncmap implements synchronization maps: trees of text
// fragments annotated with begin/end time intervals, read and written
// in several external formats through a codec registry.
package syncmap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tala/internal/logging"
	"tala/internal/runconf"
)

// SyncMap is a tree of fragments pairing text with a time interval.
// A SyncMap is not safe for concurrent use.
type SyncMap struct {
	tree  *Tree
	rconf *runconf.Config
	log   *logging.Logger
}

// New creates an empty sync map. Nil arguments fall back to a default
// configuration and a no-op logger.
func New(rconf *runconf.Config, log *logging.Logger) *SyncMap {
	if rconf == nil {
		rconf = runconf.Default()
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &SyncMap{
		tree:  NewTree(nil),
		rconf: rconf,
		log:   log,
	}
}

// Tree returns the fragment tree. The root node carries no payload.
func (s *SyncMap) Tree() *Tree {
	return s.tree
}

// Fragments returns the payloads of the root's non-empty direct
// children, in document order. The traversal is fresh on every call.
func (s *SyncMap) Fragments() []*Fragment {
	children := s.tree.ChildrenNotEmpty()
	out := make([]*Fragment, 0, len(children))
	for _, child := range children {
		out = append(out, child.Value())
	}
	return out
}

// Len returns the number of top-level fragments.
func (s *SyncMap) Len() int {
	return len(s.Fragments())
}

// IsSingleLevel reports whether the sync map is a flat list of
// fragments rather than a hierarchical tree.
func (s *SyncMap) IsSingleLevel() bool {
	return s.tree.Height() <= 2
}

func (s *SyncMap) String() string {
	fragments := s.Fragments()
	lines := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f == nil {
			continue
		}
		lines = append(lines, f.String())
	}
	return strings.Join(lines, "\n")
}

// AddFragment attaches fragment as the last child of the root node,
// or as the first child when asLast is false.
func (s *SyncMap) AddFragment(fragment *Fragment, asLast bool) error {
	if fragment == nil || fragment.Text == nil {
		return fmt.Errorf("fragment is nil or has no text: %w", ErrInvalidFragment)
	}
	s.tree.AddChild(NewTree(fragment), asLast)
	return nil
}

// Clear removes all fragments, resetting the sync map to an empty
// tree.
func (s *SyncMap) Clear() {
	s.log.Debugw("Clearing sync map")
	s.tree = NewTree(nil)
}

// Read parses the file at path in the given format and adds the
// resulting fragments to this sync map. When params carries a
// language override, every fragment's language is overwritten with it
// after parsing. A codec that fails mid-parse may leave the tree
// partially populated.
func (s *SyncMap) Read(format Format, path string, params Parameters) error {
	factory, err := s.lookupFormat(format)
	if err != nil {
		return err
	}
	if !fileCanBeRead(path) {
		return fmt.Errorf("cannot read sync map file %q: %w", path, ErrUnreadablePath)
	}

	s.log.Debugw("Reading sync map",
		"format", format,
		"path", path,
	)

	codec, err := factory(format, params, s.rconf, s.log)
	if err != nil {
		return err
	}
	parser, ok := codec.(Parser)
	if !ok {
		return fmt.Errorf("format %q does not support reading: %w", format, ErrInvalidFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read sync map file %q: %w", path, ErrUnreadablePath)
	}
	if err := parser.Parse(string(data), s); err != nil {
		return err
	}

	if language, ok := params.Get(ParamLanguage); ok {
		s.log.Debugw("Overwriting fragment language", "language", language)
		s.tree.EachFragment(func(f *Fragment) {
			if f.Text != nil {
				f.Text.Language = language
			}
		})
	}
	return nil
}

// Write serializes this sync map to the file at path in the given
// format, creating parent directories as needed.
func (s *SyncMap) Write(format Format, path string, params Parameters) error {
	factory, err := s.lookupFormat(format)
	if err != nil {
		return err
	}
	if !fileCanBeWritten(path) {
		return fmt.Errorf("cannot write sync map file %q: %w", path, ErrUnwritablePath)
	}

	s.log.Debugw("Writing sync map",
		"format", format,
		"path", path,
	)

	// the constructor checks for required parameters, if any, and
	// fails with a MissingParameterError before anything is written
	codec, err := factory(format, params, s.rconf, s.log)
	if err != nil {
		return err
	}
	formatter, ok := codec.(Formatter)
	if !ok {
		return fmt.Errorf("format %q does not support writing: %w", format, ErrInvalidFormat)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create parent directories for %q: %w", path, ErrUnwritablePath)
	}
	text, err := formatter.Format(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("cannot write sync map file %q: %w", path, ErrUnwritablePath)
	}
	return nil
}

func (s *SyncMap) lookupFormat(format Format) (Factory, error) {
	if format == "" {
		return nil, fmt.Errorf("sync map format is empty: %w", ErrInvalidFormat)
	}
	factory, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("sync map format %q is not allowed: %w", format, ErrInvalidFormat)
	}
	return factory, nil
}

func fileCanBeRead(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// fileCanBeWritten probes the output path without creating any
// directories: for an existing file it must be openable for writing,
// otherwise the nearest existing ancestor must be a writable
// directory.
func fileCanBeWritten(path string) bool {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return false
		}
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return false
		}
		_ = f.Close()
		return true
	}

	dir := filepath.Dir(path)
	for {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return false
			}
			probe, err := os.CreateTemp(dir, ".tala-probe-*")
			if err != nil {
				return false
			}
			name := probe.Name()
			_ = probe.Close()
			_ = os.Remove(name)
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}
