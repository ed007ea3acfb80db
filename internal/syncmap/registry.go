package syncmap

import (
	"sort"

	"tala/internal/logging"
	"tala/internal/runconf"
)

// Format identifies a supported sync map format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatSMIL Format = "smil"
	FormatSRT  Format = "srt"
	FormatSSV  Format = "ssv"
	FormatTSV  Format = "tsv"
	FormatTXT  Format = "txt"
	FormatVTT  Format = "vtt"
)

// Codec is a reader/writer bound to one format. Implementations
// additionally provide Parser, Formatter, or both.
type Codec interface {
	Variant() Format
}

// Parser populates the given sync map from input text.
type Parser interface {
	Codec
	Parse(input string, sm *SyncMap) error
}

// Formatter serializes the given sync map to text.
type Formatter interface {
	Codec
	Format(sm *SyncMap) (string, error)
}

// Factory constructs a codec for one format variant. Construction may
// fail with a MissingParameterError when a required parameter for
// that format is absent.
type Factory func(variant Format, params Parameters, rconf *runconf.Config, log *logging.Logger) (Codec, error)

var registry = map[Format]Factory{}

// Register binds a format to its codec factory. Not safe for
// concurrent use; call from init.
func Register(f Format, fn Factory) {
	registry[f] = fn
}

// Registered reports whether a codec factory exists for f.
func Registered(f Format) bool {
	_, ok := registry[f]
	return ok
}

// Formats returns the registered formats in sorted order.
func Formats() []Format {
	out := make([]Format, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
