// Package format provides the concrete sync map codecs and registers
// them with the syncmap registry.
package format

import (
	"path/filepath"
	"strings"

	"tala/internal/syncmap"
)

func init() {
	syncmap.Register(syncmap.FormatSRT, newSRTCodec)
	syncmap.Register(syncmap.FormatVTT, newVTTCodec)
	syncmap.Register(syncmap.FormatJSON, newJSONCodec)
	syncmap.Register(syncmap.FormatTXT, newTXTCodec)
	syncmap.Register(syncmap.FormatCSV, newTabularCodec)
	syncmap.Register(syncmap.FormatTSV, newTabularCodec)
	syncmap.Register(syncmap.FormatSSV, newTabularCodec)
	syncmap.Register(syncmap.FormatSMIL, newSMILCodec)
}

// FromPath infers a sync map format from a file extension.
func FromPath(path string) (syncmap.Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return syncmap.FormatSRT, true
	case ".vtt":
		return syncmap.FormatVTT, true
	case ".json":
		return syncmap.FormatJSON, true
	case ".txt":
		return syncmap.FormatTXT, true
	case ".csv":
		return syncmap.FormatCSV, true
	case ".tsv":
		return syncmap.FormatTSV, true
	case ".ssv":
		return syncmap.FormatSSV, true
	case ".smil":
		return syncmap.FormatSMIL, true
	default:
		return "", false
	}
}
