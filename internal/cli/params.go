package cli

import (
	"fmt"
	"strings"

	"tala/internal/format"
	"tala/internal/syncmap"

	"golang.org/x/text/language"
)

// resolveFormat picks a sync map format from an explicit flag value,
// falling back to the file extension.
func resolveFormat(explicit, path string) (syncmap.Format, error) {
	if explicit != "" {
		f := syncmap.Format(strings.ToLower(explicit))
		if !syncmap.Registered(f) {
			return "", fmt.Errorf("unsupported format %q: use one of %v", explicit, syncmap.Formats())
		}
		return f, nil
	}
	f, ok := format.FromPath(path)
	if !ok {
		return "", fmt.Errorf("cannot infer format from %q: specify it explicitly", path)
	}
	return f, nil
}

// normalizeLanguage validates a language tag and returns its
// canonical form. An empty tag stays empty.
func normalizeLanguage(lang string) (string, error) {
	if lang == "" {
		return "", nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("invalid language tag %q: %w", lang, err)
	}
	return tag.String(), nil
}

// buildParameters assembles the parameter set handed to codecs,
// merging flag values over run configuration defaults. Empty values
// are left out so absence stays observable.
func buildParameters(lang, outputFormat, audioRef, pageRef string) (syncmap.Parameters, error) {
	params := syncmap.Parameters{}

	if lang == "" {
		lang = rconf.DefaultLanguage
	}
	normalized, err := normalizeLanguage(lang)
	if err != nil {
		return nil, err
	}
	if normalized != "" {
		params[syncmap.ParamLanguage] = normalized
	}

	if outputFormat != "" {
		params[syncmap.ParamOutputFormat] = strings.ToLower(outputFormat)
	}
	if audioRef != "" {
		params[syncmap.ParamSMILAudioRef] = audioRef
	}
	if pageRef != "" {
		params[syncmap.ParamSMILPageRef] = pageRef
	}
	return params, nil
}
