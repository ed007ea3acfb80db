package syncmap

// Parameter keys recognized by the sync map core. Any other key is
// passed through to codecs untouched.
const (
	// ParamLanguage overrides the language of every fragment after a
	// successful read.
	ParamLanguage = "language"

	// ParamOutputFormat selects the output format offered by the
	// fine tuning page.
	ParamOutputFormat = "output_format"

	// SMIL-specific references, consumed by the SMIL codec and the
	// fine tuning page.
	ParamSMILAudioRef = "smil_audio_ref"
	ParamSMILPageRef  = "smil_page_ref"
)

// Parameters is an open mapping of string keys to values, handed to
// codec constructors as-is.
type Parameters map[string]string

// Get returns the value for key and whether it is present. Safe on a
// nil map.
func (p Parameters) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p[key]
	return v, ok
}
