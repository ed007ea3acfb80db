package format

import (
	"fmt"
	"strings"

	"tala/internal/logging"
	"tala/internal/runconf"
	"tala/internal/syncmap"
)

// EPUB 3 media overlay output. Requires the audio and page reference
// parameters; the run configuration may supply fallbacks.
type smilCodec struct {
	variant  syncmap.Format
	audioRef string
	pageRef  string
	log      *logging.Logger
}

func newSMILCodec(variant syncmap.Format, params syncmap.Parameters, rconf *runconf.Config, log *logging.Logger) (syncmap.Codec, error) {
	audioRef, _ := params.Get(syncmap.ParamSMILAudioRef)
	if audioRef == "" {
		audioRef = rconf.SMILAudioRef
	}
	if audioRef == "" {
		return nil, &syncmap.MissingParameterError{Param: syncmap.ParamSMILAudioRef}
	}

	pageRef, _ := params.Get(syncmap.ParamSMILPageRef)
	if pageRef == "" {
		pageRef = rconf.SMILPageRef
	}
	if pageRef == "" {
		return nil, &syncmap.MissingParameterError{Param: syncmap.ParamSMILPageRef}
	}

	return &smilCodec{
		variant:  variant,
		audioRef: audioRef,
		pageRef:  pageRef,
		log:      log,
	}, nil
}

func (c *smilCodec) Variant() syncmap.Format {
	return c.variant
}

func (c *smilCodec) Format(sm *syncmap.SyncMap) (string, error) {
	var sb strings.Builder

	sb.WriteString(`<smil xmlns="http://www.w3.org/ns/SMIL" xmlns:epub="http://www.idpf.org/2007/ops" version="3.0">` + "\n")
	sb.WriteString(" <body>\n")
	sb.WriteString(fmt.Sprintf("  <seq id=\"seq000001\" epub:textref=\"%s\">\n", c.pageRef))

	for i, fragment := range sm.Fragments() {
		if fragment == nil || fragment.Text == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("   <par id=\"par%06d\">\n", i+1))
		sb.WriteString(fmt.Sprintf("    <text src=\"%s#%s\"/>\n",
			c.pageRef, fragment.Text.Identifier))
		sb.WriteString(fmt.Sprintf("    <audio clipBegin=\"%s\" clipEnd=\"%s\" src=\"%s\"/>\n",
			formatClockTime(fragment.Begin, "."),
			formatClockTime(fragment.End, "."),
			c.audioRef))
		sb.WriteString("   </par>\n")
	}

	sb.WriteString("  </seq>\n")
	sb.WriteString(" </body>\n")
	sb.WriteString("</smil>\n")
	return sb.String(), nil
}
