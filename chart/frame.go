package chart

import "strings"

// FrameEntry maps a code prefix to its frame layer name.
type FrameEntry struct {
	Prefix string
	Frame  string
}

// FrameTable resolves frame layers. Entries are scanned in order and the
// first prefix match wins; a nil table resolves nothing.
type FrameTable []FrameEntry

// Frame returns the frame layer name for code.
func (t FrameTable) Frame(code string) (string, bool) {
	for _, e := range t {
		if strings.HasPrefix(code, e.Prefix) {
			return e.Frame, true
		}
	}
	return "", false
}

// LegacyFrames is the table existing documents were authored against.
//
// Its Drive secondary entry repeats the PPRPA prefix, so it never matches and
// PPPSA codes are painted without a frame. Use CorrectedFrames to give them
// their PPPSA-R frame.
var LegacyFrames = FrameTable{
	{"PPRPA", "PPRPA-R"},
	{"PPRPB", "PPRPB-R"},
	{"PPRSA", "PPRSA-R"},
	{"PPRSB", "PPRSB-R"},
	{"PPPPA", "PPPPA-R"},
	{"PPRPA", "PPPSA-R"},
	{"APPPA", "APPPA-R"},
	{"APPPB", "APPPB-R"},
	{"APPSA", "APPSA-R"},
	{"APPSB", "APPSB-R"},
	{"RPPPA", "RPPPA-R"},
	{"RPPPB", "RPPPB-R"},
	{"RPPSA", "RPPSA-R"},
	{"RPPSB", "RPPSB-R"},

	{"NEMPA", "NEMPA-R"},
	{"NEMSA", "NEMSA-R"},
	{"PNEPA", "PNEPA-R"},
	{"PNESA", "PNESA-R"},
	{"ANEPA", "ANEPA-R"},
	{"ANESA", "ANESA-R"},
	{"RNEPA", "RNEPA-R"},
	{"RNESA", "RNESA-R"},

	{"PEXPA", "PEXPA-R"},
	{"PEXPB", "PEXPB-R"},
	{"PEXSA", "PEXSA-R"},
	{"PEXSB", "PEXSB-R"},
	{"PPEPA", "PPEPA-R"},
	{"PPESA", "PPESA-R"},
	{"APEPA", "APEPA-R"},
	{"APEPB", "APEPB-R"},
	{"APESA", "APESA-R"},
	{"APESB", "APESB-R"},
	{"RPEPA", "RPEPA-R"},
	{"RPEPB", "RPEPB-R"},
	{"RPESA", "RPESA-R"},
	{"RPESB", "RPESB-R"},
}

// CorrectedFrames is LegacyFrames with the Drive secondary entry keyed on
// PPPSA. Charts rendered with it paint one more frame than legacy charts
// whenever the deep personality secondary is significant.
var CorrectedFrames = correctDriveSecondary(LegacyFrames)

func correctDriveSecondary(t FrameTable) FrameTable {
	out := make(FrameTable, len(t))
	copy(out, t)
	for i, e := range out {
		if e.Frame == "PPPSA-R" {
			out[i].Prefix = "PPPSA"
		}
	}
	return out
}
