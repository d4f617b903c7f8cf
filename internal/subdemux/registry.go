package subdemux

// parserFunc drives one cue out of the line cursor, given the demuxer's
// mutable per-parse state. It returns an error (io.EOF-shaped, or any
// other error) the first time it cannot produce another cue; the demuxer
// loop treats that as the natural end of the stream, exactly as the
// reference decoder's pf_read callbacks returning VLC_EGENERIC does.
type parserFunc func(st *demuxState, lb *LineBuffer, idx int) (Cue, error)

// formatTable is the Go analogue of the reference decoder's
// sub_read_subtitle_function table: one row per format, carrying the
// internal slug, the display name from spec.md §6, and the parser to
// drive. TTML has no parse entry — it is dispatched to the TTML adapter
// before the LineBuffer loop ever starts.
var formatTable = map[FormatTag]formatInfo{
	FormatMicroDVD:    {FormatMicroDVD, "microdvd", "MicroDVD", parseMicroDVD},
	FormatSubRip:      {FormatSubRip, "subrip", "SubRIP", parseSubRip},
	FormatSubViewer:   {FormatSubViewer, "subviewer", "SubViewer", parseSubViewer},
	FormatSSA1:        {FormatSSA1, "ssa1", "SSA-1", parseSSA},
	FormatSSA24:       {FormatSSA24, "ssa2-4", "SSA-2/3/4", parseSSA},
	FormatASS:         {FormatASS, "ass", "SSA/ASS", parseSSA},
	FormatVPlayer:     {FormatVPlayer, "vplayer", "VPlayer", parseVPlayer},
	FormatSAMI:        {FormatSAMI, "sami", "SAMI", parseSAMI},
	FormatDVDSubtitle: {FormatDVDSubtitle, "dvdsubtitle", "DVDSubtitle", parseDVDSubtitle},
	FormatMPL2:        {FormatMPL2, "mpl2", "MPL2", parseMPL2},
	FormatAQT:         {FormatAQT, "aqt", "AQTitle", parseAQT},
	FormatPJS:         {FormatPJS, "pjs", "PhoenixSub", parsePJS},
	FormatMPSub:       {FormatMPSub, "mpsub", "MPSub", parseMPSub},
	FormatJacoSub:     {FormatJacoSub, "jacosub", "JacoSub", parseJacoSub},
	FormatPSB:         {FormatPSB, "psb", "PowerDivx", parsePSB},
	FormatRealText:    {FormatRealText, "realtext", "RealText", parseRealText},
	FormatDKS:         {FormatDKS, "dks", "DKS", parseDKS},
	FormatSubViewer1:  {FormatSubViewer1, "subviewer1", "Subviewer 1", parseSubViewer1},
	FormatWebVTT:      {FormatWebVTT, "text/vtt", "WebVTT", parseWebVTTOrSBV},
	FormatSBV:         {FormatSBV, "sbv", "SBV", parseWebVTTOrSBV},
	FormatTTML:        {FormatTTML, "ttml", "TTML", nil},
	FormatUnknown:     {FormatUnknown, "", "Unknown", nil},
}

// lookupParser returns the parser function registered for tag, and
// whether one exists (false for FormatUnknown and FormatTTML).
func lookupParser(tag FormatTag) (parserFunc, bool) {
	info, ok := formatTable[tag]
	if !ok || info.parse == nil {
		return nil, false
	}
	return info.parse, true
}
