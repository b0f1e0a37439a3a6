package vi

// Control tokens fed to the parser. Key events collapse onto plain
// runes so the grammar only ever deals with one token type.
const (
	tokCtrlB = rune(0x02)
	tokCtrlD = rune(0x04)
	tokCtrlE = rune(0x05)
	tokCtrlF = rune(0x06)
	tokBS    = rune(0x08)
	tokCtrlI = rune(0x09)
	tokEnter = rune(0x0a)
	tokCtrlO = rune(0x0f)
	tokCtrlR = rune(0x12)
	tokCtrlU = rune(0x15)
	tokCtrlV = rune(0x16)
	tokCtrlY = rune(0x19)
	tokDEL   = rune(0x7f)
)

// ctrlTok folds a letter onto its control token (ctrlTok('d') == 0x04).
func ctrlTok(r rune) rune {
	return r & 0x1f
}
