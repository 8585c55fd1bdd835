package syntax

// ExtensionType is the fill element extension type that carries SBR data.
type ExtensionType uint8

// Extension types.
const (
	ExtSBRData    ExtensionType = 13 // SBR payload
	ExtSBRDataCRC ExtensionType = 14 // SBR payload preceded by a CRC
)

// Extension ids inside sbr_extended_data.
const (
	ExtensionIDPS = 2 // parametric stereo
)

// Bit length constants for parsing.
const (
	LenExtensionType = 4
	LenCRC           = 10
	LenExtensionID   = 2
)

// FrameClass selects how the envelope time borders are coded.
type FrameClass uint8

// Frame classes.
const (
	FixFix FrameClass = iota // fixed leading and trailing border
	FixVar                   // fixed lead, variable trail
	VarFix                   // variable lead, fixed trail
	VarVar                   // both variable
)

func (c FrameClass) String() string {
	switch c {
	case FixFix:
		return "FixFix"
	case FixVar:
		return "FixVar"
	case VarFix:
		return "VarFix"
	case VarVar:
		return "VarVar"
	}
	return "unknown"
}

// InvfMode is the per noise band inverse filtering level.
type InvfMode uint8

// Inverse filtering levels.
const (
	InvfOff InvfMode = iota
	InvfLow
	InvfMid
	InvfStrong
)
