package chemicals

// Method names.
const (
	CCCBDB = "CCCBDB"
	MULLER = "MULLER"
	POLING = "POLING"

	Ontario = "Ontario Limits"

	IARC     = "International Agency for Research on Cancer"
	NTP      = "National Toxicology Program 13th Report on Carcinogens"
	Unlisted = "Unlisted"

	IEC         = "IEC 60079-20-1 (2010)"
	NFPA        = "NFPA 497 (2008)"
	Serat       = "Serat DIPPR (2017)"
	Suzuki      = "Suzuki (1994)"
	CrowlLouvar = "Crowl and Louvar (2001)"
)

// Property names in the bundled catalog.
const (
	propDipole        = "dipole"
	propTWA           = "TWA"
	propSTEL          = "STEL"
	propCeiling       = "Ceiling"
	propSkin          = "Skin"
	propCarcinogen    = "Carcinogen"
	propTFlash        = "T_flash"
	propTAutoignition = "T_autoignition"
	propLFL           = "LFL"
	propUFL           = "UFL"
)

// DipoleMomentAllMethods returns every dipole moment method.
func DipoleMomentAllMethods() []string { return []string{CCCBDB, MULLER, POLING} }

// TWAAllMethods returns every time-weighted average limit method.
func TWAAllMethods() []string { return []string{Ontario} }

// STELAllMethods returns every short-term exposure limit method.
func STELAllMethods() []string { return []string{Ontario} }

// CeilingAllMethods returns every ceiling limit method.
func CeilingAllMethods() []string { return []string{Ontario} }

// SkinAllMethods returns every skin absorption method.
func SkinAllMethods() []string { return []string{Ontario} }

// CarcinogenAllMethods returns every carcinogen listing.
func CarcinogenAllMethods() []string { return []string{IARC, NTP} }

// TFlashAllMethods returns every flash point method.
func TFlashAllMethods() []string { return []string{IEC, NFPA, Serat} }

// TAutoignitionAllMethods returns every autoignition temperature method.
func TAutoignitionAllMethods() []string { return []string{IEC, NFPA} }

// LFLAllMethods returns every lower flammability limit method.
func LFLAllMethods() []string { return []string{IEC, NFPA, Suzuki, CrowlLouvar} }

// UFLAllMethods returns every upper flammability limit method.
func UFLAllMethods() []string { return []string{IEC, NFPA, Suzuki, CrowlLouvar} }
