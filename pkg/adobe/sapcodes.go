package adobe

import (
	"fmt"
	"io"
	"sort"
)

// sapCodesSource documents where the SAP code table comes from.
const sapCodesSource = "https://helpx.adobe.com/uk/enterprise/admin-guide.html/uk/enterprise/kb/apps-deployed-without-base-versions.ug.html"

// sapCodes maps Adobe SAP product codes to human readable product names.
var sapCodes = map[string]string{
	"AEFT":  "Adobe After Effects",
	"AICY":  "Adobe InCopy",
	"AME":   "Adobe Media Encoder",
	"APRO":  "Adobe Acrobat Pro",
	"AUDT":  "Adobe Audition",
	"CHAR":  "Adobe Character Animator",
	"DRWV":  "Adobe Dreamweaver",
	"ESHR":  "Adobe Dimension",
	"FLPR":  "Adobe Animate and Mobile Device Packaging",
	"FRSC":  "Adobe Fresco",
	"IDSN":  "Adobe InDesign",
	"ILST":  "Adobe Illustrator",
	"KBRG":  "Adobe Bridge",
	"LRCC":  "Adobe Lightroom",
	"LTRM":  "Adobe Lightroom Classic",
	"PHSP":  "Adobe Photoshop",
	"PPRO":  "Adobe Premiere Pro",
	"PRLD":  "Adobe Prelude",
	"RUSH":  "Adobe Premiere Rush",
	"SBSTA": "Adobe Substance Alchemist",
	"SBSTD": "Adobe Substance Designer",
	"SBSTP": "Adobe Substance Painter",
	"SPRK":  "Adobe XD",
}

// blockingApps maps SAP codes to applications that must not be running
// while the product installs.
var blockingApps = map[string][]string{
	"APRO": {"Microsoft Word", "Safari"},
}

// supportedLocales are the installer locale codes Adobe ships packages for.
var supportedLocales = []string{
	"da_DK", "de_DE", "en_AE", "en_GB", "en_IL", "en_US", "en_XM",
	"es_ES", "es_MX", "fi_FI", "fr_CA", "fr_FR", "fr_MA", "fr_XM",
	"hu_HU", "it_IT", "ja_JP", "ko_KR", "nb_NO", "nl_NL", "no_NO",
	"pl_PL", "pt_BR", "ru_RU", "sv_SE", "tr_TR", "uk_UA", "zh_CN", "zh_TW",
}

// ProductName returns the human readable product name for a SAP code, or
// "unknown" when the code is not in the table.
func ProductName(sapCode string) string {
	if name, ok := sapCodes[sapCode]; ok {
		return name
	}
	return "unknown"
}

// IsValidSAPCode reports whether the code is in the SAP code table.
func IsValidSAPCode(sapCode string) bool {
	_, ok := sapCodes[sapCode]
	return ok
}

// SAPCodes returns the known SAP codes sorted alphabetically.
func SAPCodes() []string {
	codes := make([]string, 0, len(sapCodes))
	for code := range sapCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// BlockingApplications returns the applications that block installation of
// the product with the given SAP code.
func BlockingApplications(sapCode string) []string {
	return blockingApps[sapCode]
}

// Locales returns the supported installer locale codes in order.
func Locales() []string {
	return supportedLocales
}

// IsSupportedLocale reports whether the locale code is one Adobe ships
// installers for.
func IsSupportedLocale(locale string) bool {
	for _, l := range supportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// WriteSAPCodes writes the SAP code table to w, one padded "code - name"
// line per product, with a header naming the source of the table.
func WriteSAPCodes(w io.Writer) {
	padding := 0
	for code := range sapCodes {
		if len(code) > padding {
			padding = len(code)
		}
	}

	fmt.Fprintf(w, "Sourced from: %s\n", sapCodesSource)

	for _, code := range SAPCodes() {
		fmt.Fprintf(w, " %-*s - %s\n", padding, code, sapCodes[code])
	}
}

// WriteLocales writes the supported locale codes to w, one per line.
func WriteLocales(w io.Writer) {
	fmt.Fprintln(w, "Supported locale codes:")
	for _, locale := range supportedLocales {
		fmt.Fprintf(w, " %s\n", locale)
	}
}
