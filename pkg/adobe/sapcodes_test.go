package adobe

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductName(t *testing.T) {
	assert.Equal(t, "Adobe Photoshop", ProductName("PHSP"))
	assert.Equal(t, "Adobe Acrobat Pro", ProductName("APRO"))
	assert.Equal(t, "unknown", ProductName("NOPE"))
}

func TestIsValidSAPCode(t *testing.T) {
	assert.True(t, IsValidSAPCode("ILST"))
	assert.False(t, IsValidSAPCode("ilst"))
	assert.False(t, IsValidSAPCode(""))
}

func TestSAPCodes(t *testing.T) {
	codes := SAPCodes()

	assert.Len(t, codes, 23)
	assert.True(t, sort.StringsAreSorted(codes))
	assert.Contains(t, codes, "PHSP")
	assert.Contains(t, codes, "SPRK")
}

func TestBlockingApplications(t *testing.T) {
	assert.Equal(t, []string{"Microsoft Word", "Safari"}, BlockingApplications("APRO"))
	assert.Empty(t, BlockingApplications("PHSP"))
}

func TestLocales(t *testing.T) {
	assert.True(t, IsSupportedLocale("en_GB"))
	assert.True(t, IsSupportedLocale("ja_JP"))
	assert.False(t, IsSupportedLocale("en_ZZ"))
	assert.Contains(t, Locales(), "en_GB")
}

func TestWriteSAPCodes(t *testing.T) {
	var buf bytes.Buffer
	WriteSAPCodes(&buf)

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "Sourced from: https://"))
	assert.Contains(t, output, "PHSP")
	assert.Contains(t, output, "Adobe Photoshop")

	// Header plus one line per code.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, len(SAPCodes())+1)

	// Codes are padded to a uniform column.
	assert.Contains(t, output, " AME   - Adobe Media Encoder")
}

func TestWriteLocales(t *testing.T) {
	var buf bytes.Buffer
	WriteLocales(&buf)

	assert.Contains(t, buf.String(), "en_GB")
	assert.Contains(t, buf.String(), "zh_TW")
}
