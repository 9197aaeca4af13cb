package entities

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
)

// A protocol is the 4-digit creation year followed by 6 digits, e.g. 2024000001.
var (
	protocoloPattern = regexp.MustCompile(`^\d{10}$`)
	protocoloDisplay = regexp.MustCompile(`(\d{4})(\d{6})`)
)

// NewProtocolo draws a protocol for a record created at now.
func NewProtocolo(now time.Time, r *rand.Rand) string {
	var n int
	if r != nil {
		n = r.IntN(999999)
	} else {
		n = rand.IntN(999999)
	}
	return fmt.Sprintf("%04d%06d", now.Year(), n)
}

func IsValidProtocolo(p string) bool {
	return protocoloPattern.MatchString(p)
}

// FormatProtocolo renders the first 10-digit run as YYYY-NNNNNN ("2024000001" ->
// "2024-000001"). Anything else is returned unchanged.
func FormatProtocolo(p string) string {
	loc := protocoloDisplay.FindStringSubmatchIndex(p)
	if loc == nil {
		return p
	}
	return p[:loc[0]] + p[loc[2]:loc[3]] + "-" + p[loc[4]:loc[5]] + p[loc[1]:]
}

// NormalizeProtocolo accepts the display form and returns the stored one.
func NormalizeProtocolo(p string) string {
	p = strings.TrimSpace(p)
	return strings.NewReplacer("-", "", " ", "", ".", "", "/", "").Replace(p)
}
