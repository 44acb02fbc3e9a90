package wdf

import (
	"os"
	"strings"
)

// DetectColorSupport returns true if the current environment likely supports
// ANSI colors. It honors the NO_COLOR and CLICOLOR conventions; whether the
// output is actually a terminal is the caller's concern.
func DetectColorSupport() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CLICOLOR_FORCE") != "" && os.Getenv("CLICOLOR_FORCE") != "0" {
		return true
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "dumb" {
		return false
	}
	return true
}
