package logparse

import "regexp"

// Agent family labels produced by ClassifyAgent. The set is closed; every
// agent string maps to exactly one of them.
const (
	AgentFirefox = "Firefox"
	AgentChrome  = "Chrome"
	AgentIE      = "Internet Explorer"
	AgentSafari  = "Safari"
	AgentOther   = "Other"

	// AgentNone is returned by summaries over empty input, never by
	// ClassifyAgent itself.
	AgentNone = "None"
)

// Signature patterns for the agent families, matched as case-insensitive
// substring searches in precedence order.
var (
	firefoxRegex = regexp.MustCompile(`(?i)Firefox/\d+`)
	chromeRegex  = regexp.MustCompile(`(?i)Chrome/\d+`)
	ieRegex      = regexp.MustCompile(`(?i)MSIE \d+|Trident/\d+`)
	safariRegex  = regexp.MustCompile(`(?i)Safari/\d+`)
)

// ClassifyAgent assigns a raw client-agent string to a browser family.
// Precedence is Firefox, then Chrome, then Internet Explorer, then Safari.
// Chrome agents also carry a Safari token, so Chrome must be routed before
// the Safari branch runs.
func ClassifyAgent(agent string) string {
	switch {
	case firefoxRegex.MatchString(agent):
		return AgentFirefox
	case chromeRegex.MatchString(agent):
		return AgentChrome
	case ieRegex.MatchString(agent):
		return AgentIE
	case safariRegex.MatchString(agent):
		return AgentSafari
	default:
		return AgentOther
	}
}
