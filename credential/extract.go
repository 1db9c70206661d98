package credential

import (
	"regexp"
	"strings"

	"github.com/lectern-cli/lectern/util"
)

// Rule is a single named extraction pattern. Rules are tried in declared
// order and the first match wins, so more specific spellings come first.
type Rule struct {
	Name    string
	pattern *regexp.Regexp
	group   string
}

// Apply runs the rule against normalized request text and returns the
// captured value, or an empty string when the rule does not match.
func (r Rule) Apply(text string) string {
	return util.ReGroups(r.pattern, text)[r.group]
}

// AuthorizationRules locate the bearer token in a raw request description.
// Both -H and --header flag spellings and both quote styles are supported;
// an explicit "Bearer" scheme inside the header value is absorbed.
var AuthorizationRules = []Rule{
	{
		Name:    "auth-header-double-quoted",
		pattern: regexp.MustCompile(`(?i)(?:-H|--header)\s+"authorization:\s*(?:bearer\s+)?(?P<token>[^"]+)"`),
		group:   "token",
	},
	{
		Name:    "auth-header-single-quoted",
		pattern: regexp.MustCompile(`(?i)(?:-H|--header)\s+'authorization:\s*(?:bearer\s+)?(?P<token>[^']+)'`),
		group:   "token",
	},
}

// CookieRules locate the cookie value, supplied either via the dedicated
// cookie flag or via a generic header flag naming "Cookie".
var CookieRules = []Rule{
	{
		Name:    "cookie-flag-double-quoted",
		pattern: regexp.MustCompile(`(?i)(?:-b|--cookie)\s+"(?P<cookie>[^"]+)"`),
		group:   "cookie",
	},
	{
		Name:    "cookie-flag-single-quoted",
		pattern: regexp.MustCompile(`(?i)(?:-b|--cookie)\s+'(?P<cookie>[^']+)'`),
		group:   "cookie",
	},
	{
		Name:    "cookie-header-double-quoted",
		pattern: regexp.MustCompile(`(?i)(?:-H|--header)\s+"cookie:\s*(?P<cookie>[^"]+)"`),
		group:   "cookie",
	},
	{
		Name:    "cookie-header-single-quoted",
		pattern: regexp.MustCompile(`(?i)(?:-H|--header)\s+'cookie:\s*(?P<cookie>[^']+)'`),
		group:   "cookie",
	},
}

// ExtractionError names the credential fields that could not be located.
type ExtractionError struct {
	Missing []string
}

func (e *ExtractionError) Error() string {
	return "could not locate " + strings.Join(e.Missing, ", ") + " in request text"
}

var (
	// Line continuations: a backslash (POSIX shells) or caret (cmd.exe)
	// immediately before a line break joins the next line.
	lineContinuation = regexp.MustCompile(`[\\^]\s*\r?\n`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// Normalize collapses line continuations and whitespace runs so a request
// pasted across multiple lines is matched as one logical line.
func Normalize(raw string) string {
	raw = lineContinuation.ReplaceAllString(raw, " ")
	return whitespaceRun.ReplaceAllString(raw, " ")
}

// Extract parses a raw request description into a credential pair.
// The parse is pure: no IO, no validation beyond locating both fields.
func Extract(raw string) (Credential, error) {
	text := Normalize(raw)

	var cred Credential
	for _, rule := range AuthorizationRules {
		if token := rule.Apply(text); token != "" {
			cred.Authorization = bearerPrefix + strings.TrimSpace(token)
			break
		}
	}
	for _, rule := range CookieRules {
		if cookie := rule.Apply(text); cookie != "" {
			cred.Cookie = strings.TrimSpace(cookie)
			break
		}
	}

	var missing []string
	if cred.Authorization == "" {
		missing = append(missing, "Authorization")
	}
	if cred.Cookie == "" {
		missing = append(missing, "Cookie")
	}
	if len(missing) > 0 {
		return Credential{}, &ExtractionError{Missing: missing}
	}

	return cred, nil
}
