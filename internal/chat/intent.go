package chat

import (
	"regexp"
	"strings"
)

type Intent struct {
	Role     string
	Location string
}

// roleRe is a fixed vocabulary of role/technology keywords. First hit wins;
// there is no stemming or fuzzy matching. The data analyst alternative only
// covers the spaced and joined spellings: "data-analyst" degrades to the
// bare analyst token.
var roleRe = regexp.MustCompile(`\b(react|node|full[-\s]?stack|frontend|backend|java|python|data\s?analyst|analyst|designer|devops|marketing|sales|hr|account|it|engineer|developer|tester|qa)\b`)

var locationRe = regexp.MustCompile(`\b(?:in|near|at)\s+([a-z\s]+)\b`)

var jobQueryKeywords = []string{"job", "vacancy", "opening"}

var jobQueryPrefixes = []string{"find jobs", "find me", "show me", "search jobs"}

// IsJobQuery reports whether the message looks like a job search. It is a
// substring heuristic with no negation awareness: "no jobs please" still
// classifies as a job query.
func IsJobQuery(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range jobQueryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, prefix := range jobQueryPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// ExtractIntent pulls a coarse (role, location) pair out of free text. Either
// field may come back empty when its pattern does not match.
func ExtractIntent(text string) Intent {
	lower := strings.ToLower(text)

	intent := Intent{}
	if m := roleRe.FindStringSubmatch(lower); m != nil {
		intent.Role = m[1]
	}
	if m := locationRe.FindStringSubmatch(lower); m != nil {
		intent.Location = strings.TrimSpace(m[1])
	}
	return intent
}
