package pkg

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	ugcPolicy    *bluemonday.Policy
	policiesOnce sync.Once
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	policiesOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
		ugcPolicy = bluemonday.UGCPolicy()
		ugcPolicy.RequireNoFollowOnLinks(true)
	})
	return strictPolicy, ugcPolicy
}

// SanitizeText strips all markup and returns plain text, entities decoded.
func SanitizeText(s string) string {
	strict, _ := policies()
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// SanitizeHTML keeps basic formatting markup and drops scripts, styles and event handlers.
func SanitizeHTML(s string) string {
	_, ugc := policies()
	return strings.TrimSpace(ugc.Sanitize(s))
}
