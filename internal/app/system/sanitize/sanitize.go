// Package sanitize neutralizes user-submitted free text before it is relayed
// into Telegram messages.
//
// Relayed text is rendered by the Bot API with HTML parsing enabled on the
// receiving side, so markup characters in a form field would otherwise be
// interpreted. The policy here is strict: no tags survive, and the
// characters "<", ">", "/" are removed outright rather than entity-escaped.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

var markupChars = strings.NewReplacer("<", "", ">", "", "/", "")

// Message returns s with all markup stripped and the characters <, >, /
// removed. Entities introduced by the sanitizer are decoded back so the
// result is plain text, not an HTML-escaped form of it.
func Message(s string) string {
	stripped := html.UnescapeString(policy.Sanitize(s))
	return strings.TrimSpace(markupChars.Replace(stripped))
}
