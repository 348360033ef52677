package outreach

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// draftReply is the JSON contract expected from the generation provider
type draftReply struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// parseReply extracts subject and body from a provider reply. Models in JSON
// mode still occasionally wrap the object in a markdown fence, so fences are
// stripped before unmarshalling.
func parseReply(raw string) (draftReply, error) {
	content := strings.TrimSpace(raw)

	if strings.Contains(content, "```") {
		parts := strings.Split(content, "```")
		if len(parts) >= 2 {
			content = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[1]), "json"))
		}
	}

	var reply draftReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return draftReply{}, errorRegistry.NewWithCause(ErrBadReply, err).
			WithDetail("reply_prefix", truncate(raw, 120))
	}

	if reply.Subject == "" || reply.Body == "" {
		return draftReply{}, errorRegistry.NewWithMessage(ErrBadReply,
			"provider reply is missing subject or body").
			WithDetail("reply_prefix", truncate(raw, 120))
	}

	return reply, nil
}

// truncate cuts s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
