package outreach

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

var draftDelimiter = strings.Repeat("-", 60)

// RenderText writes drafts in the plain text output contract:
// a SUBJECT line, a blank line, the body, drafts separated by a rule.
func RenderText(w io.Writer, drafts EmailSequence) error {
	for i, d := range drafts {
		if i > 0 {
			if _, err := fmt.Fprintf(w, "\n%s\n\n", draftDelimiter); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "SUBJECT: %s\n\n%s\n", d.Subject, d.Body); err != nil {
			return err
		}
	}
	return nil
}

// RenderJSON writes drafts as an indented JSON document
func RenderJSON(w io.Writer, drafts EmailSequence) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Drafts EmailSequence `json:"drafts"`
	}{Drafts: drafts})
}
