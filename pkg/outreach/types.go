package outreach

import "strings"

// Framework is a named persuasive structure for email copy
type Framework int

const (
	// FrameworkDirect states the offer plainly and asks for the CTA
	FrameworkDirect Framework = iota
	// FrameworkPAS is Pain-Agitate-Solve
	FrameworkPAS
	// FrameworkValue leads with a concrete value claim
	FrameworkValue
	// FrameworkCuriosity opens a loop the reader wants closed
	FrameworkCuriosity
	// FrameworkSocial leads with peer proof
	FrameworkSocial
)

func (f Framework) String() string {
	switch f {
	case FrameworkPAS:
		return "pas"
	case FrameworkValue:
		return "value"
	case FrameworkCuriosity:
		return "curiosity"
	case FrameworkSocial:
		return "social"
	default:
		return "direct"
	}
}

// ParseFramework parses a CLI framework name. The empty string maps to direct.
func ParseFramework(s string) (Framework, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct":
		return FrameworkDirect, nil
	case "pas":
		return FrameworkPAS, nil
	case "value", "value-first":
		return FrameworkValue, nil
	case "curiosity":
		return FrameworkCuriosity, nil
	case "social", "social-proof":
		return FrameworkSocial, nil
	default:
		return FrameworkDirect, errorRegistry.New(ErrUnsupportedFramework).
			WithDetail("framework", s).
			WithDetail("supported", "pas, value, curiosity, social, direct")
	}
}

// GenerationRequest is the immutable input for one generation run.
// Target and Offer are required; everything else refines the output.
type GenerationRequest struct {
	Target    string
	Offer     string
	Angle     string
	Framework Framework

	Sequence bool
	Variants int

	Research bool
	Website  string

	Sender        string
	SenderCompany string
	CTA           string
	Tone          string
	Length        string
}

// EmailDraft is one generated email. Slot is the 1-based position in a
// sequence, Variant the 1-based variant index for the same slot.
type EmailDraft struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Slot    int    `json:"slot"`
	Variant int    `json:"variant"`
}

// EmailSequence is an ordered list of drafts; order is the follow-up order
type EmailSequence []EmailDraft

// SequenceLength is the number of drafts a sequence run produces per variant:
// the initial email plus four follow-ups.
const SequenceLength = 5

// targetFirstName returns the leading name token of a target description
// like "John Smith, CEO at TechCorp".
func targetFirstName(target string) string {
	head := target
	if i := strings.IndexAny(head, ","); i >= 0 {
		head = head[:i]
	}
	fields := strings.Fields(head)
	if len(fields) == 0 {
		return target
	}
	return fields[0]
}

// targetCompany extracts the company token from a target description,
// falling back to the full target when no " at " marker is present.
func targetCompany(target string) string {
	if i := strings.LastIndex(target, " at "); i >= 0 {
		company := strings.TrimSpace(target[i+len(" at "):])
		if company != "" {
			return company
		}
	}
	return target
}
