package outreach

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are an expert cold-outreach copywriter. You write short, " +
	"specific, human-sounding emails that get replies."

const promptRules = `RULES:
1. Personalize based on the prospect
2. Lead with value, not features
3. One clear call-to-action
4. No generic flattery ("I love your company!")
5. Sound human, not templated
6. Subject line should create curiosity`

const promptReturnFormat = `Return JSON:
{
    "subject": "Email subject line",
    "body": "Full email body"
}`

// buildPrompt assembles the generation prompt for one draft. slot is the
// 1-based sequence position; prior is the preceding draft of the same
// variant, nil for the initial email.
func buildPrompt(req GenerationRequest, researchCtx string, slot int, prior *EmailDraft) string {
	var b strings.Builder

	b.WriteString("Generate a cold email with these requirements:\n\n")

	b.WriteString("PROSPECT:\n")
	fmt.Fprintf(&b, "- Target: %s\n", req.Target)

	b.WriteString("\nOFFER:\n")
	fmt.Fprintf(&b, "- Offer: %s\n", req.Offer)
	if req.Angle != "" {
		fmt.Fprintf(&b, "- Angle: %s\n", req.Angle)
	}

	b.WriteString("\nSENDER:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orDefault(req.Sender, "the sender"))
	if req.SenderCompany != "" {
		fmt.Fprintf(&b, "- Company: %s\n", req.SenderCompany)
	}
	fmt.Fprintf(&b, "- Desired CTA: %s\n", orDefault(req.CTA, defaultCTA))
	fmt.Fprintf(&b, "- Tone: %s\n", orDefault(req.Tone, defaultTone))
	fmt.Fprintf(&b, "- Length: %s (short=3-4 sentences, medium=5-6 sentences)\n",
		orDefault(req.Length, defaultLength))

	if researchCtx != "" {
		b.WriteString("\nRESEARCH:\n")
		b.WriteString(researchCtx)
		b.WriteString("\n")
	}

	b.WriteString("\nFRAMEWORK:\n")
	b.WriteString(req.Framework.Skeleton().Guidance)
	b.WriteString("\n\n")

	b.WriteString(promptRules)

	if slot > 1 && prior != nil {
		b.WriteString("\n\nFOLLOW-UP:\n")
		fmt.Fprintf(&b,
			"This is follow-up %d of %d in a sequence to the same prospect. "+
				"The previous email's subject was %q. Keep continuity with its angle, "+
				"do not repeat it verbatim, and keep this one shorter.",
			slot-1, SequenceLength-1, prior.Subject)
	}

	b.WriteString("\n\n")
	b.WriteString(promptReturnFormat)

	return b.String()
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
