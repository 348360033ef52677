package outreach

import (
	"fmt"
	"strings"
	"text/template"
)

// PromptSkeleton is the framework-specific raw material for a draft: a
// guidance block handed to the generation provider, and subject/body
// templates used directly in template mode.
type PromptSkeleton struct {
	Framework Framework
	Guidance  string
	subject   *template.Template
	body      *template.Template
}

// skeletonData is the interpolation context for skeleton templates
type skeletonData struct {
	Target       string
	FirstName    string
	Company      string
	Offer        string
	Angle        string
	CTA          string
	Signature    string
	ResearchNote string
}

// Render fills the skeleton's subject and body templates
func (s PromptSkeleton) Render(data skeletonData) (subject, body string, err error) {
	var sb, bb strings.Builder
	if err := s.subject.Execute(&sb, data); err != nil {
		return "", "", errorRegistry.NewWithCause(ErrGenerationFailed, err).
			WithDetail("framework", s.Framework.String())
	}
	if err := s.body.Execute(&bb, data); err != nil {
		return "", "", errorRegistry.NewWithCause(ErrGenerationFailed, err).
			WithDetail("framework", s.Framework.String())
	}
	return strings.TrimSpace(sb.String()), strings.TrimSpace(bb.String()), nil
}

func mustSkeleton(f Framework, guidance, subject, body string) PromptSkeleton {
	name := f.String()
	return PromptSkeleton{
		Framework: f,
		Guidance:  guidance,
		subject:   template.Must(template.New(name + "_subject").Parse(subject)),
		body:      template.Must(template.New(name + "_body").Parse(body)),
	}
}

var skeletons = map[Framework]PromptSkeleton{
	FrameworkDirect: mustSkeleton(FrameworkDirect,
		"Direct: state who you are, what you offer, and ask for the CTA. No warm-up, no fluff.",
		`{{.Offer}} for {{.Company}}`,
		`Hi {{.FirstName}},

I'll keep this short. We help companies like {{.Company}} with {{.Offer}}.{{if .Angle}} Specifically: {{.Angle}}.{{end}}
{{- if .ResearchNote}}

{{.ResearchNote}}
{{- end}}

Open to a {{.CTA}} this week?

{{.Signature}}`,
	),

	FrameworkPAS: mustSkeleton(FrameworkPAS,
		"Pain-Agitate-Solve: name a specific pain the prospect has, make the cost of ignoring it concrete, then present the offer as the resolution.",
		`The hidden cost of doing this manually at {{.Company}}`,
		`Hi {{.FirstName}},

Teams at companies like {{.Company}} lose real hours every week to work that {{.Offer}} could take off their plate. The longer it stays manual, the more it compounds.{{if .Angle}} In our experience the fix is worth it: {{.Angle}}.{{end}}
{{- if .ResearchNote}}

{{.ResearchNote}}
{{- end}}

If that sounds familiar, a {{.CTA}} would be enough to see whether we can help.

{{.Signature}}`,
	),

	FrameworkValue: mustSkeleton(FrameworkValue,
		"Value-first: lead with a concrete, quantified value claim before introducing yourself. Give before you ask.",
		`An idea for {{.Company}}`,
		`Hi {{.FirstName}},

One idea for {{.Company}}: {{if .Angle}}{{.Angle}}, using {{.Offer}}{{else}}put {{.Offer}} to work on your most repetitive workflow{{end}}. Happy to share exactly how, whether or not we end up working together.
{{- if .ResearchNote}}

{{.ResearchNote}}
{{- end}}

Worth a {{.CTA}}?

{{.Signature}}`,
	),

	FrameworkCuriosity: mustSkeleton(FrameworkCuriosity,
		"Curiosity: open a specific, relevant loop the reader wants closed. The subject hints at it, the body teases it, the CTA closes it.",
		`A question about how {{.Company}} handles this`,
		`Hi {{.FirstName}},

Quick question: how does {{.Company}} currently handle the work that {{.Offer}} replaces? I ask because there's a pattern we keep seeing{{if .Angle}} ({{.Angle}}){{end}}, and I suspect it applies to you.
{{- if .ResearchNote}}

{{.ResearchNote}}
{{- end}}

If you're curious, a {{.CTA}} is the fastest way to find out.

{{.Signature}}`,
	),

	FrameworkSocial: mustSkeleton(FrameworkSocial,
		"Social proof: lead with what peer companies achieved, then connect it to the prospect. Specific peers beat vague claims.",
		`How teams like {{.Company}} are using {{.Offer}}`,
		`Hi {{.FirstName}},

Companies in {{.Company}}'s space have started leaning on {{.Offer}}{{if .Angle}} to {{.Angle}}{{end}}, and the results keep surprising the skeptics.
{{- if .ResearchNote}}

{{.ResearchNote}}
{{- end}}

If you'd like to see what that looks like for {{.Company}}, I'm happy to walk through it on a {{.CTA}}.

{{.Signature}}`,
	),
}

// Skeleton returns the prompt skeleton for the framework
func (f Framework) Skeleton() PromptSkeleton {
	if s, ok := skeletons[f]; ok {
		return s
	}
	return skeletons[FrameworkDirect]
}

// followUpLines is the bump copy for sequence slots 2 through 5
var followUpLines = []string{
	"Floating this back to the top of your inbox in case it got buried. The short version: %s for %s. Still worth a %s?",
	"Wanted to add one thing since my last note: the teams that move on this early see the gains compound. If %s is on your radar at all, a %s costs nothing.",
	"I'll assume the timing isn't right if I don't hear back, but before I close this out: is there someone else at %s who owns this?",
	"Last note from me. If %s ever becomes a priority at %s, my door is open. Wishing you a great quarter either way.",
}

// renderFollowUp produces the template-mode draft for sequence slot 2..5,
// threading the prior draft's subject for continuity.
func renderFollowUp(slot int, prior EmailDraft, data skeletonData) (subject, body string) {
	subject = "Re: " + strings.TrimPrefix(prior.Subject, "Re: ")

	var line string
	switch slot {
	case 2:
		line = fmt.Sprintf(followUpLines[0], data.Offer, data.Company, data.CTA)
	case 3:
		line = fmt.Sprintf(followUpLines[1], data.Offer, data.CTA)
	case 4:
		line = fmt.Sprintf(followUpLines[2], data.Company)
	default:
		line = fmt.Sprintf(followUpLines[3], data.Offer, data.Company)
	}

	body = fmt.Sprintf("Hi %s,\n\n%s\n\n%s", data.FirstName, line, data.Signature)
	return subject, body
}
