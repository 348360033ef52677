package outreach

import (
	"errors"
	"strings"
	"testing"

	"github.com/coldcopy/coldcopy/pkg/errx"
)

func TestParseFramework(t *testing.T) {
	cases := map[string]Framework{
		"pas":          FrameworkPAS,
		"PAS":          FrameworkPAS,
		"value":        FrameworkValue,
		"value-first":  FrameworkValue,
		"curiosity":    FrameworkCuriosity,
		"social":       FrameworkSocial,
		"social-proof": FrameworkSocial,
		"direct":       FrameworkDirect,
		"":             FrameworkDirect,
	}

	for input, want := range cases {
		got, err := ParseFramework(input)
		if err != nil {
			t.Errorf("ParseFramework(%q) failed: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFramework(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseFrameworkUnknown(t *testing.T) {
	_, err := ParseFramework("bogus")
	if err == nil {
		t.Fatal("expected error for unknown framework")
	}

	var e *errx.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errx.Error, got %T", err)
	}
	if e.Code != "OUTREACH_UNSUPPORTED_FRAMEWORK" {
		t.Errorf("expected OUTREACH_UNSUPPORTED_FRAMEWORK, got %s", e.Code)
	}
	if errx.ExitCodeFor(err) != 2 {
		t.Errorf("expected exit code 2, got %d", errx.ExitCodeFor(err))
	}
}

func TestSkeletonRender(t *testing.T) {
	data := skeletonData{
		Target:    "Jane Doe, CTO at Acme",
		FirstName: "Jane",
		Company:   "Acme",
		Offer:     "compliance automation",
		Angle:     "cut audit prep in half",
		CTA:       "quick call",
		Signature: "Best,\nAlex",
	}

	for _, f := range []Framework{FrameworkDirect, FrameworkPAS, FrameworkValue, FrameworkCuriosity, FrameworkSocial} {
		t.Run(f.String(), func(t *testing.T) {
			subject, body, err := f.Skeleton().Render(data)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if subject == "" {
				t.Error("empty subject")
			}
			if !strings.Contains(body, "Acme") {
				t.Errorf("body should mention the company:\n%s", body)
			}
			if !strings.Contains(body, "quick call") {
				t.Errorf("body should carry the CTA:\n%s", body)
			}
			if !strings.Contains(body, "Alex") {
				t.Errorf("body should end with the signature:\n%s", body)
			}
		})
	}
}

func TestSkeletonRenderWithoutAngle(t *testing.T) {
	data := skeletonData{
		FirstName: "Jane",
		Company:   "Acme",
		Offer:     "compliance automation",
		CTA:       "quick call",
		Signature: "Best,",
	}

	for _, f := range []Framework{FrameworkDirect, FrameworkPAS, FrameworkValue, FrameworkCuriosity, FrameworkSocial} {
		_, body, err := f.Skeleton().Render(data)
		if err != nil {
			t.Fatalf("%s: Render failed: %v", f, err)
		}
		if strings.Contains(body, "()") || strings.Contains(body, "  ") {
			t.Errorf("%s: body has artifacts from the empty angle:\n%s", f, body)
		}
	}
}

func TestFrameworkGuidanceDistinct(t *testing.T) {
	seen := map[string]Framework{}
	for _, f := range []Framework{FrameworkDirect, FrameworkPAS, FrameworkValue, FrameworkCuriosity, FrameworkSocial} {
		g := f.Skeleton().Guidance
		if g == "" {
			t.Errorf("%s: empty guidance", f)
		}
		if prev, dup := seen[g]; dup {
			t.Errorf("%s and %s share guidance", f, prev)
		}
		seen[g] = f
	}
}

func TestTargetHelpers(t *testing.T) {
	if got := targetFirstName("John Smith, CEO at TechCorp"); got != "John" {
		t.Errorf("targetFirstName = %q", got)
	}
	if got := targetCompany("John Smith, CEO at TechCorp"); got != "TechCorp" {
		t.Errorf("targetCompany = %q", got)
	}
	if got := targetCompany("TechCorp"); got != "TechCorp" {
		t.Errorf("targetCompany without marker = %q", got)
	}
}
