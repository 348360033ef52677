package research

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/coldcopy/coldcopy/pkg/errx"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>TechCorp - Warehouse Robotics</title>
  <meta name="description" content="TechCorp builds autonomous warehouse robots for mid-size logistics companies.">
  <script src="/static/react.production.min.js"></script>
  <script src="https://js.stripe.com/v3/stripe.js"></script>
</head>
<body>
  <section id="about">
    TechCorp was founded in 2019 to take the drudgery out of warehouse operations.
    Our robots pick, pack, and ship alongside human crews, and our customers report
    double-digit throughput gains within the first quarter of deployment.
  </section>
</body>
</html>`

func TestResearchWebsite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	r := NewWebsiteResearcher()
	summary, err := r.Research(context.Background(), "John Smith, CEO at TechCorp", srv.URL)
	if err != nil {
		t.Fatalf("Research failed: %v", err)
	}

	if summary.Title != "TechCorp - Warehouse Robotics" {
		t.Errorf("unexpected title: %q", summary.Title)
	}
	if !strings.Contains(summary.Description, "autonomous warehouse robots") {
		t.Errorf("unexpected description: %q", summary.Description)
	}
	if !strings.Contains(summary.About, "founded in 2019") {
		t.Errorf("about text not extracted: %q", summary.About)
	}

	wantTech := []string{"React", "Stripe"}
	if len(summary.TechHints) != len(wantTech) {
		t.Fatalf("expected tech hints %v, got %v", wantTech, summary.TechHints)
	}
	for i, want := range wantTech {
		if summary.TechHints[i] != want {
			t.Errorf("tech hint %d: expected %s, got %s", i, want, summary.TechHints[i])
		}
	}
}

func TestResearchAboutKeepsValidUTF8(t *testing.T) {
	page := "<html><body><section id=\"about\">" + strings.Repeat("€", 200) + "</section></body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	r := NewWebsiteResearcher()
	summary, err := r.Research(context.Background(), "t", srv.URL)
	if err != nil {
		t.Fatalf("Research failed: %v", err)
	}

	if summary.About == "" {
		t.Fatal("about text not extracted")
	}
	if len(summary.About) > 500 {
		t.Errorf("about text should be capped at 500 bytes, got %d", len(summary.About))
	}
	if !utf8.ValidString(summary.About) {
		t.Errorf("about text is not valid UTF-8: %q", summary.About)
	}
}

func TestResearchUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><head><title>x</title></head></html>"))
	}))
	defer srv.Close()

	r := NewWebsiteResearcher(WithUserAgent("test-agent/2.0"))
	if _, err := r.Research(context.Background(), "t", srv.URL); err != nil {
		t.Fatalf("Research failed: %v", err)
	}
	if gotUA != "test-agent/2.0" {
		t.Errorf("expected custom user agent, got %q", gotUA)
	}
}

func TestResearchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	r := NewWebsiteResearcher()
	_, err := r.Research(context.Background(), "t", srv.URL)
	if err == nil {
		t.Fatal("expected error for 404")
	}

	var e *errx.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errx.Error, got %T", err)
	}
	if e.Code != "RESEARCH_BAD_STATUS" {
		t.Errorf("expected RESEARCH_BAD_STATUS, got %s", e.Code)
	}
}

func TestResearchMissingWebsite(t *testing.T) {
	r := NewWebsiteResearcher()
	_, err := r.Research(context.Background(), "t", "")
	if err == nil {
		t.Fatal("expected error for missing website")
	}

	var e *errx.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errx.Error, got %T", err)
	}
	if e.Code != "RESEARCH_MISSING_WEBSITE" {
		t.Errorf("expected RESEARCH_MISSING_WEBSITE, got %s", e.Code)
	}
}

func TestResearchUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	r := NewWebsiteResearcher()
	_, err := r.Research(context.Background(), "t", url)
	if err == nil {
		t.Fatal("expected error for closed server")
	}
	if errx.ExitCodeFor(err) != 3 {
		t.Errorf("expected exit code 3 for external failure, got %d", errx.ExitCodeFor(err))
	}
}

func TestSummaryContext(t *testing.T) {
	s := Summary{
		Description: "Builds robots.",
		TechHints:   []string{"React"},
	}

	ctx := s.Context()
	if !strings.Contains(ctx, "Company description: Builds robots.") {
		t.Errorf("context missing description: %q", ctx)
	}
	if !strings.Contains(ctx, "Tech stack: React") {
		t.Errorf("context missing tech stack: %q", ctx)
	}

	if !(Summary{}).IsEmpty() {
		t.Error("zero summary should be empty")
	}
	if s.IsEmpty() {
		t.Error("populated summary should not be empty")
	}
}
