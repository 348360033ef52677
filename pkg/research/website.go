package research

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; coldcopy-research/1.0)"

// Option configures the website researcher
type Option func(*WebsiteResearcher)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(r *WebsiteResearcher) {
		r.client = client
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(r *WebsiteResearcher) {
		r.client.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with requests
func WithUserAgent(ua string) Option {
	return func(r *WebsiteResearcher) {
		r.userAgent = ua
	}
}

// WebsiteResearcher extracts public information from a target's website
type WebsiteResearcher struct {
	client    *http.Client
	userAgent string
}

// NewWebsiteResearcher creates a researcher with a 10 second default timeout
func NewWebsiteResearcher(opts ...Option) *WebsiteResearcher {
	r := &WebsiteResearcher{
		client:    &http.Client{Timeout: 10 * time.Second},
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Research fetches the website and extracts a summary of the target
func (r *WebsiteResearcher) Research(ctx context.Context, target, website string) (Summary, error) {
	if website == "" {
		return Summary{}, errorRegistry.New(ErrMissingWebsite).
			WithDetail("target", target)
	}

	if !strings.Contains(website, "://") {
		website = "https://" + website
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, website, nil)
	if err != nil {
		return Summary{}, errorRegistry.NewWithCause(ErrFetchFailed, err).
			WithDetail("website", website)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return Summary{}, errorRegistry.NewWithCause(ErrFetchFailed, err).
			WithDetail("website", website)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Summary{}, errorRegistry.NewWithMessage(ErrBadStatus,
			fmt.Sprintf("website returned status %d", resp.StatusCode)).
			WithDetail("website", website).
			WithDetail("status", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return Summary{}, errorRegistry.NewWithCause(ErrParseFailed, err).
			WithDetail("website", website)
	}

	return extractSummary(doc), nil
}

func extractSummary(doc *html.Node) Summary {
	var summary Summary
	seen := make(map[string]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if summary.Title == "" {
					summary.Title = strings.TrimSpace(nodeText(n))
				}
			case "meta":
				if summary.Description == "" && attr(n, "name") == "description" {
					summary.Description = strings.TrimSpace(attr(n, "content"))
				}
			case "script":
				if src := strings.ToLower(attr(n, "src")); src != "" {
					for _, hint := range techHints(src) {
						if !seen[hint] {
							seen[hint] = true
							summary.TechHints = append(summary.TechHints, hint)
						}
					}
				}
			default:
				if summary.About == "" && looksLikeAbout(n) {
					text := strings.Join(strings.Fields(nodeText(n)), " ")
					if len(text) > 500 {
						cut := 500
						for cut > 0 && !utf8.RuneStart(text[cut]) {
							cut--
						}
						text = text[:cut]
					}
					if len(text) > 100 {
						summary.About = text
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return summary
}

func looksLikeAbout(n *html.Node) bool {
	if strings.Contains(strings.ToLower(attr(n, "id")), "about") {
		return true
	}
	if strings.Contains(strings.ToLower(attr(n, "class")), "about") {
		return true
	}
	return n.Data == "section"
}

var knownTech = []struct {
	needle string
	name   string
}{
	{"react", "React"},
	{"vue", "Vue"},
	{"angular", "Angular"},
	{"stripe", "Stripe"},
	{"intercom", "Intercom"},
	{"hubspot", "HubSpot"},
}

func techHints(src string) []string {
	var hints []string
	for _, t := range knownTech {
		if strings.Contains(src, t.needle) {
			hints = append(hints, t.name)
		}
	}
	return hints
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
