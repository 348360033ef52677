package outreach

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sampleDrafts() EmailSequence {
	return EmailSequence{
		{ID: "a", Subject: "First subject", Body: "First body.", Slot: 1, Variant: 1},
		{ID: "b", Subject: "Second subject", Body: "Second body.", Slot: 2, Variant: 1},
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderText(&buf, sampleDrafts()); err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}

	out := buf.String()

	if !strings.HasPrefix(out, "SUBJECT: First subject\n\nFirst body.\n") {
		t.Errorf("unexpected leading draft:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("-", 60)) {
		t.Error("drafts should be separated by a rule")
	}
	if !strings.Contains(out, "SUBJECT: Second subject\n\nSecond body.\n") {
		t.Errorf("second draft missing:\n%s", out)
	}
	if strings.Count(out, "SUBJECT:") != 2 {
		t.Errorf("expected 2 SUBJECT lines, got %d", strings.Count(out, "SUBJECT:"))
	}
}

func TestRenderTextSingleDraftNoDelimiter(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderText(&buf, sampleDrafts()[:1]); err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}
	if strings.Contains(buf.String(), "---") {
		t.Error("single draft should have no delimiter")
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderJSON(&buf, sampleDrafts()); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	var doc struct {
		Drafts []EmailDraft `json:"drafts"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(doc.Drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(doc.Drafts))
	}
	if doc.Drafts[0].Subject != "First subject" || doc.Drafts[1].Slot != 2 {
		t.Errorf("unexpected drafts: %+v", doc.Drafts)
	}
}
