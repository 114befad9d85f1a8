package sections

import (
	"testing"

	"github.com/chordsight/chordsight/model"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		raw       string
		wantType  model.SectionType
		wantLabel string
		wantOK    bool
	}{
		{"[Verse]", model.SectionVerse, "Verse", true},
		{"[Verse 2]", model.SectionVerse, "Verse 2", true},
		{"[ Chorus ]", model.SectionChorus, "Chorus", true},
		{"Chorus:", model.SectionChorus, "Chorus", true},
		{"  Bridge:  ", model.SectionBridge, "Bridge", true},
		{"[Intro]", model.SectionIntro, "Intro", true},
		{"[Outro]", model.SectionOutro, "Outro", true},

		// Localized keywords map to the same types.
		{"[Refrain]", model.SectionChorus, "Refrain", true},
		{"Estribillo:", model.SectionChorus, "Estribillo", true},
		{"[Strophe 1]", model.SectionVerse, "Strophe 1", true},

		// Not headers.
		{"[Tuning: DADGAD]", "", "", false}, // unknown keyword
		{"[Solo]", "", "", false},
		{"Hello world", "", "", false},
		{"C Am F G", "", "", false},
		{"[ ]", "", "", false},
		{"", "", "", false},
		{"http://example.com: link", "", "", false},
	}

	for _, tt := range tests {
		typ, label, ok := ParseHeader(tt.raw)
		if ok != tt.wantOK {
			t.Errorf("ParseHeader(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if typ != tt.wantType || label != tt.wantLabel {
			t.Errorf("ParseHeader(%q) = (%v, %q), want (%v, %q)",
				tt.raw, typ, label, tt.wantType, tt.wantLabel)
		}
	}
}

func line(texts ...string) model.Line {
	words := make([]model.Word, len(texts))
	for i, s := range texts {
		words[i] = model.Word{Text: s}
	}
	return model.Line{Words: words}
}

func TestAssembler_TwoHeadedSections(t *testing.T) {
	a := New()
	a.FeedHeader(model.SectionVerse, "Verse")
	a.FeedLine(line("first"))
	a.FeedLine(line("second"))
	a.FeedHeader(model.SectionChorus, "Chorus")
	a.FeedLine(line("hook"))

	got := a.Finish()
	if len(got) != 2 {
		t.Fatalf("got %d sections, want 2", len(got))
	}
	if got[0].Type != model.SectionVerse || len(got[0].Lines) != 2 {
		t.Errorf("section 0 = %+v", got[0])
	}
	if got[1].Type != model.SectionChorus || len(got[1].Lines) != 1 {
		t.Errorf("section 1 = %+v", got[1])
	}
	if got[0].ID == got[1].ID {
		t.Errorf("section IDs must be distinct: %q", got[0].ID)
	}
}

func TestAssembler_ImplicitVerseBeforeFirstHeader(t *testing.T) {
	a := New()
	a.FeedLine(line("no", "header", "yet"))

	got := a.Finish()
	if len(got) != 1 {
		t.Fatalf("got %d sections, want 1", len(got))
	}
	if got[0].Type != model.SectionVerse || got[0].Label != "Verse" {
		t.Errorf("implicit section = %+v", got[0])
	}
}

func TestAssembler_EmptySectionsNotEmitted(t *testing.T) {
	a := New()
	a.FeedHeader(model.SectionIntro, "Intro") // never receives a line
	a.FeedHeader(model.SectionVerse, "Verse")
	a.FeedLine(line("content"))
	a.FeedHeader(model.SectionOutro, "Outro") // trailing header, no content

	got := a.Finish()
	if len(got) != 1 {
		t.Fatalf("got %d sections, want 1: %+v", len(got), got)
	}
	if got[0].Type != model.SectionVerse {
		t.Errorf("surviving section = %+v", got[0])
	}
}

func TestAssembler_NoInput(t *testing.T) {
	got := New().Finish()
	if got == nil || len(got) != 0 {
		t.Errorf("Finish() = %v, want empty non-nil slice", got)
	}
}
