package chordsight

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/chordsight/chordsight/model"
	"github.com/chordsight/chordsight/ocr"
)

func TestFromText_FullDocument(t *testing.T) {
	raw := `[Verse]
C       Am
Hello   my friend
[Chorus]
F G
la la`

	sheet, warnings, err := FromText(raw).Title("Greeting").Artist("Nobody").Sheet()
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	if sheet.Title != "Greeting" || sheet.Artist != "Nobody" {
		t.Errorf("metadata: %+v", sheet)
	}
	if sheet.Language != "en" {
		t.Errorf("language = %q, want en", sheet.Language)
	}

	if sheet.SectionCount() != 2 {
		t.Fatalf("got %d sections, want 2", sheet.SectionCount())
	}
	verse, chorus := sheet.Sections[0], sheet.Sections[1]
	if verse.Type != model.SectionVerse || verse.Label != "Verse" {
		t.Errorf("section 0 = %+v", verse)
	}
	if chorus.Type != model.SectionChorus || chorus.Label != "Chorus" {
		t.Errorf("section 1 = %+v", chorus)
	}

	if len(verse.Lines) != 1 {
		t.Fatalf("verse has %d lines, want 1", len(verse.Lines))
	}
	words := verse.Lines[0].Words
	if len(words) != 3 {
		t.Fatalf("verse line has %d words, want 3: %+v", len(words), words)
	}
	if words[0].Text != "Hello" || words[0].Chord == nil || words[0].Chord.String() != "C" {
		t.Errorf("word 0 = %+v", words[0])
	}
	if words[1].Text != "my" || words[1].Chord == nil || words[1].Chord.String() != "Am" {
		t.Errorf("word 1 = %+v", words[1])
	}
	if words[2].Text != "friend" || words[2].Chord != nil {
		t.Errorf("word 2 = %+v", words[2])
	}
}

func TestFromText_StripsMarkup(t *testing.T) {
	sheet, _, err := FromText("[ch]Am[/ch]\nhello world").Sheet()
	if err != nil {
		t.Fatal(err)
	}
	if sheet.SectionCount() != 1 {
		t.Fatalf("got %d sections, want 1", sheet.SectionCount())
	}
	words := sheet.Sections[0].Lines[0].Words
	if words[0].Chord == nil || words[0].Chord.String() != "Am" {
		t.Errorf("markup-wrapped chord lost: %+v", words)
	}
}

func TestFromText_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   \n\n  \n"} {
		sheet, warnings, err := FromText(raw).Sheet()
		if err != nil {
			t.Fatalf("Sheet(%q): %v", raw, err)
		}
		if sheet == nil || sheet.SectionCount() != 0 {
			t.Errorf("Sheet(%q) = %+v, want zero sections", raw, sheet)
		}
		if len(warnings) != 0 {
			t.Errorf("Sheet(%q) warnings: %v", raw, warnings)
		}
	}
}

func TestFromText_UnattachedChordsWarn(t *testing.T) {
	// Three chords over a one-word lyric: two chords cannot attach.
	_, warnings, err := FromText("C G G7\nhi").Sheet()
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0].Stage != "align" {
		t.Fatalf("warnings = %v, want one align warning", warnings)
	}
	if !strings.Contains(warnings[0].Message, "2 chord(s)") {
		t.Errorf("warning message = %q", warnings[0].Message)
	}
}

func TestFromText_ChordOnlyLines(t *testing.T) {
	// An instrumental block: chord lines with no lyric lines under them.
	sheet, warnings, err := FromText("[Intro]\nC G Am F\nC G F F").Sheet()
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings: %v", warnings)
	}
	if sheet.SectionCount() != 1 || len(sheet.Sections[0].Lines) != 2 {
		t.Fatalf("sections: %+v", sheet.Sections)
	}
	line := sheet.Sections[0].Lines[0]
	if len(line.Words) != 4 {
		t.Fatalf("intro line has %d words, want 4", len(line.Words))
	}
	for _, w := range line.Words {
		if w.Text != "" || w.Chord == nil {
			t.Errorf("chord-only word = %+v", w)
		}
	}
}

func tok(text string, x, y float64) model.Token {
	return model.Token{
		Text:       text,
		BBox:       model.NewBBox(x, y, 10, 10),
		Confidence: 95,
	}
}

func TestFromTokens_FullDocument(t *testing.T) {
	// "C" over "Hi", "G" over "yo", laid out on a 10-unit grid.
	tokens := []model.Token{
		tok("C", 0, 0),
		tok("G", 60, 0),
		tok("H", 0, 20),
		tok("i", 10, 20),
		tok("y", 60, 20),
		tok("o", 70, 20),
	}

	sheet, warnings, err := FromTokens(tokens).Sheet()
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings: %v", warnings)
	}

	if sheet.SectionCount() != 1 {
		t.Fatalf("got %d sections, want 1", sheet.SectionCount())
	}
	if sheet.Sections[0].Type != model.SectionVerse {
		t.Errorf("implicit section type = %v", sheet.Sections[0].Type)
	}
	words := sheet.Sections[0].Lines[0].Words
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2: %+v", len(words), words)
	}
	if words[0].Text != "Hi" || words[0].Chord == nil || words[0].Chord.String() != "C" {
		t.Errorf("word 0 = %+v", words[0])
	}
	if words[1].Text != "yo" || words[1].Chord == nil || words[1].Chord.String() != "G" {
		t.Errorf("word 1 = %+v", words[1])
	}
}

func TestFromTokens_MalformedTokenFails(t *testing.T) {
	bad := tok("", 0, 0) // empty text is a shape error, not noise
	if _, _, err := FromTokens([]model.Token{tok("C", 0, 0), bad}).Sheet(); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func TestFromTokens_AllFilteredWarns(t *testing.T) {
	low := tok("C", 0, 0)
	low.Confidence = 5

	sheet, warnings, err := FromTokens([]model.Token{low}).Sheet()
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if sheet.SectionCount() != 0 {
		t.Errorf("got %d sections, want 0", sheet.SectionCount())
	}
	if len(warnings) != 1 || warnings[0].Stage != "grid" {
		t.Errorf("warnings = %v, want one grid warning", warnings)
	}
}

func TestImporter_ChainIsImmutable(t *testing.T) {
	base := FromText("hello world")
	titled := base.Title("Named")

	baseSheet, _, err := base.Sheet()
	if err != nil {
		t.Fatal(err)
	}
	titledSheet, _, err := titled.Sheet()
	if err != nil {
		t.Fatal(err)
	}

	if baseSheet.Title != "" {
		t.Errorf("base importer mutated: title %q", baseSheet.Title)
	}
	if titledSheet.Title != "Named" {
		t.Errorf("titled importer: title %q", titledSheet.Title)
	}
}

func TestImporter_MinConfidenceOverride(t *testing.T) {
	low := tok("C", 0, 0)
	low.Confidence = 20 // below the default threshold of 30

	sheet, _, err := FromTokens([]model.Token{low}).MinConfidence(10).Sheet()
	if err != nil {
		t.Fatal(err)
	}
	if sheet.SectionCount() != 1 {
		t.Fatalf("lowered threshold should keep the token: %+v", sheet)
	}
}

func TestFromImage_RequiresOCRBuild(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatal(err)
	}

	_, _, err := FromImage(buf.Bytes()).Sheet()
	if !errors.Is(err, ocr.ErrOCRNotEnabled) {
		t.Errorf("err = %v, want ErrOCRNotEnabled", err)
	}
}

func TestFormatWarnings(t *testing.T) {
	got := FormatWarnings([]Warning{
		{Stage: "grid", Message: "first"},
		{Stage: "align", Message: "second"},
	})
	want := "grid: first\nalign: second"
	if got != want {
		t.Errorf("FormatWarnings = %q, want %q", got, want)
	}
}
