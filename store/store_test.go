package store

import (
	"context"
	"errors"
	"testing"

	"github.com/chordsight/chordsight/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSheet(title string) *model.ChordSheet {
	am := model.Chord{Kind: model.KindChord, Root: 'A', Quality: model.Minor}
	sheet := model.NewChordSheet(title, "Test Artist")
	sheet.AddSection(model.Section{
		ID:   "verse-1",
		Type: model.SectionVerse,
		Lines: []model.Line{
			{Words: []model.Word{{Text: "Hello", Chord: &am}}},
		},
	})
	return sheet
}

func TestStore_SaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, testSheet("First Song"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "First Song" || got.Artist != "Test Artist" {
		t.Errorf("Get returned %+v", got)
	}
	if len(got.Sections) != 1 || len(got.Sections[0].Lines) != 1 {
		t.Fatalf("sections not preserved: %+v", got.Sections)
	}
	word := got.Sections[0].Lines[0].Words[0]
	if word.Chord == nil || word.Chord.String() != "Am" {
		t.Errorf("chord not preserved: %+v", word)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
}

func TestStore_Update(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, testSheet("Before"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := s.Update(ctx, id, testSheet("After")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "After" {
		t.Errorf("Update did not take: %+v", got)
	}

	if err := s.Update(ctx, 999, testSheet("Nobody")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(missing) = %v, want ErrNotFound", err)
	}
}

func TestStore_ListAndDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a, err := s.Save(ctx, testSheet("A"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := s.Save(ctx, testSheet("B"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	infos, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(infos))
	}
	// Same timestamp resolution is possible; newest id wins the tie.
	if infos[0].ID != b {
		t.Errorf("List order: got first id %d, want %d", infos[0].ID, b)
	}

	if err := s.Delete(ctx, a); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, a); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}

	infos, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 1 || infos[0].ID != b {
		t.Errorf("after delete: %+v", infos)
	}
}

func TestStore_Reset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Save(ctx, testSheet("gone soon")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	infos, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("Reset left %d sheets", len(infos))
	}

	// The schema survives a reset.
	if _, err := s.Save(ctx, testSheet("fresh")); err != nil {
		t.Errorf("Save after Reset: %v", err)
	}
}

func TestStore_EmptyPathRejected(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}
