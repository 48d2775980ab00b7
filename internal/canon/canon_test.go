package canon

import (
	"strings"
	"testing"

	"scriptureref/internal/domain"
)

func TestTableShape(t *testing.T) {
	if len(books) != 66 {
		t.Fatalf("expected 66 books, got %d", len(books))
	}
	for i, b := range books {
		if b.ID != i+1 {
			t.Errorf("book %q: expected ID %d, got %d", b.Name, i+1, b.ID)
		}
		if b.ChapterCount < 1 {
			t.Errorf("book %q: chapter count %d", b.Name, b.ChapterCount)
		}
		if b.Name == "" || b.ShortName == "" {
			t.Errorf("book %d: empty name or short name", b.ID)
		}
		if len(b.Abbreviations) == 0 {
			t.Errorf("book %q: no abbreviations", b.Name)
		}
	}
}

func TestTestamentSplit(t *testing.T) {
	for _, b := range books {
		want := domain.OldTestament
		if b.ID > 39 {
			want = domain.NewTestament
		}
		if b.Testament != want {
			t.Errorf("book %q: expected testament %s, got %s", b.Name, want, b.Testament)
		}
	}
}

func TestNoDuplicateAbbreviations(t *testing.T) {
	seen := map[string]string{}
	for _, b := range books {
		for _, a := range b.Abbreviations {
			if a != strings.ToLower(a) {
				t.Errorf("abbreviation %q of %q is not lower-cased", a, b.Name)
			}
			if prev, ok := seen[a]; ok && prev != b.Name {
				t.Errorf("abbreviation %q maps to both %q and %q", a, prev, b.Name)
			}
			seen[a] = b.Name
		}
	}
}

func TestChapterCounts(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"Genesis", 50},
		{"Psalms", 150},
		{"Obadiah", 1},
		{"John", 21},
		{"Jude", 1},
		{"Revelation", 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ResolveName(tt.name)
			if !ok {
				t.Fatalf("ResolveName(%q) found nothing", tt.name)
			}
			b, ok := BookByID(id)
			if !ok {
				t.Fatalf("BookByID(%d) found nothing", id)
			}
			if b.ChapterCount != tt.want {
				t.Errorf("expected %d chapters, got %d", tt.want, b.ChapterCount)
			}
		})
	}
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		input  string
		wantID int
		ok     bool
	}{
		{"jn", 43, true},
		{"EXODUS", 2, true},
		{"1 cor", 46, true},
		{"Sng", 22, true},
		{" psalm ", 19, true},
		{"klingon", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, ok := ResolveName(tt.input)
			if ok != tt.ok {
				t.Fatalf("ResolveName(%q) ok=%v, expected %v", tt.input, ok, tt.ok)
			}
			if ok && id != tt.wantID {
				t.Errorf("ResolveName(%q)=%d, expected %d", tt.input, id, tt.wantID)
			}
		})
	}
}

func TestBooksOrdered(t *testing.T) {
	recs := Books()
	if len(recs) != 66 {
		t.Fatalf("expected 66 records, got %d", len(recs))
	}
	for i, r := range recs {
		if r.Order != i+1 {
			t.Errorf("record %q: expected order %d, got %d", r.Name, i+1, r.Order)
		}
		if r.ID != r.Order {
			t.Errorf("record %q: ID %d != order %d", r.Name, r.ID, r.Order)
		}
	}
	if _, ok := AbbreviationIndex()["ex"]; !ok {
		t.Error(`abbreviation index missing "ex"`)
	}
}
