package curriculum

import (
	"errors"
	"strings"
	"testing"
)

func testUnits() []Unit {
	return []Unit{
		{
			ID:      "a",
			Title:   "A",
			Content: "first",
			Question: Question{
				Prompt: "q-a",
				Mode:   ModeFreeText,
				Answer: "1",
			},
		},
		{
			ID:      "b",
			Title:   "B",
			Content: "second",
			Question: Question{
				Prompt:  "q-b",
				Mode:    ModeChoice,
				Options: []string{"x", "y"},
				Answer:  "x",
			},
		},
		{
			ID:      "c",
			Title:   "C",
			Content: "third",
			Question: Question{
				Prompt: "q-c",
				Mode:   ModeFreeText,
				Answer: "3",
			},
		},
	}
}

func TestCatalogOrder(t *testing.T) {
	c, err := New(testUnits())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Size() != 3 {
		t.Fatalf("size = %d, want 3", c.Size())
	}
	if c.First().ID != "a" {
		t.Errorf("first = %q, want a", c.First().ID)
	}
	if c.Last().ID != "c" {
		t.Errorf("last = %q, want c", c.Last().ID)
	}

	for i, u := range c.List() {
		pos, err := c.Position(u.ID)
		if err != nil {
			t.Fatalf("position(%q): %v", u.ID, err)
		}
		if pos != i {
			t.Errorf("position(%q) = %d, want %d", u.ID, pos, i)
		}
	}
}

func TestCatalogNextPrevious(t *testing.T) {
	c, err := New(testUnits())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next, err := c.Next("a")
	if err != nil || next.ID != "b" {
		t.Errorf("Next(a) = %q, %v; want b, nil", next.ID, err)
	}

	if _, err := c.Next("c"); !errors.Is(err, ErrEndOfCourse) {
		t.Errorf("Next(c) error = %v, want ErrEndOfCourse", err)
	}

	prev, err := c.Previous("b")
	if err != nil || prev.ID != "a" {
		t.Errorf("Previous(b) = %q, %v; want a, nil", prev.ID, err)
	}

	if _, err := c.Previous("a"); !errors.Is(err, ErrStartOfCourse) {
		t.Errorf("Previous(a) error = %v, want ErrStartOfCourse", err)
	}

	if _, err := c.Next("nope"); !errors.Is(err, ErrLessonNotFound) {
		t.Errorf("Next(nope) error = %v, want ErrLessonNotFound", err)
	}
}

func TestCatalogGet(t *testing.T) {
	c, err := New(testUnits())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := c.Get("b")
	if err != nil {
		t.Fatalf("Get(b): %v", err)
	}
	if u.Title != "B" {
		t.Errorf("title = %q, want B", u.Title)
	}

	if _, err := c.Get("missing"); !errors.Is(err, ErrLessonNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrLessonNotFound", err)
	}
}

func TestCatalogListIsCopy(t *testing.T) {
	c, err := New(testUnits())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := c.List()
	list[0].ID = "mutated"

	if c.First().ID != "a" {
		t.Error("mutating List() result changed the catalog")
	}
}

func TestValidateUnits(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]Unit) []Unit
		wantErr string
	}{
		{
			name:    "empty catalog",
			mutate:  func(u []Unit) []Unit { return nil },
			wantErr: "catalog is empty",
		},
		{
			name: "duplicate id",
			mutate: func(u []Unit) []Unit {
				u[1].ID = "a"
				return u
			},
			wantErr: "duplicate lesson ID",
		},
		{
			name: "missing prompt",
			mutate: func(u []Unit) []Unit {
				u[0].Question.Prompt = ""
				return u
			},
			wantErr: "no question prompt",
		},
		{
			name: "missing answer",
			mutate: func(u []Unit) []Unit {
				u[2].Question.Answer = ""
				return u
			},
			wantErr: "no canonical answer",
		},
		{
			name: "choice answer not among options",
			mutate: func(u []Unit) []Unit {
				u[1].Question.Answer = "z"
				return u
			},
			wantErr: "not among options",
		},
		{
			name: "choice with one option",
			mutate: func(u []Unit) []Unit {
				u[1].Question.Options = []string{"x"}
				return u
			},
			wantErr: "at least 2 options",
		},
		{
			name: "freetext with options",
			mutate: func(u []Unit) []Unit {
				u[0].Question.Options = []string{"stray"}
				return u
			},
			wantErr: "must not have options",
		},
		{
			name: "unknown mode",
			mutate: func(u []Unit) []Unit {
				u[0].Question.Mode = "essay"
				return u
			},
			wantErr: "unknown question mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(testUnits()))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultCurriculumValid(t *testing.T) {
	c := Default()
	if c.Size() < 3 {
		t.Errorf("built-in course has %d lessons, want at least 3", c.Size())
	}
	if c.First().ID != "basics" {
		t.Errorf("first lesson = %q, want basics", c.First().ID)
	}
}
