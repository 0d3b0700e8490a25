package wordbank

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// balancedWords returns 20 words, 4 of them with 9+ characters
func balancedWords() []string {
	return []string{
		"brewing", "browser", "breezes", "bridges", "banking",
		"balance", "cabinet", "captain", "dolphin", "emperor",
		"fashion", "gallery", "harvest", "journey", "kitchen",
		"library", "adventure", "beautiful", "chocolate", "dangerous",
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := Validate(NewSet(balancedWords()...)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestValidate_Undersize(t *testing.T) {
	nineteenLong := NewSet()
	for i := 0; i < 19; i++ {
		nineteenLong[fmt.Sprintf("longwords%02d", i)] = struct{}{}
	}

	tests := []struct {
		name string
		set  Set
	}{
		{"Empty", NewSet()},
		{"Nineteen balanced", NewSet(balancedWords()[1:]...)},
		{"Nineteen long", nineteenLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.set); !errors.Is(err, ErrUndersize) {
				t.Errorf("Expected ErrUndersize, got %v", err)
			}
		})
	}
}

func TestValidate_InvalidRange(t *testing.T) {
	words := balancedWords()
	words[0] = "brew"

	err := Validate(NewSet(words...))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("Expected ErrInvalidRange, got %v", err)
	}

	if !strings.Contains(err.Error(), `"brew"`) {
		t.Errorf("Expected error to name the word, got %v", err)
	}
}

func TestValidate_EmptyWordInvalidRange(t *testing.T) {
	words := balancedWords()
	words[0] = ""

	if err := Validate(NewSet(words...)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange, got %v", err)
	}
}

func TestValidate_Unbalanced(t *testing.T) {
	s := NewSet()
	for i := 0; i < 20; i++ {
		s[fmt.Sprintf("word%02d", i)] = struct{}{}
	}

	if err := Validate(s); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("Expected ErrUnbalanced, got %v", err)
	}
}

func TestValidate_LongRatioBoundary(t *testing.T) {
	// 3 of 20 long words is 15%
	words := balancedWords()
	words[19] = "dangers"
	if err := Validate(NewSet(words...)); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("Expected ErrUnbalanced at 15%%, got %v", err)
	}

	// exactly 20% passes
	if err := Validate(NewSet(balancedWords()...)); err != nil {
		t.Errorf("Expected 20%% to pass, got %v", err)
	}
}

func TestValidate_CheckOrder(t *testing.T) {
	// Too small and too short: size is checked first
	if err := Validate(NewSet("a", "b")); !errors.Is(err, ErrUndersize) {
		t.Errorf("Expected ErrUndersize first, got %v", err)
	}

	// Too short and unbalanced: length is checked before distribution
	s := NewSet()
	for i := 0; i < 20; i++ {
		s[fmt.Sprintf("w%02d", i)] = struct{}{}
	}
	if err := Validate(s); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange before ErrUnbalanced, got %v", err)
	}
}

func TestSet_Sorted(t *testing.T) {
	s := NewSet("kitchen", "banking", "harvest", "banking")

	if s.Size() != 3 {
		t.Errorf("Expected 3 words, got %d", s.Size())
	}

	got := strings.Join(s.Sorted(), ",")
	if got != "banking,harvest,kitchen" {
		t.Errorf("Expected sorted words, got %s", got)
	}

	if !s.Contains("harvest") || s.Contains("Harvest") {
		t.Error("Expected case sensitive membership")
	}
}
