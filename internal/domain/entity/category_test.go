package entity

import (
	"errors"
	"testing"
)

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.IsValid() {
			t.Errorf("Categories() member %q reported invalid", c)
		}
	}
	for _, c := range []Category{"", "Gossip", "sports", "SPORTS", "Saúde"} {
		if c.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", c)
		}
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Health")
	if err != nil {
		t.Fatalf("ParseCategory(Health) = %v, want nil", err)
	}
	if c != CategoryHealth {
		t.Errorf("ParseCategory(Health) = %q, want %q", c, CategoryHealth)
	}

	_, err = ParseCategory("Weather")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ParseCategory(Weather) = %v, want *ValidationError", err)
	}
	if vErr.Field != "category" {
		t.Errorf("Field = %q, want %q", vErr.Field, "category")
	}
}

func TestCategoriesStableOrder(t *testing.T) {
	a, b := Categories(), Categories()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Categories() order not stable at index %d", i)
		}
	}
}
