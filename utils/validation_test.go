package utils

import "testing"

func TestValidDate(t *testing.T) {
	valid := []string{"2025-06-01", "2024-02-29", "1999-12-31"}
	for _, d := range valid {
		if !ValidDate(d) {
			t.Errorf("ValidDate(%q) = false, want true", d)
		}
	}

	invalid := []string{"", "01/06/2025", "2025-13-01", "2025-06-32", "2023-02-29", "today"}
	for _, d := range invalid {
		if ValidDate(d) {
			t.Errorf("ValidDate(%q) = true, want false", d)
		}
	}
}

func TestValidateIDNumber(t *testing.T) {
	valid := []string{"1-2345-6789", "123456789", "9-0000-0001"}
	for _, id := range valid {
		if !ValidateIDNumber(id) {
			t.Errorf("ValidateIDNumber(%q) = false, want true", id)
		}
	}

	invalid := []string{"", "12-345-6789", "1-2345-678", "abc", "1-2345-67890"}
	for _, id := range invalid {
		if ValidateIDNumber(id) {
			t.Errorf("ValidateIDNumber(%q) = true, want false", id)
		}
	}
}

func TestGenerateRandomStringLengthAndAlphabet(t *testing.T) {
	s := GenerateRandomString(6)
	if len(s) != 6 {
		t.Fatalf("expected 6 characters, got %d", len(s))
	}
	for _, c := range s {
		if !(c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			t.Fatalf("unexpected character %q in %q", c, s)
		}
	}
}
