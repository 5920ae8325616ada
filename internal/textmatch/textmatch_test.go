package textmatch

import "testing"

func TestContains(t *testing.T) {
	tests := []struct {
		haystack, needle string
		want             bool
	}{
		{"Perfect Scrambled Eggs", "egg", true},
		{"eggs", "EGG", true},
		{"chicken breast", "Breast", true},
		{"butter", "egg", false},
		{"anything", "", true},
		// Decomposed "n" + combining tilde against precomposed "ñ".
		{"Jalape\u00f1o Poppers", "jalapen\u0303o", true},
	}
	for _, tt := range tests {
		if got := Contains(tt.haystack, tt.needle); got != tt.want {
			t.Errorf("Contains(%q, %q) = %v, want %v", tt.haystack, tt.needle, got, tt.want)
		}
	}
}

func TestFold(t *testing.T) {
	if got := Fold("Pasta"); got != "pasta" {
		t.Fatalf("Fold(Pasta) = %q", got)
	}
}
