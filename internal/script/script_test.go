package script

import "testing"

func TestAlphabet(t *testing.T) {
	chars := Alphabet()
	if len(chars) != 0x0C7F-0x0C00 {
		t.Errorf("alphabet size = %d, want %d", len(chars), 0x0C7F-0x0C00)
	}
	if chars[0] != rune(0x0C00) {
		t.Errorf("first char = %U, want U+0C00", chars[0])
	}
	if chars[len(chars)-1] != rune(0x0C7E) {
		t.Errorf("last char = %U, want U+0C7E", chars[len(chars)-1])
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single word", "తెలుగు", []string{"తెలుగు"}},
		{"punctuation separates", "తెలుగు, భాష.", []string{"తెలుగు", "భాష"}},
		{"other scripts separate", "abcతెలుగుdefభాష", []string{"తెలుగు", "భాష"}},
		{"whitespace", "పదం  వాక్యం\nభాష", []string{"పదం", "వాక్యం", "భాష"}},
		{"no telugu", "hello world 123", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIsWord(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", false},
		{"తెలుగు", true},
		{"తెలుగు ", false},
		{"hello", false},
		{"తెలుguగు", false},
	}
	for _, tt := range tests {
		if got := IsWord(tt.s); got != tt.want {
			t.Errorf("IsWord(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
