// Package script defines the Telugu script range used by the checker:
// the candidate-generation alphabet, tokenization, and word classification.
package script

import "regexp"

// Telugu Unicode block boundaries.
const (
	BlockStart = 0x0C00
	BlockEnd   = 0x0C7F

	// The generation alphabet stops one code point short of the block end:
	// U+0C7F (TELUGU SIGN TUUMU) never occurs word-internally, so edits
	// should not introduce it. Tokenization still accepts the full block.
	alphabetEnd = 0x0C7E
)

// wordPattern matches a maximal run of Telugu characters. Punctuation and
// characters from other scripts act as separators, not tokens.
var wordPattern = regexp.MustCompile(`[\x{0C00}-\x{0C7F}]+`)

var alphabet = buildAlphabet()

func buildAlphabet() []rune {
	chars := make([]rune, 0, alphabetEnd-BlockStart+1)
	for r := rune(BlockStart); r <= alphabetEnd; r++ {
		chars = append(chars, r)
	}
	return chars
}

// Alphabet returns the characters used to generate candidate edits.
// The returned slice is shared; callers must not modify it.
func Alphabet() []rune { return alphabet }

// Tokenize returns the Telugu words of text in document order.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// IsWord reports whether s is non-empty and contains only Telugu characters.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < BlockStart || r > BlockEnd {
			return false
		}
	}
	return true
}
