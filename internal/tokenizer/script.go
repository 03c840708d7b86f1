package tokenizer

import "unicode"

// IsHan reports whether r belongs to the Han script.
func IsHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// ContainsChinese reports whether s holds at least one Han character.
func ContainsChinese(s string) bool {
	for _, r := range s {
		if IsHan(r) {
			return true
		}
	}
	return false
}
