// Package contractions expands English contractions ("what's" -> "what is")
// so that a tokenizer splitting on apostrophes sees the full words.
package contractions

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// reContraction matches a word joined to a suffix by a straight or curly
// apostrophe, e.g. "won't", "y'all'd've", "what’s".
var reContraction = regexp.MustCompile(`[A-Za-z]+(?:['’][A-Za-z]+)+`)

var expansions = map[string]string{
	"ain't":      "is not",
	"aren't":     "are not",
	"can't":      "cannot",
	"could've":   "could have",
	"couldn't":   "could not",
	"didn't":     "did not",
	"doesn't":    "does not",
	"don't":      "do not",
	"hadn't":     "had not",
	"hasn't":     "has not",
	"haven't":    "have not",
	"he'd":       "he would",
	"he'll":      "he will",
	"he's":       "he is",
	"how'd":      "how did",
	"how'll":     "how will",
	"how's":      "how is",
	"i'd":        "I would",
	"i'll":       "I will",
	"i'm":        "I am",
	"i've":       "I have",
	"isn't":      "is not",
	"it'd":       "it would",
	"it'll":      "it will",
	"it's":       "it is",
	"let's":      "let us",
	"ma'am":      "madam",
	"mightn't":   "might not",
	"might've":   "might have",
	"mustn't":    "must not",
	"must've":    "must have",
	"needn't":    "need not",
	"o'clock":    "of the clock",
	"shan't":     "shall not",
	"she'd":      "she would",
	"she'll":     "she will",
	"she's":      "she is",
	"should've":  "should have",
	"shouldn't":  "should not",
	"that'd":     "that would",
	"that's":     "that is",
	"there'd":    "there would",
	"there's":    "there is",
	"they'd":     "they would",
	"they'll":    "they will",
	"they're":    "they are",
	"they've":    "they have",
	"wasn't":     "was not",
	"we'd":       "we would",
	"we'll":      "we will",
	"we're":      "we are",
	"we've":      "we have",
	"weren't":    "were not",
	"what'll":    "what will",
	"what're":    "what are",
	"what's":     "what is",
	"what've":    "what have",
	"when's":     "when is",
	"where'd":    "where did",
	"where's":    "where is",
	"where've":   "where have",
	"who'd":      "who would",
	"who'll":     "who will",
	"who're":     "who are",
	"who's":      "who is",
	"who've":     "who have",
	"why's":      "why is",
	"won't":      "will not",
	"would've":   "would have",
	"wouldn't":   "would not",
	"y'all":      "you all",
	"you'd":      "you would",
	"you'll":     "you will",
	"you're":     "you are",
	"you've":     "you have",
	"y'all'd've": "you all would have",
}

// Expand replaces every known contraction in text with its expansion. The
// capitalisation of the first letter is kept, and an all upper case
// contraction expands to upper case. Unknown words pass through unchanged.
func Expand(text string) string {
	return reContraction.ReplaceAllStringFunc(text, func(word string) string {
		key := strings.ToLower(strings.ReplaceAll(word, "’", "'"))
		expanded, ok := expansions[key]
		if !ok {
			return word
		}
		return matchCase(word, expanded)
	})
}

func matchCase(original, expanded string) string {
	letters := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, original)

	if len(letters) > 1 && strings.ToUpper(letters) == letters {
		return strings.ToUpper(expanded)
	}

	first, _ := utf8.DecodeRuneInString(original)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(expanded)
		return string(unicode.ToUpper(r)) + expanded[size:]
	}
	return expanded
}
