package wordcount

import "strings"

// trimSet is stripped from both ends of every token.
const trimSet = `()<>[]{}-_,.?!:;"'…“”’`

// Tokenize splits text on white space, strips surrounding punctuation,
// lowercases each token and drops the ones left empty.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	words := fields[:0]
	for _, f := range fields {
		w := strings.ToLower(strings.Trim(f, trimSet))
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}
