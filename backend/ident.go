package backend

import (
	"strings"
	"unicode"
)

// PascalCase converts an arbitrary field-name-derived string to
// UpperCamelCase, for use as a type name (struct, enum, class).
func PascalCase(s string) string {
	return strings.Join(capitalizeAll(splitWords(s)), "")
}

// CamelCase converts s to lowerCamelCase, for use as a method or getter
// name.
func CamelCase(s string) string {
	words := capitalizeAll(splitWords(s))
	if len(words) == 0 {
		return ""
	}

	words[0] = strings.ToLower(words[0])

	return strings.Join(words, "")
}

// SnakeCase converts s to lower_snake_case, for use as a struct field name.
func SnakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return strings.Join(words, "_")
}

// splitWords breaks s on runs of non-alphanumeric characters and on
// lower-to-upper case transitions, so both "user_id" and "userId" split
// into ["user", "id"/"Id"].
func splitWords(s string) []string {
	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)

	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
				flush()
			}

			current.WriteRune(r)
		default:
			flush()
		}
	}

	flush()

	return words
}

func capitalizeAll(words []string) []string {
	for i, w := range words {
		if w == "" {
			continue
		}

		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}

	return words
}
