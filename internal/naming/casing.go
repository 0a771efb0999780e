// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package naming

import (
	"strings"
	"unicode"
)

// splitWords разбивает идентификатор на слова по разделителям и границам регистра:
// "HTTPService" -> [HTTP Service], "user_id" -> [user id], "jsonRPC" -> [json RPC].
func splitWords(s string) (words []string) {

	runes := []rune(s)
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if i > 0 && unicode.IsUpper(r) && len(current) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()
	return words
}

func capitalize(word string) string {

	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// PascalCase converts any identifier to UpperCamelCase ("user_profile" -> "UserProfile").
func PascalCase(s string) string {

	var b strings.Builder
	for _, word := range splitWords(s) {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// LowerCamelCase converts any identifier to lowerCamelCase ("get_user_id" -> "getUserId").
func LowerCamelCase(s string) string {

	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// KebabCase converts any identifier to kebab-case ("MyComponent" -> "my-component").
func KebabCase(s string) string {

	words := splitWords(s)
	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	return strings.Join(words, "-")
}
