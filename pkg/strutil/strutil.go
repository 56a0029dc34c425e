// Package strutil 문자열 처리 유틸리티를 제공합니다.
package strutil

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// htmlTagRegexp '<' 다음에 영문자가 오는 경우만 태그로 인식합니다. ("3 < 5" 같은 표현은 유지)
var htmlTagRegexp = regexp.MustCompile(`</?([a-zA-Z]+)[^>]*>`)

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
//
//	"  hello   world  " -> "hello world"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Mask 토큰 등 민감한 값을 로그에 남기기 위해 일부만 남기고 가립니다.
//
//	""              -> ""
//	"abc"           -> "***"
//	"abcdefgh"      -> "abcd***"
//	"abcdefghijklmn" -> "abcd***klmn"
func Mask(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 3:
		return "***"
	case len(s) <= 12:
		return s[:4] + "***"
	default:
		return s[:4] + "***" + s[len(s)-4:]
	}
}

// StripHTMLTags HTML 태그를 제거하고 엔티티를 디코딩한 순수 텍스트를 반환합니다.
func StripHTMLTags(s string) string {
	return html.UnescapeString(htmlTagRegexp.ReplaceAllString(s, ""))
}

// Truncate 최대 maxRunes 글자까지만 남기고, 잘린 경우 "..."를 덧붙입니다.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxRunes]) + "..."
}
