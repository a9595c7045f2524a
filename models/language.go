package models

// supportedLanguages is the closed set of locale codes a user profile or a
// query may carry. It mirrors the languages the assistant frontend offers.
var supportedLanguages = map[string]struct{}{
	"en": {},
	"hi": {},
	"mr": {},
	"ta": {},
	"bn": {},
	"te": {},
	"gu": {},
}

// DefaultLanguage is used when a request carries no language or an
// unsupported one.
const DefaultLanguage = "en"

// IsSupportedLanguage reports whether lang is one of the supported locale codes.
func IsSupportedLanguage(lang string) bool {
	_, ok := supportedLanguages[lang]
	return ok
}

// NormalizeLanguage returns lang if it is supported, otherwise DefaultLanguage.
func NormalizeLanguage(lang string) string {
	if IsSupportedLanguage(lang) {
		return lang
	}
	return DefaultLanguage
}
