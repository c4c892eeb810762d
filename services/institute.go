package services

import (
	"regexp"
	"strings"
)

// Institutes barred from participating. Matching is case-insensitive,
// punctuation-normalized substring search so trivial respellings
// don't slip through.
var blockedKeywords = []string{
	"iter",
	"soa",
	"siksha o anusandhan",
	"siksha anusandhan",
	"institute of technical education and research",
}

var punctuationPattern = regexp.MustCompile("['\"`\\-]")
var whitespacePattern = regexp.MustCompile(`\s+`)

func normalizeInstitute(s string) string {
	s = strings.ToLower(s)
	s = punctuationPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsBlockedInstitute reports whether the institute or university name
// matches the denylist.
func IsBlockedInstitute(name string) bool {
	normalized := normalizeInstitute(name)
	for _, keyword := range blockedKeywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

// CheckInstituteAllowed screens both the institute and university
// fields, returning the fixed blocked-institute error on a match.
func CheckInstituteAllowed(institute, university string) error {
	if IsBlockedInstitute(institute) || IsBlockedInstitute(university) {
		return NewBlockedInstituteError()
	}
	return nil
}

// Spellings that name NIT Rourkela outright.
var nitrDirectMatches = []string{
	"nitrkl",
	"nit rkl",
	"nit-rkl",
	"nit_rkl",
	"nit rou",
	"nit-rou",
	"nitrourkela",
	"nit rourkela",
	"nit-rourkela",
	"nit_rourkela",
	"rkl nit",
	"rourkela nit",
}

var nitrPatterns = []*regexp.Regexp{
	// Full name variations
	regexp.MustCompile(`national\s*institute\s*of\s*tech(nology)?\s*[,\-]?\s*r(ou)?r?k(e)?l(a)?`),
	// NIT + Rourkela variations
	regexp.MustCompile(`n\.?i\.?t\.?\s*[,\-]?\s*r(ou)?r?k(e)?l(a)?`),
	// Rourkela + NIT variations
	regexp.MustCompile(`r(ou)?r?k(e)?l(a)?\s*[,\-]?\s*n\.?i\.?t\.?`),
	// With state suffix
	regexp.MustCompile(`nit\s*(rourkela|rkl)\s*[,\-]?\s*(orissa|odisha)?`),
	// Common typos
	regexp.MustCompile(`nitroukela|nitrorkela|nitrurkela`),
}

// IsNitRourkela reports whether the value names NIT Rourkela under
// any of its common abbreviations, spellings, or typos.
func IsNitRourkela(value string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))

	for _, match := range nitrDirectMatches {
		if normalized == match {
			return true
		}
	}

	for _, pattern := range nitrPatterns {
		if pattern.MatchString(normalized) {
			return true
		}
	}

	hasNit := strings.Contains(normalized, "nit") || strings.Contains(normalized, "national institute")
	hasRourkela := strings.Contains(normalized, "rourkela") ||
		strings.Contains(normalized, "rkl") ||
		(strings.Contains(normalized, "rou") && hasNit)

	return hasNit && hasRourkela
}
