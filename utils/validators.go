package utils

import "regexp"

// Registry identifier formats are checked by shape only. The real-world
// checksum digits are not verified; the backend of record rejects
// identifiers it cannot resolve.
var (
	cnpjPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	crmPattern  = regexp.MustCompile(`^CRM ?\d{4,6}$`)
)

// IsValidCNPJ reports whether s has the form DD.DDD.DDD/DDDD-DD.
func IsValidCNPJ(s string) bool {
	return cnpjPattern.MatchString(s)
}

// IsValidCRM reports whether s is "CRM" followed by an optional space and 4 to 6 digits.
func IsValidCRM(s string) bool {
	return crmPattern.MatchString(s)
}
