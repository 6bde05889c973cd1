package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCNPJ(t *testing.T) {
	valid := []string{
		"12.345.678/0001-99",
		"00.000.000/0000-00",
	}
	for _, s := range valid {
		assert.True(t, IsValidCNPJ(s), "expected %q to be valid", s)
	}

	invalid := []string{
		"",
		"12345678000199",
		"12.345.678/0001-9",
		"12.345.678/0001-999",
		"12-345-678/0001-99",
		"ab.cde.fgh/ijkl-mn",
		" 12.345.678/0001-99",
		"12.345.678/0001-99 ",
	}
	for _, s := range invalid {
		assert.False(t, IsValidCNPJ(s), "expected %q to be invalid", s)
	}
}

func TestIsValidCRM(t *testing.T) {
	valid := []string{
		"CRM12345",
		"CRM 12345",
		"CRM1234",
		"CRM123456",
	}
	for _, s := range valid {
		assert.True(t, IsValidCRM(s), "expected %q to be valid", s)
	}

	invalid := []string{
		"",
		"CRM123",      // too few digits
		"CRM1234567",  // too many digits
		"CRM  12345",  // double space
		"crm12345",    // lowercase prefix
		"CRM 12345 ",  // trailing space
		"12345",       // missing prefix
		"CRM-12345",   // wrong separator
	}
	for _, s := range invalid {
		assert.False(t, IsValidCRM(s), "expected %q to be invalid", s)
	}
}
