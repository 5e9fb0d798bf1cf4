// Package brdoc normalizes and formats Brazilian contact identifiers (CPF and
// phone numbers). Values are stored digits-only; the punctuated forms are
// derived for display and never persisted.
package brdoc

import "strings"

// Digits strips every non-digit character from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsCPF reports whether s is an 11-digit string.
func IsCPF(s string) bool {
	if len(s) != 11 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatCPF renders an 11-digit CPF as 000.000.000-00. Anything else is
// returned verbatim, matching the stored value.
func FormatCPF(cpf string) string {
	d := Digits(cpf)
	if len(d) != 11 {
		return cpf
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// FormatPhone renders an 11-digit mobile as (00) 00000-0000 and a 10-digit
// landline as (00) 0000-0000. Anything else is returned verbatim.
func FormatPhone(phone string) string {
	d := Digits(phone)
	switch len(d) {
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	default:
		return phone
	}
}
