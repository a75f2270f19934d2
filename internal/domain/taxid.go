package domain

import "strings"

// CPF and CNPJ check-digit validation. Both accept the formatted form
// ("529.982.247-25", "11.222.333/0001-81") or bare digits. Sequences of
// a single repeated digit pass the mod-11 arithmetic but are not valid
// documents, so they are rejected explicitly.

// ValidCPF reports whether s is a valid individual tax id.
func ValidCPF(s string) bool {
	d := onlyDigits(s)
	if len(d) != 11 || uniform(d) {
		return false
	}
	if d[9] != checkDigit(d[:9], 10) {
		return false
	}
	return d[10] == checkDigit(d[:10], 11)
}

// ValidCNPJ reports whether s is a valid organization tax id.
func ValidCNPJ(s string) bool {
	d := onlyDigits(s)
	if len(d) != 14 || uniform(d) {
		return false
	}
	if d[12] != checkDigit(d[:12], 5) {
		return false
	}
	return d[13] == checkDigit(d[:13], 6)
}

// checkDigit computes the mod-11 verifier for the given digits. The
// weight starts at firstWeight and decreases, restarting at 9 after 2
// (which only happens for the longer CNPJ sequences).
func checkDigit(digits []int, firstWeight int) int {
	sum := 0
	weight := firstWeight
	for _, d := range digits {
		sum += d * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func onlyDigits(s string) []int {
	var out []int
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			out = append(out, int(r-'0'))
		case strings.ContainsRune(".-/ ", r):
			// separator, skip
		default:
			return nil
		}
	}
	return out
}

func uniform(d []int) bool {
	for _, v := range d[1:] {
		if v != d[0] {
			return false
		}
	}
	return true
}
