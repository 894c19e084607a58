// Package masking redacts sensitive values for log output.
package masking

import "strings"

// Email masks the local part of an email address, keeping the first and last
// characters visible (e.g. "jane@example.com" becomes "j**e@example.com").
// Values that do not look like an email address are fully masked.
func Email(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return mask(len(email))
	}

	local := email[:at]
	domain := email[at:]

	if len(local) <= 2 {
		return mask(len(local)) + domain
	}
	return local[:1] + mask(len(local)-2) + local[len(local)-1:] + domain
}

// Phone masks all but the last four digits of a phone number.
// Short values are fully masked.
func Phone(phone string) string {
	if len(phone) <= 4 {
		return mask(len(phone))
	}
	return mask(len(phone)-4) + phone[len(phone)-4:]
}

func mask(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("*", n)
}
