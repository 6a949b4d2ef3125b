// Package ean13 computes and validates EAN-13 check digits.
package ean13

import "errors"

// PayloadLength is the number of digits a code carries before the check digit.
const PayloadLength = 12

// CodeLength is the full length of an EAN-13 code.
const CodeLength = 13

// ErrInvalidPayload is returned when the input is not exactly 12 ASCII digits.
var ErrInvalidPayload = errors.New("payload must be exactly 12 digits")

// CheckDigit computes the EAN-13 check digit for a 12-digit payload.
// Digits are weighted 1 at even positions and 3 at odd positions, counting
// from the left starting at 0.
func CheckDigit(payload string) (byte, error) {
	if len(payload) != PayloadLength {
		return 0, ErrInvalidPayload
	}

	sum := 0
	for i := 0; i < PayloadLength; i++ {
		d := payload[i]
		if d < '0' || d > '9' {
			return 0, ErrInvalidPayload
		}
		n := int(d - '0')
		if i%2 == 1 {
			n *= 3
		}
		sum += n
	}

	check := (10 - sum%10) % 10
	return byte('0' + check), nil
}

// Encode appends the check digit to a 12-digit payload, producing a full
// EAN-13 code.
func Encode(payload string) (string, error) {
	check, err := CheckDigit(payload)
	if err != nil {
		return "", err
	}
	return payload + string(check), nil
}

// Validate reports whether code is a well-formed EAN-13 code with a correct
// check digit.
func Validate(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	check, err := CheckDigit(code[:PayloadLength])
	if err != nil {
		return false
	}
	return code[PayloadLength] == check
}
