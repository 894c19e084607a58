package service

// ConstantTimeEqual reports whether a and b are equal without branching on
// content, mitigating timing side channels on MAC and digest comparison.
//
// The length difference is folded into the result up front and the loop runs
// over min(len(a), len(b)) positions unconditionally, OR-ing in the XOR of
// corresponding bytes. There is no early exit, so execution time does not
// depend on where two unequal inputs diverge.
//
// Running time still scales with min(len(a), len(b)). Leaking the gross
// length of the inputs is accepted, industry-standard behavior for this use
// case; content positions are never leaked.
func ConstantTimeEqual(a, b string) bool {
	result := len(a) ^ len(b)

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		result |= int(a[i] ^ b[i])
	}

	return result == 0
}
