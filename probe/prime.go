package probe

import "math"

// IsPrime reports whether n is prime using odd trial division.
func IsPrime(n int) bool {
	if n < 2 || (n > 2 && n%2 == 0) {
		return false
	}
	top := int(math.Sqrt(float64(n))) + 1
	for factor := 3; factor < top; factor += 2 {
		if n%factor == 0 {
			return false
		}
	}
	return true
}

// LargestPrimeBelow returns the step modulus for a table of n slots. For
// n > 3 it is the largest prime strictly less than n, found by walking down
// the odd numbers and stopping at 3. For n == 3 it returns 2, and for n <= 2
// it returns 1, which is not prime; both keep any step derived from the
// result coprime with n.
func LargestPrimeBelow(n int) int {
	switch {
	case n <= 2:
		return 1
	case n == 3:
		return 2
	}
	if n%2 == 0 {
		n--
	} else {
		n -= 2
	}
	for n > 3 && !IsPrime(n) {
		n -= 2
	}
	return n
}

// NextPrime returns the smallest prime >= n.
func NextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}
	return n
}
