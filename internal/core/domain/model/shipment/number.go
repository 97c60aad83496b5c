package shipment

import (
	"math/rand/v2"
)

// GenerateNumber produces a new externally visible shipment number.
// The format is an EAN-8 style code: seven random digits followed by the
// standard EAN checksum digit. With eight digits the collision probability is
// treated as negligible for this system's volume; there is no
// retry-on-collision loop, the storage layer's unique index is the backstop.
func GenerateNumber() string {
	digits := make([]byte, 8)
	sum := 0
	for i := range 7 {
		d := rand.IntN(10) //nolint:gosec // shipment numbers are not secrets
		digits[i] = byte('0' + d)
		// EAN-8 weights alternate 3,1 starting from the leftmost digit.
		if i%2 == 0 {
			sum += d * 3
		} else {
			sum += d
		}
	}
	digits[7] = byte('0' + (10-sum%10)%10)
	return string(digits)
}
