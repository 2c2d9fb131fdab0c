package utils

import "strconv"

// ToUint parses a route parameter into the canonical id type.
func ToUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
