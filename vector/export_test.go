// SPDX-License-Identifier: MIT

package vector

// Test-Bridge (white-box) for the norm cache.
// Compiled only with the package's tests; exposes the cache state to
// vector_test without widening the production API.

// NormCache_TestOnly reports the cached norm and whether it is Valid.
func NormCache_TestOnly(v *Vector) (float64, bool) {
	return v.norm.value, v.norm.valid
}

// SetNormCache_TestOnly forces the cache to Valid(x).
// Lets tests prove that a hit returns the stored value without recomputing.
func SetNormCache_TestOnly(v *Vector, x float64) {
	v.norm = normCache{valid: true, value: x}
}
