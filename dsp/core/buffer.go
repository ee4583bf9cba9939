package core

// EnsureLen returns buf resliced to length n, allocating only when the
// existing capacity is too small. Contents are unspecified; callers
// overwrite the slice.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if n <= cap(buf) {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero silences buf in place.
func Zero(buf []float64) {
	clear(buf)
}
