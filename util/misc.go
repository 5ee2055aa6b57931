package util

func IfThenElse[T any](condition bool, a T, b T) T {
	if condition {
		return a
	}
	return b
}

// CeilDiv returns a/b rounded up.
func CeilDiv[T ~int | ~uint32](a T, b T) T {
	return (a + b - 1) / b
}
