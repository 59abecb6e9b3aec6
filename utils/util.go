package utils

import "fmt"

// Filter returns the elements of arr for which f is true.
func Filter[A any](arr []A, f func(A) bool) []A {
	res := make([]A, 0)
	for _, v := range arr {
		if f(v) {
			res = append(res, v)
		}
	}
	return res
}

var sizeUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

// FormatSize renders a byte count in binary units, e.g. 123456789 ->
// "117.74 MiB".
func FormatSize(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d B", size)
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}
