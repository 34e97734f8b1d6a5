package model

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func sqdist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// rectangular returns the common row width, or -1 if rows differ.
func rectangular(rows [][]float64) int {
	if len(rows) == 0 {
		return 0
	}
	w := len(rows[0])
	for _, r := range rows[1:] {
		if len(r) != w {
			return -1
		}
	}
	return w
}
