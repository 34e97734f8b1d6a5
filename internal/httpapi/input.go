package httpapi

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"housepriced/pkg/types"
)

// Loose number coercion for request fields. JSON numbers, numeric strings
// and booleans are accepted; integer fields truncate fractional JSON numbers
// toward zero but reject fractional strings ("3.5" is not an integer).

// fieldValue is one decoded field: json.Number, string, bool or nil.
type fieldValue = any

func lookup(body map[string]fieldValue, name string) (fieldValue, error) {
	v, ok := body[name]
	if !ok {
		return nil, fmt.Errorf("missing field: %s", name)
	}
	if v == nil {
		return nil, fmt.Errorf("%s must not be null", name)
	}
	return v, nil
}

func coerceFloat(name string, v fieldValue) (float64, error) {
	switch x := v.(type) {
	case json.Number:
		return parseFloat(name, x.String())
	case string:
		return parseFloat(name, x)
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case float64:
		return x, nil
	default:
		return 0, fmt.Errorf("%s must be a number", name)
	}
}

func coerceInt(name string, v fieldValue) (int, error) {
	switch x := v.(type) {
	case json.Number:
		s := x.String()
		if n, err := strconv.Atoi(s); err == nil {
			return checkIntRange(name, n)
		}
		f, err := parseFloat(name, s)
		if err != nil {
			return 0, err
		}
		return truncInt(name, f)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %q", name, x)
		}
		return checkIntRange(name, n)
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case float64:
		return truncInt(name, x)
	default:
		return 0, fmt.Errorf("%s must be an integer", name)
	}
}

// parseFloat accepts decimal notation only; hex floats such as "0x1p4"
// are rejected.
func parseFloat(name, s string) (float64, error) {
	t := strings.TrimSpace(s)
	if u := strings.TrimLeft(t, "+-"); len(u) > 1 && u[0] == '0' && (u[1] == 'x' || u[1] == 'X') {
		return 0, fmt.Errorf("invalid number for %s: %q", name, s)
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid number for %s: %q", name, s)
	}
	return f, nil
}

func truncInt(name string, f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s must be a finite number", name)
	}
	t := math.Trunc(f)
	if t > math.MaxInt32 || t < math.MinInt32 {
		return 0, fmt.Errorf("%s out of range", name)
	}
	return int(t), nil
}

// checkIntRange applies the same int32 bound as truncInt to exact integers.
func checkIntRange(name string, n int) (int, error) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fmt.Errorf("%s out of range", name)
	}
	return n, nil
}

// featuresFromJSON coerces the four fields in order: size, bedrooms, age,
// location. The first failure is returned.
func featuresFromJSON(body map[string]fieldValue) (types.HouseFeatures, error) {
	var f types.HouseFeatures
	v, err := lookup(body, "size")
	if err != nil {
		return f, err
	}
	if f.Size, err = coerceFloat("size", v); err != nil {
		return f, err
	}
	if math.IsNaN(f.Size) || math.IsInf(f.Size, 0) {
		return f, errors.New("size must be a finite number")
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"bedrooms", &f.Bedrooms},
		{"age", &f.Age},
		{"location", &f.Location},
	}
	for _, it := range ints {
		v, err := lookup(body, it.name)
		if err != nil {
			return f, err
		}
		if *it.dst, err = coerceInt(it.name, v); err != nil {
			return f, err
		}
	}
	return f, nil
}

// featuresFromForm parses form values the same way: size as a float,
// the rest as integers. Empty values count as missing.
func featuresFromForm(get func(string) string) (types.HouseFeatures, error) {
	body := make(map[string]fieldValue, 4)
	for _, k := range []string{"size", "bedrooms", "age", "location"} {
		if v := get(k); v != "" {
			body[k] = v
		}
	}
	return featuresFromJSON(body)
}
