package chart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrUnknownKind is returned for a missing or non-allow-listed kind.
	ErrUnknownKind = errors.New("unknown chart kind")
	// ErrInvalidRequest wraps every other decode or synthesis failure.
	ErrInvalidRequest = errors.New("invalid chart request")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// lookup returns the first present value among the given paths.
func lookup(r gjson.Result, paths ...string) (gjson.Result, bool) {
	for _, p := range paths {
		if v := r.Get(p); v.Exists() && v.Type != gjson.Null {
			return v, true
		}
	}
	return gjson.Result{}, false
}

// toFloat converts a JSON number or numeric string.
func toFloat(v gjson.Result) (float64, bool) {
	switch v.Type {
	case gjson.Number:
		f := v.Float()
		if !finite(f) {
			return 0, false
		}
		return f, true
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil || !finite(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// number reads a numeric parameter, falling back to def when absent.
// A present value that is not numeric is an error.
func number(r gjson.Result, def float64, paths ...string) (float64, error) {
	v, ok := lookup(r, paths...)
	if !ok {
		return def, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, invalidf("%s: %q is not a number", paths[0], v.Raw)
	}
	return f, nil
}

// integer reads a whole-number parameter.
func integer(r gjson.Result, def int, paths ...string) (int, error) {
	f, err := number(r, float64(def), paths...)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, invalidf("%s: %g is not a whole number", paths[0], f)
	}
	return int(f), nil
}

// text reads a string parameter.
func text(r gjson.Result, def string, paths ...string) string {
	v, ok := lookup(r, paths...)
	if !ok || strings.TrimSpace(v.String()) == "" {
		return def
	}
	return strings.TrimSpace(v.String())
}

// domain reads an x-domain given as [lo, hi], {min, max} or xMin/xMax.
func domain(r gjson.Result, def Range) (Range, error) {
	if v, ok := lookup(r, "domain", "xDomain", "xRange", "x_range"); ok {
		var lo, hi gjson.Result
		switch {
		case v.IsArray() && len(v.Array()) == 2:
			lo, hi = v.Array()[0], v.Array()[1]
		case v.IsObject():
			lo, hi = v.Get("min"), v.Get("max")
		default:
			return Range{}, invalidf("domain: unsupported shape %s", v.Raw)
		}
		l, okL := toFloat(lo)
		h, okH := toFloat(hi)
		if !okL || !okH {
			return Range{}, invalidf("domain: non-numeric bound")
		}
		def = Range{Min: l, Max: h}
	} else {
		lo, err := number(r, def.Min, "xMin", "x_min", "minX")
		if err != nil {
			return Range{}, err
		}
		hi, err := number(r, def.Max, "xMax", "x_max", "maxX")
		if err != nil {
			return Range{}, err
		}
		def = Range{Min: lo, Max: hi}
	}
	if def.Min >= def.Max {
		return Range{}, invalidf("domain: min %g must be below max %g", def.Min, def.Max)
	}
	return def, nil
}

// labelled reads an array of {label, value} objects, [label, value] pairs,
// or parallel label/value arrays.
func labelled(r gjson.Result, itemPaths, labelKeys, valueKeys, labelsPaths, valuesPaths []string) ([]Datum, error) {
	if items, ok := lookup(r, itemPaths...); ok {
		if !items.IsArray() {
			return nil, invalidf("%s: expected an array", itemPaths[0])
		}
		var out []Datum
		for i, it := range items.Array() {
			var label string
			var val gjson.Result
			switch {
			case it.IsObject():
				label = text(it, "", labelKeys...)
				val, _ = lookup(it, valueKeys...)
			case it.IsArray() && len(it.Array()) == 2:
				label = it.Array()[0].String()
				val = it.Array()[1]
			default:
				val = it
			}
			f, ok := toFloat(val)
			if !ok {
				return nil, invalidf("item %d: non-numeric value", i)
			}
			if label == "" {
				label = strconv.Itoa(i + 1)
			}
			out = append(out, Datum{X: float64(i), Y: f, Label: label})
		}
		return out, nil
	}

	labels, okL := lookup(r, labelsPaths...)
	values, okV := lookup(r, valuesPaths...)
	if !okV {
		return nil, invalidf("no data")
	}
	if !values.IsArray() || (okL && !labels.IsArray()) {
		return nil, invalidf("labels/values must be arrays")
	}
	vals := values.Array()
	var names []gjson.Result
	if okL {
		names = labels.Array()
	}
	out := make([]Datum, 0, len(vals))
	for i, v := range vals {
		f, ok := toFloat(v)
		if !ok {
			return nil, invalidf("value %d: non-numeric", i)
		}
		label := strconv.Itoa(i + 1)
		if i < len(names) && names[i].String() != "" {
			label = names[i].String()
		}
		out = append(out, Datum{X: float64(i), Y: f, Label: label})
	}
	return out, nil
}

// points reads [{x, y, label}] or [[x, y]] arrays.
func points(r gjson.Result, paths ...string) ([]Datum, error) {
	items, ok := lookup(r, paths...)
	if !ok {
		return nil, invalidf("no points")
	}
	if !items.IsArray() {
		return nil, invalidf("%s: expected an array", paths[0])
	}
	var out []Datum
	for i, it := range items.Array() {
		var xv, yv gjson.Result
		var label string
		switch {
		case it.IsObject():
			xv, yv = it.Get("x"), it.Get("y")
			label = text(it, "", "label", "name")
		case it.IsArray() && len(it.Array()) >= 2:
			xv, yv = it.Array()[0], it.Array()[1]
			if len(it.Array()) > 2 {
				label = it.Array()[2].String()
			}
		default:
			return nil, invalidf("point %d: unsupported shape", i)
		}
		x, okX := toFloat(xv)
		y, okY := toFloat(yv)
		if !okX || !okY {
			return nil, invalidf("point %d: non-numeric coordinate", i)
		}
		out = append(out, Datum{X: x, Y: y, Label: label})
	}
	return out, nil
}
