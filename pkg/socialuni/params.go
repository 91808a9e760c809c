package socialuni

import (
	"net/url"
	"reflect"
	"strconv"

	"github.com/samber/lo"
)

// Params flattens a loosely typed query map into url.Values. Nils and
// nested non-primitive values are dropped rather than encoded, so internal
// helper objects never leak into a URL. Arrays keep their primitive
// elements only and encode as repeated keys.
func Params(in map[string]any) url.Values {
	out := url.Values{}

	for key, value := range in {
		rv, ok := deref(value)
		if !ok {
			continue
		}

		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			elems := make([]any, 0, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				elems = append(elems, rv.Index(i).Interface())
			}

			primitives := lo.FilterMap(elems, func(elem any, _ int) (string, bool) {
				return formatPrimitive(elem)
			})
			for _, p := range primitives {
				out.Add(key, p)
			}
		default:
			if s, ok := formatPrimitive(rv.Interface()); ok {
				out.Set(key, s)
			}
		}
	}

	return out
}

func deref(value any) (reflect.Value, bool) {
	if value == nil {
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}

func formatPrimitive(value any) (string, bool) {
	rv, ok := deref(value)
	if !ok {
		return "", false
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}
