// Package apitest round-trips catalog shapes through the encodings they are
// carried in: JSON bodies, query strings and path parameters.
package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"sigs.k8s.io/randfill"
)

// Codec names the struct tag a shape is carried by on the wire.
type Codec struct {
	Tag string
}

var (
	JSON  = Codec{Tag: "json"}
	Query = Codec{Tag: "form"}
	Path  = Codec{Tag: "uri"}
)

func (c Codec) String() string {
	return c.Tag
}

// NewFiller returns a filler whose values survive every codec: timestamps
// have whole seconds, opaque JSON is always valid, and non-nil collections
// always have elements so omitempty cannot turn them into nil.
func NewFiller(seed int64) *randfill.Filler {
	return randfill.NewWithSeed(seed).
		NilChance(0.3).
		NumElements(1, 3).
		Funcs(
			func(t *time.Time, c randfill.Continue) {
				*t = time.Unix(c.Int63n(4102444800), 0).UTC()
			},
			func(j *json.RawMessage, c randfill.Continue) {
				*j = json.RawMessage(fmt.Sprintf(`{"seq":%d}`, c.Intn(1000)))
			},
		)
}

// Fill returns a new value of shape's type populated by f. shape must be a
// pointer to a struct.
//
// A pointer to a nil slice or map encodes as null and decodes as a nil
// pointer, so such pointers are cleared after filling.
func Fill(f *randfill.Filler, shape any) any {
	v := reflect.New(reflect.TypeOf(shape).Elem())
	f.Fill(v.Interface())
	clearNullPointers(v.Elem())
	return v.Interface()
}

func clearNullPointers(v reflect.Value) {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return
		}
		switch elem := v.Elem(); elem.Kind() {
		case reflect.Slice, reflect.Map:
			if elem.IsNil() && v.CanSet() {
				v.Set(reflect.Zero(v.Type()))
				return
			}
		}
		clearNullPointers(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				clearNullPointers(v.Field(i))
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			clearNullPointers(v.Index(i))
		}
	}
}

// RoundTrip encodes in, decodes the result into a new value of the same type
// and returns it together with the top-level keys that were encoded.
func (c Codec) RoundTrip(in any) (any, []string, error) {
	out := reflect.New(reflect.TypeOf(in).Elem()).Interface()

	if c.Tag == JSON.Tag {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode %T: %w", in, err)
		}

		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(out); err != nil {
			return nil, nil, fmt.Errorf("failed to decode %T: %w", out, err)
		}

		fields := map[string]json.RawMessage{}
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, nil, err
		}
		keys := make([]string, 0, len(fields))
		for key := range fields {
			keys = append(keys, key)
		}
		return out, keys, nil
	}

	values, err := c.Values(in)
	if err != nil {
		return nil, nil, err
	}
	parsed, err := url.ParseQuery(values.Encode())
	if err != nil {
		return nil, nil, err
	}
	if err := binding.MapFormWithTag(out, parsed, c.Tag); err != nil {
		return nil, nil, fmt.Errorf("failed to bind %T: %w", out, err)
	}

	keys := make([]string, 0, len(parsed))
	for key := range parsed {
		keys = append(keys, key)
	}
	return out, keys, nil
}

// Values encodes v as a query string using c's tag. Nil pointers and nil
// slices are left out, scalars are formatted the way gin parses them and
// anything else is sent as JSON.
func (c Codec) Values(v any) (url.Values, error) {
	values := url.Values{}
	if err := c.encode(reflect.ValueOf(v).Elem(), values); err != nil {
		return nil, err
	}
	return values, nil
}

func (c Codec) encode(v reflect.Value, values url.Values) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() && !sf.Anonymous {
			continue
		}
		name, _ := c.name(sf)
		if name == "-" {
			continue
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		if sf.Anonymous && fv.Kind() == reflect.Struct {
			if err := c.encode(fv, values); err != nil {
				return err
			}
			continue
		}

		if fv.Kind() == reflect.Slice {
			if fv.IsNil() {
				continue
			}
			for j := 0; j < fv.Len(); j++ {
				s, err := formatScalar(fv.Index(j))
				if err != nil {
					return fmt.Errorf("%s[%d]: %w", sf.Name, j, err)
				}
				values.Add(name, s)
			}
			continue
		}

		s, err := formatScalar(fv)
		if err != nil {
			return fmt.Errorf("%s: %w", sf.Name, err)
		}
		values.Set(name, s)
	}
	return nil
}

func formatScalar(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits()), nil
	default:
		data, err := json.Marshal(v.Interface())
		return string(data), err
	}
}

// ClearOptional sets every optional field of v to nil and returns the keys
// those fields are carried under. For JSON a field is optional when it can be
// nil and is tagged omitempty; for query and path parameters every field that
// can be nil is optional. Embedded pointers count as optional as a whole.
func (c Codec) ClearOptional(v any) []string {
	return c.clear(reflect.ValueOf(v).Elem())
}

func (c Codec) clear(v reflect.Value) []string {
	var keys []string
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() && !sf.Anonymous {
			continue
		}
		name, omitEmpty := c.name(sf)
		if name == "-" {
			continue
		}

		fv := v.Field(i)
		if sf.Anonymous && fv.Kind() == reflect.Struct {
			keys = append(keys, c.clear(fv)...)
			continue
		}
		if sf.Anonymous && fv.Kind() == reflect.Ptr && c.Tag != JSON.Tag {
			fv.Set(reflect.Zero(sf.Type))
			keys = append(keys, c.keys(sf.Type.Elem())...)
			continue
		}

		switch fv.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map:
			if c.Tag == JSON.Tag && !omitEmpty {
				continue
			}
			fv.Set(reflect.Zero(sf.Type))
			keys = append(keys, name)
		}
	}
	return keys
}

// keys lists every key a struct of type t is carried under.
func (c Codec) keys(t reflect.Type) []string {
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() && !sf.Anonymous {
			continue
		}
		name, _ := c.name(sf)
		if name == "-" {
			continue
		}
		ft := sf.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if sf.Anonymous && ft.Kind() == reflect.Struct {
			keys = append(keys, c.keys(ft)...)
			continue
		}
		keys = append(keys, name)
	}
	return keys
}

// name returns the key of sf under c's tag, defaulting to the field name the
// way encoding/json and gin do, and whether it is tagged omitempty.
func (c Codec) name(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get(c.Tag)
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" && !sf.Anonymous {
		name = sf.Name
	}
	return name, strings.Contains(opts, "omitempty")
}
