package gomap

import (
	"fmt"
	"reflect"
	"strings"
)

type fieldInfo struct {
	name      string
	index     []int
	omitEmpty bool
}

// parseTag splits a struct tag value such as `name,omitempty`.
func parseTag(tag string) (name string, omitEmpty bool) {
	name, rest, _ := strings.Cut(tag, ",")
	for _, opt := range strings.Split(rest, ",") {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}

// structFields lists the mapped fields of a struct type in declaration
// order. Fields of embedded structs are flattened one level.
func structFields(typ reflect.Type, tagName string) ([]fieldInfo, error) {
	var res []fieldInfo
	seen := map[string]bool{}
	add := func(f reflect.StructField, index []int) error {
		tag := f.Tag.Get(tagName)
		if tag == "-" {
			return nil
		}
		name, omitEmpty := parseTag(tag)
		if name == "" {
			name = f.Name
		}
		if seen[name] {
			return fmt.Errorf("field name conflict on %q in %s", name, typ)
		}
		seen[name] = true
		res = append(res, fieldInfo{name: name, index: index, omitEmpty: omitEmpty})
		return nil
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get(tagName) == "" {
			for j := 0; j < f.Type.NumField(); j++ {
				ef := f.Type.Field(j)
				if !ef.IsExported() || ef.Anonymous {
					continue
				}
				if err := add(ef, []int{i, j}); err != nil {
					return nil, err
				}
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		if err := add(f, f.Index); err != nil {
			return nil, err
		}
	}
	return res, nil
}
