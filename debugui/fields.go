// Package debugui provides a Dear ImGui developer overlay for a running
// session: live state, scheduler timings and a frame-time graph.
//
// The overlay needs cgo and is not available in js/wasm builds. The field
// formatting and frame history helpers build everywhere.
package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

// FieldInfo describes one exported struct field.
type FieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
	IsStruct  bool
}

// Field is a formatted field value.
type Field struct {
	Name  string
	Value string
}

// FieldCache memoizes exported-field lookups per type.
type FieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

func NewFieldCache() *FieldCache {
	return &FieldCache{fields: make(map[reflect.Type][]FieldInfo)}
}

func (fc *FieldCache) Get(t reflect.Type) []FieldInfo {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if cached, ok := fc.fields[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			ft := field.Type
			isPointer := ft.Kind() == reflect.Pointer
			if isPointer {
				ft = ft.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Index:     i,
				IsPointer: isPointer,
				IsStruct:  ft.Kind() == reflect.Struct,
			})
		}
	}

	fc.fields[t] = fields
	return fields
}

var globalFieldCache = NewFieldCache()

// Fields flattens the exported fields of the struct v (or pointer to one)
// into name/value pairs. Nested structs are prefixed with their field name.
// Non-struct values yield nil.
func Fields(v any) []Field {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}
	return appendFields(nil, "", val)
}

func appendFields(out []Field, prefix string, val reflect.Value) []Field {
	for _, info := range globalFieldCache.Get(val.Type()) {
		fv := val.Field(info.Index)
		name := prefix + info.Name

		if info.IsPointer {
			if fv.IsNil() {
				out = append(out, Field{Name: name, Value: "nil"})
				continue
			}
			fv = fv.Elem()
		}

		switch {
		case info.IsStruct && !implementsStringer(fv):
			out = appendFields(out, name+".", fv)
		case fv.Kind() == reflect.Slice || fv.Kind() == reflect.Map:
			out = append(out, Field{Name: name, Value: fmt.Sprintf("[%d items]", fv.Len())})
		default:
			out = append(out, Field{Name: name, Value: fmt.Sprintf("%v", fv.Interface())})
		}
	}
	return out
}

func implementsStringer(v reflect.Value) bool {
	_, ok := v.Interface().(fmt.Stringer)
	return ok
}
