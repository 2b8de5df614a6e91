package tablefor

import (
	"fmt"
	"go/token"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// accessorValue resolves an accessor name on a record.
// Methods take precedence over struct fields and struct fields
// over map keys. A snake_case accessor also matches its exported
// Go form, so "first_name" finds the method or field "FirstName".
func accessorValue(record reflect.Value, accessor string) (reflect.Value, error) {
	if !record.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: nil record for accessor %q", ErrNoAccessor, accessor)
	}
	names := []string{accessor}
	if exported := pascalCase(accessor); exported != accessor {
		names = append(names, exported)
	}

	for _, name := range names {
		if method := record.MethodByName(name); method.IsValid() {
			return callAccessorMethod(method, record.Type(), name)
		}
	}

	v := record
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil %s record for accessor %q", ErrNoAccessor, record.Type(), accessor)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		for _, name := range names {
			if !token.IsExported(name) {
				continue
			}
			if field := v.FieldByName(name); field.IsValid() {
				return field, nil
			}
		}
	case reflect.Map:
		keyType := v.Type().Key()
		if keyType.Kind() == reflect.String {
			for _, name := range names {
				key := reflect.ValueOf(name).Convert(keyType)
				if value := v.MapIndex(key); value.IsValid() {
					return value, nil
				}
			}
		}
	}

	return reflect.Value{}, fmt.Errorf("%w: %s has no accessor %q", ErrNoAccessor, record.Type(), accessor)
}

// callAccessorMethod calls a zero argument accessor method that
// returns a single value or a (value, error) pair.
func callAccessorMethod(method reflect.Value, recordType reflect.Type, name string) (reflect.Value, error) {
	t := method.Type()
	if t.NumIn() != 0 {
		return reflect.Value{}, fmt.Errorf("%w: method %s.%s takes arguments", ErrNoAccessor, recordType, name)
	}
	switch t.NumOut() {
	case 1:
		return method.Call(nil)[0], nil
	case 2:
		if t.Out(1) != errorType {
			break
		}
		results := method.Call(nil)
		if !results[1].IsNil() {
			return reflect.Value{}, fmt.Errorf("accessor %s.%s: %w", recordType, name, results[1].Interface().(error))
		}
		return results[0], nil
	}
	return reflect.Value{}, fmt.Errorf("%w: method %s.%s must return a value or (value, error)", ErrNoAccessor, recordType, name)
}
