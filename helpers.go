package tablefor

import (
	"fmt"
	"reflect"
)

// Helpers is a registry of named helper functions used to
// post-process accessor values, the equivalent of helper methods
// on a view context. A helper receives the accessor value as
// first argument followed by the extra arguments declared with
// the Helper column option, and returns a single value or a
// (value, error) pair. Variadic helpers are allowed.
type Helpers map[string]any

// resolvedHelper is a helper function bound to its extra arguments.
// Resolution happens at column declaration time so that an unknown
// helper or unusable signature surfaces before any rendering.
type resolvedHelper struct {
	name  string
	fn    reflect.Value
	extra []reflect.Value
}

func (h Helpers) resolve(name string, extraArgs []any) (*resolvedHelper, error) {
	registered, ok := h[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrHelperNotFound, name)
	}
	fn := reflect.ValueOf(registered)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %q is %T, not a function", ErrInvalidHelper, name, registered)
	}
	t := fn.Type()

	numArgs := 1 + len(extraArgs)
	if t.IsVariadic() {
		if numArgs < t.NumIn()-1 {
			return nil, fmt.Errorf("%w: %q needs at least %d arguments, declared with %d", ErrInvalidHelper, name, t.NumIn()-1, numArgs)
		}
	} else if numArgs != t.NumIn() {
		return nil, fmt.Errorf("%w: %q takes %d arguments, declared with %d", ErrInvalidHelper, name, t.NumIn(), numArgs)
	}
	if t.NumOut() == 0 || t.NumOut() > 2 || (t.NumOut() == 2 && t.Out(1) != errorType) {
		return nil, fmt.Errorf("%w: %q must return a value or (value, error)", ErrInvalidHelper, name)
	}

	extra := make([]reflect.Value, len(extraArgs))
	for i, arg := range extraArgs {
		paramType := helperParamType(t, 1+i)
		v := reflect.ValueOf(arg)
		switch {
		case arg == nil:
			v = reflect.Zero(paramType)
		case !v.Type().AssignableTo(paramType):
			if !v.Type().ConvertibleTo(paramType) {
				return nil, fmt.Errorf("%w: %q argument %d: cannot use %T as %s", ErrInvalidHelper, name, i+1, arg, paramType)
			}
			v = v.Convert(paramType)
		}
		extra[i] = v
	}

	return &resolvedHelper{name: name, fn: fn, extra: extra}, nil
}

// helperParamType returns the type of the parameter at index,
// unwrapping the slice type of a variadic last parameter.
func helperParamType(t reflect.Type, index int) reflect.Type {
	if t.IsVariadic() && index >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(index)
}

func (h *resolvedHelper) call(value reflect.Value) (any, error) {
	paramType := helperParamType(h.fn.Type(), 0)
	for value.Kind() == reflect.Interface {
		value = value.Elem()
	}
	switch {
	case !value.IsValid():
		value = reflect.Zero(paramType)
	case !value.Type().AssignableTo(paramType):
		if !value.Type().ConvertibleTo(paramType) {
			return nil, fmt.Errorf("helper %q cannot take %s value as first argument", h.name, value.Type())
		}
		value = value.Convert(paramType)
	}
	results := h.fn.Call(append([]reflect.Value{value}, h.extra...))
	if len(results) == 2 && !results[1].IsNil() {
		return nil, fmt.Errorf("helper %q: %w", h.name, results[1].Interface().(error))
	}
	return results[0].Interface(), nil
}
