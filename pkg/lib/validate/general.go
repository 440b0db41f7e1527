package validate

import "reflect"

// NotNil checks that value is not nil. A nil pointer, map, slice, channel,
// function or interface stored in value counts as nil too.
// It returns an AbsentValueError using the provided message and arguments.
func NotNil(value any, msg string, args ...any) error {
	if value == nil {
		return absent(createError(msg, args...))
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if v.IsNil() {
			return absent(createError(msg, args...))
		}
	}
	return nil
}

// Must returns v, or panics with err if it is non-nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
