package enum

import (
	"fmt"
	"reflect"
)

var enumManager = map[string]any{}

type enum[T comparable] struct {
	toEnum   map[string]T
	toString map[T]string
}

// New registers value under name. It must be called at package init time,
// the registry is not guarded for concurrent writes.
func New[T comparable](value T, name string) T {
	t := reflect.TypeOf(value)
	key := t.PkgPath() + "." + t.Name()
	if _, ok := enumManager[key]; !ok {
		enumManager[key] = enum[T]{toEnum: make(map[string]T), toString: make(map[T]string)}
	}

	e := enumManager[key].(enum[T])
	e.toEnum[name] = value
	e.toString[value] = name
	return value
}

func ToEnum[T comparable](s string) (T, error) {
	var defaultT T
	t := reflect.TypeOf(defaultT)
	e, ok := enumManager[t.PkgPath()+"."+t.Name()]
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	v, ok := e.(enum[T]).toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return v, nil
}

func ToString[T comparable](value T) string {
	t := reflect.TypeOf(value)
	e, ok := enumManager[t.PkgPath()+"."+t.Name()]
	if !ok {
		return ""
	}

	return e.(enum[T]).toString[value]
}
