package value

import (
	"fmt"
	"reflect"

	"github.com/RumbleDiscovery/bustache/internal/ast"
)

// Of classifies an arbitrary Go value into the value model. Types that
// already implement Ptr or Compatible are used as-is; everything else is
// classified by reflection, generalizing the teacher's reflect-based
// lookup/indirect/isEmpty walk into the explicit kind model.
func Of(x any) Ptr {
	if x == nil {
		return Null
	}
	if p, ok := x.(Ptr); ok {
		return p
	}
	if c, ok := x.(Compatible); ok {
		return c.BustacheValue()
	}
	return ofReflect(reflect.ValueOf(x))
}

// indirect dereferences pointers and interfaces until it reaches a
// concrete value, or an invalid Value if it bottoms out on a nil pointer.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() {
		switch v.Kind() {
		case reflect.Ptr, reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		default:
			return v
		}
	}
	return v
}

func ofReflect(v reflect.Value) Ptr {
	v = indirect(v)
	if !v.IsValid() {
		return Null
	}
	switch v.Kind() {
	case reflect.Bool:
		return Bool(v.Bool())
	case reflect.String:
		return Str(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number{V: v.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number{V: v.Uint()}
	case reflect.Float32, reflect.Float64:
		return Number{V: v.Float()}
	case reflect.Slice, reflect.Array:
		return &reflectList{v: v}
	case reflect.Map:
		return &reflectObject{v: v}
	case reflect.Struct:
		return &reflectObject{v: v}
	case reflect.Func:
		if p, ok := ofFunc(v); ok {
			return p
		}
		return Null
	default:
		return Null
	}
}

// reflectObject adapts a reflect.Value of Kind Map or Struct to Object,
// trying a no-argument method before a field/map-key, exactly as the
// teacher's lookup walks methods before struct fields.
type reflectObject struct {
	v reflect.Value
}

func (*reflectObject) Kind() Kind { return KindObject }

func (o *reflectObject) Get(key string) (Ptr, bool) {
	v := o.v
	if m := v.MethodByName(key); m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() >= 1 {
		out := m.Call(nil)
		return Of(out[0].Interface()), true
	}
	switch v.Kind() {
	case reflect.Map:
		kv := reflect.ValueOf(key)
		keyType := v.Type().Key()
		if !kv.Type().ConvertibleTo(keyType) {
			return nil, false
		}
		mv := v.MapIndex(kv.Convert(keyType))
		if !mv.IsValid() {
			return nil, false
		}
		return Of(mv.Interface()), true
	case reflect.Struct:
		fv := v.FieldByName(key)
		if !fv.IsValid() || !fv.CanInterface() {
			return nil, false
		}
		return Of(fv.Interface()), true
	default:
		return nil, false
	}
}

// reflectList adapts a reflect.Value of Kind Slice or Array to List.
type reflectList struct {
	v reflect.Value
}

func (*reflectList) Kind() Kind { return KindList }
func (l *reflectList) Empty() bool {
	return l.v.Len() == 0
}
func (l *reflectList) Iterate(fn func(Ptr) error) error {
	for i := 0; i < l.v.Len(); i++ {
		if err := fn(Of(l.v.Index(i).Interface())); err != nil {
			return err
		}
	}
	return nil
}

// Recompile lets the value package turn lambda-produced template text back
// into a Document without importing the compiler package directly (which
// would create an import cycle through the render package). The root
// package wires this at init time to the real compiler.
var Recompile func(source string) (*ast.Document, error)

// ofFunc recognizes two lambda shapes, generalizing the teacher's
// reflect.Func section-lambda support (mustache.go's renderSection) into
// the lazy-value/lazy-format split spec.md calls for:
//
//   - func() (string, error) / func() string: a lazy VALUE, the result is
//     printed like any other value (not reinterpreted as a template).
//   - func(string) (string, error): a lazy FORMAT; the section's own body
//     text is handed to it, and whatever it returns is recompiled and
//     rendered in place, matching classic Mustache section lambdas.
func ofFunc(v reflect.Value) (Ptr, bool) {
	t := v.Type()
	errType := reflect.TypeOf((*error)(nil)).Elem()

	switch {
	case t.NumIn() == 0 && t.NumOut() == 1 && t.Out(0).Kind() == reflect.String:
		return funcLazyValue{fn: func() (string, error) {
			out := v.Call(nil)
			return out[0].String(), nil
		}}, true
	case t.NumIn() == 0 && t.NumOut() == 2 && t.Out(0).Kind() == reflect.String && t.Out(1) == errType:
		return funcLazyValue{fn: func() (string, error) {
			out := v.Call(nil)
			s := out[0].String()
			if errv := out[1]; !errv.IsNil() {
				return "", errv.Interface().(error)
			}
			return s, nil
		}}, true
	case t.NumIn() == 1 && t.In(0).Kind() == reflect.String &&
		t.NumOut() == 2 && t.Out(0).Kind() == reflect.String && t.Out(1) == errType:
		return funcLazyFormat{fn: func(text string) (string, error) {
			out := v.Call([]reflect.Value{reflect.ValueOf(text)})
			s := out[0].String()
			if errv := out[1]; !errv.IsNil() {
				return "", errv.Interface().(error)
			}
			return s, nil
		}}, true
	default:
		return nil, false
	}
}

type funcLazyValue struct {
	fn func() (string, error)
}

func (funcLazyValue) Kind() Kind { return KindLazyValue }
func (f funcLazyValue) Invoke(_ *ast.View) (Ptr, error) {
	s, err := f.fn()
	if err != nil {
		return nil, err
	}
	return Str(s), nil
}

type funcLazyFormat struct {
	fn func(text string) (string, error)
}

func (funcLazyFormat) Kind() Kind { return KindLazyFormat }
func (f funcLazyFormat) Invoke(view *ast.View) (*ast.Document, error) {
	var text string
	if view != nil {
		text = ast.Reconstruct(view.Arena, view.Content)
	}
	result, err := f.fn(text)
	if err != nil {
		return nil, err
	}
	if Recompile == nil {
		return nil, fmt.Errorf("bustache: lambda returned template text but no compiler is wired (value.Recompile is nil)")
	}
	return Recompile(result)
}
