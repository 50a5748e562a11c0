package signal

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Kind tells free-function receivers apart from bound-method receivers.
type Kind uint8

const (
	KindFunction Kind = iota + 1
	KindMethod
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	default:
		return "unknown"
	}
}

// Slot is a receiver endpoint: something invocable with the signal's payload.
// Implementations must be comparable (pointer types) because signals find
// connected slots by reference identity.
type Slot[T any] interface {
	// Invoke calls the bound target. Unbound slots do nothing.
	Invoke(v T)

	// Kind reports the receiver variant.
	Kind() Kind

	// Equal reports whether other has the same kind and the same target.
	Equal(other Slot[T]) bool
}

// FuncSlot is a receiver backed by a free function.
type FuncSlot[T any] struct {
	fn func(T)
}

// NewFuncSlot creates a free-function slot. A nil fn yields an unbound slot.
//
// Example:
//
//	onClick := signal.NewFuncSlot(func(x int) {
//	    fmt.Println("clicked", x)
//	})
//	click.Connect(onClick)
func NewFuncSlot[T any](fn func(T)) *FuncSlot[T] {
	return &FuncSlot[T]{fn: fn}
}

// Bind replaces the target function. Passing nil unbinds the slot.
func (s *FuncSlot[T]) Bind(fn func(T)) {
	s.fn = fn
}

func (s *FuncSlot[T]) Invoke(v T) {
	if s.fn != nil {
		s.fn(v)
	}
}

func (s *FuncSlot[T]) Kind() Kind {
	return KindFunction
}

func (s *FuncSlot[T]) Equal(other Slot[T]) bool {
	o, ok := Unwrap(other).(*FuncSlot[T])
	if !ok || o == nil {
		return false
	}
	return funcAddr(o.fn) == funcAddr(s.fn)
}

func (s *FuncSlot[T]) String() string {
	return funcName(s.fn)
}

// MethodSlot is a receiver backed by an object and one of its methods,
// given as a method expression such as (*Receiver).OnClick.
type MethodSlot[O any, T any] struct {
	obj    *O
	method func(*O, T)
}

// NewMethodSlot binds method to obj. Either may be nil, which yields an
// unbound slot that ignores invocations until Bind is called.
//
// Example:
//
//	type Receiver struct{ clicks int }
//
//	func (r *Receiver) OnClick(x int) { r.clicks += x }
//
//	r := &Receiver{}
//	click.Connect(signal.NewMethodSlot(r, (*Receiver).OnClick))
func NewMethodSlot[O any, T any](obj *O, method func(*O, T)) *MethodSlot[O, T] {
	return &MethodSlot[O, T]{obj: obj, method: method}
}

// Bind replaces the target object and method.
func (s *MethodSlot[O, T]) Bind(obj *O, method func(*O, T)) {
	s.obj = obj
	s.method = method
}

// Object returns the bound object, or nil.
func (s *MethodSlot[O, T]) Object() *O {
	return s.obj
}

func (s *MethodSlot[O, T]) Invoke(v T) {
	if s.obj != nil && s.method != nil {
		s.method(s.obj, v)
	}
}

func (s *MethodSlot[O, T]) Kind() Kind {
	return KindMethod
}

func (s *MethodSlot[O, T]) Equal(other Slot[T]) bool {
	o, ok := Unwrap(other).(*MethodSlot[O, T])
	if !ok || o == nil {
		return false
	}
	return o.obj == s.obj && funcAddr(o.method) == funcAddr(s.method)
}

func (s *MethodSlot[O, T]) String() string {
	var zero O
	return fmt.Sprintf("(*%T).%s", zero, shortName(funcName(s.method)))
}

// Void is the payload of zero-argument signals.
type Void = struct{}

// NotifySlot is a free-function receiver for zero-argument signals.
type NotifySlot struct {
	fn func()
}

// NewNotifySlot creates a zero-argument slot for a Signal[Void].
func NewNotifySlot(fn func()) *NotifySlot {
	return &NotifySlot{fn: fn}
}

// Bind replaces the target function.
func (s *NotifySlot) Bind(fn func()) {
	s.fn = fn
}

func (s *NotifySlot) Invoke(Void) {
	if s.fn != nil {
		s.fn()
	}
}

func (s *NotifySlot) Kind() Kind {
	return KindFunction
}

func (s *NotifySlot) Equal(other Slot[Void]) bool {
	o, ok := Unwrap(other).(*NotifySlot)
	if !ok || o == nil {
		return false
	}
	return funcAddr(o.fn) == funcAddr(s.fn)
}

func (s *NotifySlot) String() string {
	return funcName(s.fn)
}

// Pair carries two values through a single signal.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Func2Slot is a free-function receiver taking both halves of a Pair.
type Func2Slot[A, B any] struct {
	fn func(A, B)
}

// NewFunc2Slot creates a two-argument slot for a Signal[Pair[A, B]].
func NewFunc2Slot[A, B any](fn func(A, B)) *Func2Slot[A, B] {
	return &Func2Slot[A, B]{fn: fn}
}

// Bind replaces the target function.
func (s *Func2Slot[A, B]) Bind(fn func(A, B)) {
	s.fn = fn
}

func (s *Func2Slot[A, B]) Invoke(p Pair[A, B]) {
	if s.fn != nil {
		s.fn(p.First, p.Second)
	}
}

func (s *Func2Slot[A, B]) Kind() Kind {
	return KindFunction
}

func (s *Func2Slot[A, B]) Equal(other Slot[Pair[A, B]]) bool {
	o, ok := Unwrap(other).(*Func2Slot[A, B])
	if !ok || o == nil {
		return false
	}
	return funcAddr(o.fn) == funcAddr(s.fn)
}

func (s *Func2Slot[A, B]) String() string {
	return funcName(s.fn)
}

// funcAddr returns the code address of fn, or 0 for nil.
// Closures built from the same literal share an address.
func funcAddr(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return 0
	}
	return v.Pointer()
}

func funcName(fn any) string {
	addr := funcAddr(fn)
	if addr == 0 {
		return "<unbound>"
	}
	if f := runtime.FuncForPC(addr); f != nil {
		return f.Name()
	}
	return fmt.Sprintf("func@%#x", addr)
}

// shortName trims a fully qualified function name to its last element.
func shortName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
