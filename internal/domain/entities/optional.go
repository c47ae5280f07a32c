package entities

type presence uint8

const (
	absent presence = iota
	null
	set
)

// Optional carries a snapshot field together with its presence.
//
// A field can be:
//   - absent: the key was not part of the image at all (zero value)
//   - null: the key was present with an explicit null
//   - set: the key was present with a value (which may itself be zero)
type Optional[T any] struct {
	value T
	state presence
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, state: set}
}

func Null[T any]() Optional[T] {
	return Optional[T]{state: null}
}

func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// Present reports whether the key existed in the image, null or not.
func (o Optional[T]) Present() bool { return o.state != absent }

func (o Optional[T]) IsNull() bool { return o.state == null }

func (o Optional[T]) HasValue() bool { return o.state == set }

// Get returns the value and whether one was set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == set
}

// OrElse returns the value when set, otherwise def.
func (o Optional[T]) OrElse(def T) T {
	if o.state == set {
		return o.value
	}
	return def
}
