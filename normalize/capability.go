package normalize

// Redacted is the placeholder emitted in place of any Sensitive value.
// The original contents are never inspected.
const Redacted = "<redacted>"

// Sensitive marks a type whose instances must never appear un-redacted in
// normalized output. The normalizer only tests for the presence of this
// capability; the method body is irrelevant and is never called.
//
// Example:
//
//	type APIKey string
//
//	func (APIKey) Sensitive() {}
type Sensitive interface {
	Sensitive()
}

// Enum is implemented by enumerated types that normalize to their
// underlying scalar value.
//
// Example:
//
//	type Color int
//
//	func (c Color) EnumValue() any { return int(c) }
type Enum interface {
	EnumValue() any
}

// ModelDumper is implemented by model types that produce their own keyed
// representation. The returned map is emitted as-is and its values are
// normalized on subsequent passes; implementations must return a freshly
// allocated map, since the normalizer takes ownership of it.
type ModelDumper interface {
	ModelDump() map[string]any
}

// Mapper is the legacy counterpart of ModelDumper, kept for types that
// predate it. ModelDumper takes priority when a type implements both.
type Mapper interface {
	ToMap() map[string]any
}

// Item is one key/value pair produced by an ItemLister.
type Item struct {
	Key   string
	Value any
}

// ItemLister is implemented by types that expose a custom items accessor.
// Pairs with keys beginning with an underscore are excluded from output.
type ItemLister interface {
	Items() []Item
}
