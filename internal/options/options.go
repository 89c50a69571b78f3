package options

// Source identifies the layer that last set an option value. Kept for
// diagnostics only; it never influences resolution.
type Source int

const (
	SourceUnset Source = iota
	SourceDefault
	SourceSettings
	SourceDerived
	SourceFlag
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceSettings:
		return "settings"
	case SourceDerived:
		return "derived"
	case SourceFlag:
		return "flag"
	default:
		return "unset"
	}
}

// Store holds the resolved options of a single invocation. All commands share
// one flat key namespace; values are strings or bools. Layers are applied in
// increasing precedence via Merge/Set, and derivation steps use SetIfAbsent so
// an explicitly supplied flag is never clobbered.
type Store struct {
	values  map[string]any
	sources map[string]Source
}

// New returns an empty store.
func New() *Store {
	return &Store{
		values:  make(map[string]any),
		sources: make(map[string]Source),
	}
}

// Merge applies a whole layer over the current contents, the incoming layer
// winning on key collision.
func (s *Store) Merge(layer map[string]any, src Source) {
	for k, v := range layer {
		s.values[k] = v
		s.sources[k] = src
	}
}

// Set assigns a single value, overwriting any previous layer.
func (s *Store) Set(key string, value any, src Source) {
	s.values[key] = value
	s.sources[key] = src
}

// SetIfAbsent assigns value only when key is not already set. It reports
// whether the assignment happened. Derivation hooks use this exclusively.
func (s *Store) SetIfAbsent(key string, value any) bool {
	if _, ok := s.values[key]; ok {
		return false
	}
	s.values[key] = value
	s.sources[key] = SourceDerived
	return true
}

// Has reports whether key holds a value from any layer.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Get returns the raw value, or nil when unset.
func (s *Store) Get(key string) any {
	return s.values[key]
}

// String returns the value as a string, or "" when unset or non-string.
func (s *Store) String(key string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return ""
}

// Bool returns the value as a bool, false when unset or non-bool.
func (s *Store) Bool(key string) bool {
	if v, ok := s.values[key].(bool); ok {
		return v
	}
	return false
}

// Source returns the layer that last set key.
func (s *Store) Source(key string) Source {
	return s.sources[key]
}
