package domain

import "encoding/json"

// Source tells where a looked-up value came from
type Source int

const (
	SourceRemote Source = iota
	SourceCache
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceCache:
		return "cache"
	default:
		return "fallback"
	}
}

// MarshalJSON encodes the source by name
func (s Source) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a source name; unknown names read as fallback
func (s *Source) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "remote":
		*s = SourceRemote
	case "cache":
		*s = SourceCache
	default:
		*s = SourceFallback
	}
	return nil
}

// Result carries a looked-up value together with its origin.
// Reason is set only for fallback values and holds the error that caused it.
type Result[T any] struct {
	Value  T
	Source Source
	Reason error
}

// Remote wraps a value obtained from a remote API
func Remote[T any](v T) Result[T] {
	return Result[T]{Value: v, Source: SourceRemote}
}

// Cached wraps a value served from the local cache
func Cached[T any](v T) Result[T] {
	return Result[T]{Value: v, Source: SourceCache}
}

// Fallback wraps a static substitute and the reason it was needed
func Fallback[T any](v T, reason error) Result[T] {
	return Result[T]{Value: v, Source: SourceFallback, Reason: reason}
}

// IsFallback reports whether the value is a static substitute
func (r Result[T]) IsFallback() bool {
	return r.Source == SourceFallback
}
