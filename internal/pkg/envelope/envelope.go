// Package envelope probes the varying response shapes upstream deployments
// wrap list and object payloads in. Endpoints are not guaranteed to agree on
// nesting, so callers pass candidate shapes in priority order and the first
// one that matches wins.
package envelope

import "github.com/goccy/go-json"

// Extractor returns the raw elements of a list found at one candidate
// location inside the payload, or nil when the shape does not match.
type Extractor func(raw []byte) []json.RawMessage

// Path builds an Extractor that descends through the named object fields
// and expects a JSON array at the end. With no fields it matches a bare
// top-level array.
func Path(fields ...string) Extractor {
	return func(raw []byte) []json.RawMessage {
		cur := json.RawMessage(raw)
		for _, field := range fields {
			var obj map[string]json.RawMessage
			if err := json.Unmarshal(cur, &obj); err != nil {
				return nil
			}
			next, ok := obj[field]
			if !ok {
				return nil
			}
			cur = next
		}
		var items []json.RawMessage
		if err := json.Unmarshal(cur, &items); err != nil {
			return nil
		}
		return items
	}
}

// DecodeList probes the extractors in order and decodes the first matching
// array into T. Elements that fail to decode are skipped rather than
// failing the whole list. Returns nil when no shape matches.
func DecodeList[T any](raw []byte, extractors ...Extractor) []T {
	for _, extract := range extractors {
		items := extract(raw)
		if items == nil {
			continue
		}
		out := make([]T, 0, len(items))
		for _, item := range items {
			var v T
			if err := json.Unmarshal(item, &v); err != nil {
				continue
			}
			out = append(out, v)
		}
		return out
	}
	return nil
}

// DecodeObject probes the candidate paths in order and decodes the first
// object keep accepts. An empty path candidate means the bare payload;
// a nil keep accepts any decodable object. Returns nil when no candidate
// yields an acceptable value.
func DecodeObject[T any](raw []byte, keep func(*T) bool, paths ...[]string) *T {
	for _, fields := range paths {
		obj := ObjectAt(raw, fields...)
		if obj == nil {
			continue
		}
		v := new(T)
		if err := json.Unmarshal(obj, v); err != nil {
			continue
		}
		if keep == nil || keep(v) {
			return v
		}
	}
	return nil
}

// StringAt descends through the named fields and returns the string found
// there, or "" when any step is missing or not a string.
func StringAt(raw []byte, fields ...string) string {
	cur := json.RawMessage(raw)
	for _, field := range fields {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(cur, &obj); err != nil {
			return ""
		}
		next, ok := obj[field]
		if !ok {
			return ""
		}
		cur = next
	}
	var s string
	if err := json.Unmarshal(cur, &s); err != nil {
		return ""
	}
	return s
}

// ObjectAt descends through the named fields and returns the raw object
// found there, or nil when any step is missing.
func ObjectAt(raw []byte, fields ...string) json.RawMessage {
	cur := json.RawMessage(raw)
	for _, field := range fields {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(cur, &obj); err != nil {
			return nil
		}
		next, ok := obj[field]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}
