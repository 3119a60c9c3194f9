// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// The status and configuration documents are externally authored and
// have drifted across schema revisions, so no traversal may assume a
// shape. Every access goes through one of the coercion helpers below:
// a type mismatch degrades to the empty container or zero value, never
// to an error.

// asMapping returns v as a string-keyed mapping, or an empty mapping
// when v is any other shape (nil, scalar, sequence). Legacy parsers
// produce map[any]any; those keys are stringified.
func asMapping(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	default:
		return map[string]any{}
	}
}

// asMappingOK is asMapping plus a flag reporting whether v actually
// was a mapping, for callers that must distinguish an authored empty
// mapping from a coerced non-mapping shape.
func asMappingOK(v any) (map[string]any, bool) {
	switch v.(type) {
	case map[string]any, map[any]any:
		return asMapping(v), true
	default:
		return map[string]any{}, false
	}
}

// asSequence returns v as a sequence, or an empty sequence when v is
// any other shape.
func asSequence(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return []any{}
}

// asString returns v if it is a string, otherwise "".
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asBool interprets a completion indicator. Booleans are taken as-is;
// a handful of affirmative strings seen in historical status documents
// also count as true. Everything else is false.
func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "done", "complete", "completed":
			return true
		}
	}
	return false
}

// LoadDocument parses raw YAML text into a trusted mapping. A parse
// failure or a document whose root is not a mapping (string, number,
// sequence, null) yields an empty mapping — malformed source files must
// never stop report generation.
func LoadDocument(data []byte) map[string]any {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		logf("loadDocument: parse error: %v", err)
		return map[string]any{}
	}
	return asMapping(doc)
}
