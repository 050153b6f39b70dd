package jsoncheck

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/ObliqueMotion/lib-totems/totems/compare"
)

var bracketIndex = regexp.MustCompile(`\[(\d+)\]`)

// normalizePath converts array bracket notation to gjson dot notation,
// e.g. "items[0].tags[1]" -> "items.0.tags.1".
func normalizePath(path string) string {
	converted := bracketIndex.ReplaceAllString(path, ".$1")

	return strings.TrimPrefix(converted, ".")
}

// Field passes when the value at path satisfies the clause. The path accepts
// both dot and bracket notation; a missing path fails.
//
//	jsoncheck.Field(t, body, "items[0].amount", compare.MustParseClause("value >= 100"))
func Field(t TestingT, body []byte, path string, clause compare.ParsedClause, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	result := gjson.GetBytes(body, normalizePath(path))
	if !result.Exists() {
		return fail(t, "body has field at path", []detail{
			{"path", path},
		}, msgAndArgs...)
	}

	holds, err := clause.Holds(result.Value())
	if err != nil {
		return fail(t, "field(left) => left "+clause.Op.String()+" right", []detail{
			{"path", path},
			{"error", err.Error()},
		}, msgAndArgs...)
	}

	if holds {
		return pass(t)
	}

	return fail(t, "field(left) => left "+clause.Op.String()+" right", []detail{
		{"path", path},
		{"left", result.Value()},
		{"right", clause.Rhs},
	}, msgAndArgs...)
}

// Exists passes when the path resolves to any value, including null.
func Exists(t TestingT, body []byte, path string, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if gjson.GetBytes(body, normalizePath(path)).Exists() {
		return pass(t)
	}

	return fail(t, "body has field at path", []detail{
		{"path", path},
	}, msgAndArgs...)
}

// NotExists passes when the path does not resolve.
func NotExists(t TestingT, body []byte, path string, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	result := gjson.GetBytes(body, normalizePath(path))
	if !result.Exists() {
		return pass(t)
	}

	return fail(t, "body has no field at path", []detail{
		{"path", path},
		{"value", result.Value()},
	}, msgAndArgs...)
}

// Schema passes when the body validates against the JSON Schema document.
// Validation failures list every violated constraint.
func Schema(t TestingT, body, schema []byte, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fail(t, "body validates against schema", []detail{
			{"error", err.Error()},
		}, msgAndArgs...)
	}

	if result.Valid() {
		return pass(t)
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}

	return fail(t, "body validates against schema", []detail{
		{"violations", strings.Join(violations, "; ")},
	}, msgAndArgs...)
}
