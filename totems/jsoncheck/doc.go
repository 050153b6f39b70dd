// Package jsoncheck provides assertions over raw JSON documents: field
// extraction with the textual comparison grammar, existence checks, and
// JSON Schema validation.
//
// Paths accept both dot and bracket notation:
//
//	jsoncheck.Field(t, body, "items[0].amount", compare.MustParseClause("value >= 100"))
//	jsoncheck.Exists(t, body, "metadata.request_id")
//	jsoncheck.Schema(t, body, schemaBytes)
//
// Failure reporting follows the same diagnostic shape and hard-failure
// contract as package check.
package jsoncheck
