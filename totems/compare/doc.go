// Package compare implements the comparison grammar shared by all assertion
// packages: six operators (==, !=, <, <=, >, >=) applied uniformly to a
// left-hand value, regardless of which container supplied it.
//
// Typed clauses (Clause) carry an operator and a right-hand operand and are
// evaluated against unwrapped values in check assertions:
//
//	value, err := strconv.Atoi("5")
//	check.OkThat(t, value, err, compare.Le(6))
//
// Textual clauses (ParseClause) parse the grammar "value <op> <literal>" for
// data-driven assertions where the operand arrives as text:
//
//	clause, err := compare.ParseClause("value >= 18")
package compare
