// Package pathutil turns arbitrary path strings into canonical lookup keys.
//
// A Canonicalizer is fixed to one case policy and one current directory at
// construction. It produces two forms for every input:
//   - the full path: absolute, slash-separated, dot segments resolved,
//     original casing kept (used for reporting)
//   - the canonical Path: the full path case-folded when the policy is
//     case-insensitive (used for identity and exclusion matching)
//
// Roots are "/", drive roots such as "c:/", and UNC roots such as
// "//server/share/".
package pathutil
