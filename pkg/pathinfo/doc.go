// Package pathinfo decomposes path strings and answers case-aware
// existence questions about them.
//
// The string side (PathInfo, Parse) is pure and never touches the
// filesystem. The filesystem side (Checker) is parameterized by a
// CaseMode so that case-sensitive, case-insensitive and case-preserving
// semantics can all be exercised on any backing filesystem.
package pathinfo
