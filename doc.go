// Package textly normalizes string like values into owned, valid UTF-8
// strings. It accepts owned strings, byte views, rune views, stdlib buffer
// wrappers and platform native representations (NUL terminated CString,
// UTF-16 WideString), dispatching each input class to a dedicated rule.
//
// Content that cannot be represented is substituted with the U+FFFD
// replacement character rather than reported as an error. A value that is
// already valid UTF-8 converts without substitution, and an owned string
// converts without reallocation.
package textly
