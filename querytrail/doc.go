// Package querytrail is the runtime support library for code produced by
// trailgen.
//
// # Overview
//
// Generated code lets a resolver look ahead into the query it is serving:
// before loading a relation it can ask whether the client selected it, which
// nested fields it selected, and which arguments it passed. The runtime splits
// that work into three pieces:
//
//   - Selection: the look-ahead view supplied by the host execution engine.
//     An engine places the selection of the field being resolved into the
//     request context with WithSelection; generated binding code reads it back
//     with SelectionFromContext. FromOperation adapts a gqlparser query
//     document for engines built on github.com/vektah/gqlparser/v2.
//   - Trail and Args: untyped navigation handles. Generated code wraps them in
//     per-type handles (UserTrail, WalkedUserTrail, UserFriendsArgs, ...) so
//     that navigation follows the schema at compile time.
//   - Value and the converters: a tagged dynamic value (Null, Int, Float,
//     String, Boolean, Enum, List, Object) and functions that turn it into Go
//     values.
//
// # Walked and not-walked trails
//
// A trail produced by a parent lookup is not walked: it may carry no
// selection at all when the client did not ask for the field. Walk confirms
// the selection exists and yields the walked variant, which is the only one
// exposing argument accessors and downcasts to concrete types. The distinction
// is made with two generated types rather than a runtime flag, so misuse does
// not compile.
//
// # Errors
//
// Conversions never panic. A value whose tag does not match the requested Go
// type yields a *ConversionError ("expected String, got Int"); a malformed
// URL, UUID, Date or DateTime yields a *ParseError carrying the parser's
// message; a missing required argument yields an *ArgumentError wrapping
// ErrMissingArgument. These conditions indicate that the engine's validation
// and the generated code disagree about the schema, and they fail the field
// being resolved rather than the process.
package querytrail
