package translator

// Context carries the two translation-time mode flags a translation
// pass needs to track. The flags are fields on an explicit object that
// every recursive call shares by reference; a caller that changes a
// flag for a recursive sub-translation restores it on return, keeping
// recursion reentrant without package-level mutable state.
type Context struct {
	// InBlock is true while translating inside a function body or
	// nested block; false at file scope. Governs whether a declaration
	// emits as "static" (global) or "let mut" (local).
	InBlock bool

	// InExpression is true while translating the interior of a
	// composite expression; it suppresses the standalone-statement
	// rendering of postfix increment/decrement on identifiers.
	InExpression bool
}

// NewContext returns a Context with both flags cleared (file scope,
// not inside an expression).
func NewContext() *Context {
	return &Context{}
}

// Snapshot captures the current flag values so they can be restored on
// return from a recursive sub-translation, including early exits.
func (c *Context) Snapshot() Context {
	return *c
}

// Restore resets the flags to a previously captured Snapshot.
func (c *Context) Restore(snap Context) {
	*c = snap
}
