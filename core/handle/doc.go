// Package handle models the ownership of values produced by plugin
// registries. A registry resolves one Policy per family and wraps every
// constructed value accordingly: shared handles are reference counted,
// exclusive handles are move-only with a single live holder, borrowed
// handles leave lifetime entirely to the caller.
//
// Abstract types opt into a non-default policy by implementing Owner:
//
//	func (Conn) PreferredPolicy() handle.Policy { return handle.PolicyExclusive }
//
// Everything else defaults to PolicyShared.
package handle
