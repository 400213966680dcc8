// Package instruction defines the closed command grammar carried by the
// audio channel and the total parser that classifies raw instruction text.
//
// The grammar recognizes three verbs:
//
//	NOOP                 no action
//	SET <name> [value]   upsert a parameter; value defaults to "ON"
//	RUN <name>           invoke a registered task handler
//
// Anything else parses to Unknown. Parse never fails: malformed text is a
// classification outcome, not an error, so dispatch can be an exhaustive
// type switch over the Command variants.
package instruction
