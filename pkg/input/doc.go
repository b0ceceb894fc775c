// Package input provides the masked text input used by storefront forms.
//
// An Input keeps a display value that always conforms to its mask and the
// matching unmasked value in a single synchronized pair. Validation errors are
// attached from the outside and surfaced verbatim; the input never validates on
// its own. Optional inputs expose a hint while they are empty, and the callback
// variant notifies the caller every time the unmasked value reaches a given
// length.
//
// The underlying Field can be handed to several owners at once through
// MergeRefs, so the input's own handle and a caller supplied handle both
// resolve to the same field.
package input
