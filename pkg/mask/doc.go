// Package mask implements the pattern transform used by masked inputs. A
// pattern mixes placeholder tokens (`0` digit, `a` letter, `*` any character)
// with literal scaffolding; a backslash turns the next character into a
// literal. Applying a mask to raw input yields the display value, which always
// conforms to the pattern, and the unmasked value, which holds only the
// characters accepted by placeholders. The transform is pure: the same pattern
// and raw input always produce the same Value.
package mask
