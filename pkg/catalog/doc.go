// Package catalog holds the storefront product records and the static,
// embedded fixture they are loaded from. Records are immutable once loaded;
// Available filters them for display without reordering.
package catalog
