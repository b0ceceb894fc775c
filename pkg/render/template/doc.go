// Package template defines the renderer-agnostic template seam used by the
// HTML renderer. The gotemplate subpackage implements it with pongo2.
package template
