// Package validation checks submitted checkout values against an OpenAPI 3
// schema and reports messages per field. Messages come from the schema's
// x-error-message and x-required-message extensions so the copy lives next
// to the rules.
package validation
