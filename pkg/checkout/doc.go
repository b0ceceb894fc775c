// Package checkout defines the address and contact form shown when an order
// is placed. Postal codes are resolved against a static directory so that a
// complete CEP prefills the address inputs.
package checkout
