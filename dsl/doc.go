// Package dsl builds form validation schemas: ordered field-by-field rule
// declarations that validate a whole data tree in one accumulating pass and
// expose their layout for state-tree construction.
package dsl
