// Package driven defines the secondary (driven) ports for quantio.
//
// Driven ports are interfaces the core calls out through. Adapters under
// internal/adapters/driven implement them. The only driven dependency this
// system has is preference persistence; the calculator and converter
// engines are pure and need nothing from the outside.
package driven
