// Package driven defines the driven ports (secondary interfaces) of
// the hexagonal architecture: contracts the core services require from
// infrastructure adapters such as storage, synthesis engines and the
// audio effects chain.
package driven
