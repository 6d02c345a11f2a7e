// Package model defines the format-agnostic, read-only representation of a
// reaction network: compartments, species, reactions and their rate laws,
// along with the Loader interface implemented by each input format.
//
// The `model.Model` is the single source of truth for the builder. Concrete
// loaders, such as for HCL and SBML, live in separate packages.
package model
