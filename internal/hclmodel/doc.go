// Package hclmodel loads reaction network models written in HCL.
//
// A model file declares compartments, parameters, species and reactions as
// top-level blocks:
//
//	compartment "cell" {}
//
//	parameter "k1" { value = 0.3 }
//
//	species "A" { compartment = "cell" }
//	species "B" {
//	  compartment = "cell"
//	  constant    = true
//	}
//
//	reaction "R1" {
//	  compartment = "cell"
//	  reactant "A" { coefficient = 2 }
//	  product "B" {}
//	  rate_law = k1 * A
//	}
//
// Rate laws are kept as syntax trees and never evaluated; the builder only
// inspects the identifiers they mention.
package hclmodel
