// Package krxlist builds the list of common equity listings on KOSPI and
// KOSDAQ from the vendor-published securities master files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, zip/, korean/).
package krxlist
