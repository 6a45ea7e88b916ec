// Package sample defines the labeled-span samples produced by corpus readers.
//
// A NameSample is one tokenized sentence plus the entity spans found in it:
//
//   - Tokens: the cleaned token sequence, markup removed
//   - Names: half-open token ranges labeled with a lowercase entity type
//   - ClearAdaptiveData: set on the first sample of every document so stateful
//     consumers can drop history carried across document boundaries
//
// Samples are immutable once built; New copies its inputs.
package sample
