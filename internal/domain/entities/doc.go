// Package entities holds the authoring state behind every generated document:
// the grid recipe session and its compiler, and the modinfo, item and block
// forms. These are pure domain types with no infrastructure dependencies.
package entities
