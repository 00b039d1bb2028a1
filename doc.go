// Package localepatch edits translation catalogs: JSON documents of nested
// objects whose leaves are the strings an application shows.
//
// The main operation is [Apply], which sets one leaf addressed by a dotted
// [ir.Path], creating the objects leading to it.  Everything else in the
// document, including the order of fields, is kept, so that catalogs
// written back to disk differ from what was read only by the patched keys.
//
// [Merge] fills the keys one catalog lacks from another, [Match] tells
// whether a catalog already holds a set of values, and [VerifyChange]
// checks a rewritten catalog against the paths it was meant to change.
package localepatch
