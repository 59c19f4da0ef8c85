// Package view builds the node tree shown for a state snapshot.
//
// Every function here is pure: the same ApplicationState always yields an
// equivalent tree. Interaction is expressed as Patch-returning callbacks on
// links, buttons and inputs; the ui package invokes them and feeds the
// resulting patch back into the store.
package view
