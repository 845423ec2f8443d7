// Package report computes the all-pairs distance report of a graph and
// renders it as text, a terminal table or YAML.
//
// The pairs are produced in store index order: for every source node, every
// other node in insertion order. One single-source labeling is run per
// source, so a report costs N queries rather than N*(N-1).
//
// Text output keeps the classic line format:
//
//	VLV->SPC:	95
//
// with "-" in place of the distance when the pair is not connected.
package report
