// Package topsize finds the largest files in a directory tree.
//
// It walks the tree using fastwalk for parallel traversal, keeps a
// bounded selection of the N largest files at or above a minimum size,
// and counts files, directories, and skipped entries along the way.
package topsize
