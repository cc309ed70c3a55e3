// Package registry maps validator names to constructors and runs several
// validators concurrently with errgroup.
package registry
