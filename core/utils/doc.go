// Package utils converts the loosely typed values returned by engine functions and
// decoded from JSON request bodies.
package utils
