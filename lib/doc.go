// Package lib provide statistics accumulators and byte utilities
// shared by the storage packages. They are small, self-contained
// and shall not depend on anything other than the standard library.
package lib
