// Package source turns raw .btsp text into the ordered line sequence every
// later stage of the compiler works on.
package source
