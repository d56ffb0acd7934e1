// Package arrays holds sniffs for PHP array literals.
package arrays
