// Package activity holds the entries of the quotation activity log.
package activity
