// See namematch.go for the exact/wildcard/regex matching rules and
// hierarchy-separator normalization this package implements.
package namematch
