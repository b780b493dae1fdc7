// Package normalize converts finish-time text to elapsed seconds and cleans
// athlete name text. It is shared by the row parser and the aggregator.
package normalize
