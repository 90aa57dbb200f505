package id3

import "github.com/samber/lo"

/*
Mode takes a slice of labels and returns the most frequent one. Ties
go to the label that appears first in the slice. It returns an empty
string for an empty slice.
*/
func Mode(labels []string) string {
	counts := lo.CountValues(labels)
	var result string
	var best int
	for _, l := range labels {
		if c := counts[l]; c > best {
			result = l
			best = c
		}
	}
	return result
}
