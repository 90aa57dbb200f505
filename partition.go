package id3

import (
	"math"

	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/samber/lo"
)

/*
Partition represents a partition of a set of examples according to the
values of an attribute, along with the information gain it provides to
predict the Class.
*/
type Partition struct {
	// Attribute is the attribute whose values define the partition.
	Attribute string
	// Values holds the values of the attribute observed on the
	// partitioned set, in the order they were first encountered.
	Values []string
	// Subsets holds, for every value in Values, the examples taking it.
	Subsets []dataset.Set
	// InformationGain is the reduction of entropy on the Class
	// obtained by partitioning the set.
	InformationGain float64
}

/*
Entropy takes the probability p of one of two outcomes and returns the
Shannon entropy in bits of the distribution (p, 1-p). It is 0 for p
equal to 0 or 1 and 1 for p equal to 0.5.
*/
func Entropy(p float64) float64 {
	return entropyTerm(p) + entropyTerm(1-p)
}

// entropyTerm is the contribution -p*log2(p) of an outcome with
// probability p to an entropy, taking 0*log2(0) as 0.
func entropyTerm(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	return -p * math.Log2(p)
}

/*
SetEntropy returns the Shannon entropy in bits of the Class values on
the given set of examples. It is 0 for an empty set.
*/
func SetEntropy(s dataset.Set) float64 {
	if len(s) == 0 {
		return 0
	}
	var result float64
	total := float64(len(s))
	counts := s.CountValues(dataset.ClassName)
	for _, c := range s.Classes() {
		result += entropyTerm(float64(counts[c]) / total)
	}
	return result
}

/*
NewPartition takes a set of examples and an attribute and returns the
partition of the set by the values of the attribute. The partition
of an empty set has no subsets and no information gain.
*/
func NewPartition(s dataset.Set, attribute string) *Partition {
	p := &Partition{Attribute: attribute}
	if len(s) == 0 {
		return p
	}
	informationGain := SetEntropy(s)
	total := float64(len(s))
	for _, v := range s.Values(attribute) {
		subset := s.SubsetWith(attribute, v)
		p.Values = append(p.Values, v)
		p.Subsets = append(p.Subsets, subset)
		informationGain -= SetEntropy(subset) * float64(len(subset)) / total
	}
	p.InformationGain = math.Max(informationGain, 0)
	return p
}

/*
InformationGain takes a set of examples and an attribute and returns the
reduction of entropy on the Class obtained by partitioning the set by
the values of the attribute. It returns 0 for an empty set.
*/
func InformationGain(s dataset.Set, attribute string) float64 {
	return NewPartition(s, attribute).InformationGain
}

/*
BestSplit takes a set of examples and a slice of candidate attributes
and returns the partition of the set by the candidate with the highest
information gain. Candidates are considered in the given order and ties
go to the earliest one. It returns nil if there are no candidates.
*/
func BestSplit(s dataset.Set, attributes []string) *Partition {
	partitions := lo.Map(attributes, func(a string, _ int) *Partition {
		return NewPartition(s, a)
	})
	return lo.MaxBy(partitions, func(p, best *Partition) bool {
		return p.InformationGain > best.InformationGain
	})
}
