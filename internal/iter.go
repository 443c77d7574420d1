// Package internal holds helpers shared between the eater packages.
package internal

import (
	"iter"
)

// IterSeq2Concat concatenates key/value iterators, such as define tables,
// into a single iterator. Duplicate keys are yielded once per source.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
