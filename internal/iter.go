// Package internal holds iterator helpers shared by the asm51 packages.
package internal

import (
	"iter"
)

// Concat2 concatenates pair sequences into a single sequence.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

