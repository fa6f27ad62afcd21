package utils

import (
	"io"

	log "github.com/sirupsen/logrus"
)

func Map[A any, B any](input []A, mapper func(A) B) []B {
	output := make([]B, len(input))
	for i, item := range input {
		output[i] = mapper(item)
	}
	return output
}

func Filter[A any](input []A, filter func(A) bool) []A {
	output := make([]A, 0)
	for _, item := range input {
		if filter(item) {
			output = append(output, item)
		}
	}
	return output
}

func Contains[A comparable](input []A, item A) bool {
	for _, i := range input {
		if i == item {
			return true
		}
	}
	return false
}

// Uniques drops repeated items and keeps the first occurrence order.
func Uniques[A comparable](input []A) []A {
	seen := make(map[A]bool, len(input))
	output := make([]A, 0, len(input))
	for _, item := range input {
		if seen[item] {
			continue
		}
		seen[item] = true
		output = append(output, item)
	}
	return output
}

// GroupBy buckets items by key. Keys are returned in first-seen order.
func GroupBy[A any, K comparable](input []A, key func(A) K) ([]K, map[K][]A) {
	keys := make([]K, 0)
	groups := make(map[K][]A)
	for _, item := range input {
		k := key(item)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], item)
	}
	return keys, groups
}

func Closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.WithError(err).Warn("failed to close resource")
		}
	}
}
