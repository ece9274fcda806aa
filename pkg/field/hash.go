package field

import "hash/maphash"

// seed is shared by all fields so equal values hash equally within a process.
var seed = maphash.MakeSeed()

func hashOf[T comparable](value T, pure bool) uint64 {
	h := maphash.Comparable(seed, value)
	var b uint64
	if pure {
		b = 1
	}
	return 31*h + b
}
