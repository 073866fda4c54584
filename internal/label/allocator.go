package label

// Allocate returns up to count distinct labels drawn from the
// alphabet, skipping excluded runes. Single-rune labels are emitted
// while capacity allows; beyond that, runes are reserved as prefixes
// for blocks of two-rune labels. Reserved runes no longer appear as
// standalone labels, so the label set is prefix-free: no label is a
// prefix of another.
//
// If the exclusions would empty the alphabet entirely, the full
// alphabet is used instead; blocking all labeling is worse than
// colliding with a following character.
//
// The result has length min(count, capacity) where capacity is
// len(usable)^2 at most. Allocate never returns an error: callers
// treat missing labels as unselectable matches.
func Allocate(alphabet Alphabet, count int, excluded map[rune]bool) []string {
	if count <= 0 || len(alphabet) == 0 {
		return nil
	}

	usable := alphabet.Without(excluded)
	if len(usable) == 0 {
		usable = alphabet
	}
	n := len(usable)

	if count <= n {
		labels := make([]string, count)
		for i := 0; i < count; i++ {
			labels[i] = string(usable[i])
		}
		return labels
	}

	// Reserve the smallest k prefixes such that the remaining singles
	// plus k blocks of n two-rune labels cover count. Prefixes are
	// taken from the tail so the most-preferred runes stay single.
	k := prefixCount(n, count)
	singles := usable[:n-k]
	prefixes := usable[n-k:]

	capacity := len(singles) + k*n
	if count > capacity {
		count = capacity
	}

	labels := make([]string, 0, count)
	for _, r := range singles {
		if len(labels) == count {
			return labels
		}
		labels = append(labels, string(r))
	}
	for _, p := range prefixes {
		for _, s := range usable {
			if len(labels) == count {
				return labels
			}
			labels = append(labels, string(p)+string(s))
		}
	}
	return labels
}

// prefixCount returns the smallest k in [1, n] with (n-k) + k*n >= count.
// If no k suffices, it returns n (maximum capacity n*n).
func prefixCount(n, count int) int {
	for k := 1; k < n; k++ {
		if (n-k)+k*n >= count {
			return k
		}
	}
	return n
}
