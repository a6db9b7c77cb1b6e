package truncate

// Search finds the largest offset in [low, high] for which probe reports a
// fit. It is a binary search that keeps the best fitting offset it has seen,
// so a probe that is not perfectly monotonic still yields a fitting answer.
// ok is false when no probed offset fits.
func Search(low, high int, probe func(mid int) bool) (best int, ok bool) {
	for low <= high {
		mid := low + (high-low)/2
		if probe(mid) {
			if !ok || mid > best {
				best = mid
			}
			ok = true
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return best, ok
}
