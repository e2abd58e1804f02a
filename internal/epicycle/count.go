package epicycle

// EpicycleStep is how many epicycles one adjustment adds or removes.
const EpicycleStep = 10

// ClampEpicycles limits a requested epicycle count to half the number of
// path points, keeping at least one for any non-empty path.
func ClampEpicycles(requested, points int) int {
	if points <= 0 || requested <= 0 {
		return 0
	}
	limit := max(points/2, 1)
	return min(requested, limit)
}

// MoreEpicycles returns the count after one increase, or current when the
// limit for points is already reached.
func MoreEpicycles(current, points int) int {
	next := current + EpicycleStep
	if limit := ClampEpicycles(next, points); limit > current {
		return limit
	}
	return current
}

// FewerEpicycles returns the count after one decrease, never below one.
func FewerEpicycles(current int) int {
	if current > EpicycleStep {
		return current - EpicycleStep
	}
	return 1
}
