package order

import "math/rand"

// Repetitions returns ceil(numRows / maxTaskID)
func Repetitions(numRows, maxTaskID int) int {
	reps := numRows / maxTaskID
	if numRows%maxTaskID != 0 {
		reps++
	}
	return reps
}

// BuildPool returns every id in [1, maxTaskID] repeated Repetitions times,
// grouped in ascending id order.
func BuildPool(numRows, maxTaskID int) []int {
	reps := Repetitions(numRows, maxTaskID)
	pool := make([]int, 0, reps*maxTaskID)
	for id := 1; id <= maxTaskID; id++ {
		for i := 0; i < reps; i++ {
			pool = append(pool, id)
		}
	}
	return pool
}

// Shuffle permutes pool in place (Fisher-Yates)
func Shuffle(pool []int, rng *rand.Rand) {
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}

// Trim cuts a shuffled pool down to numRows by removing one occurrence from
// each of len(pool)-numRows distinct, randomly chosen ids. Relative order of
// the remaining entries is preserved.
func Trim(pool []int, numRows, maxTaskID int, rng *rand.Rand) []int {
	excess := len(pool) - numRows
	if excess <= 0 {
		return pool
	}

	drop := make([]bool, maxTaskID+1)
	for _, i := range rng.Perm(maxTaskID)[:excess] {
		drop[i+1] = true
	}

	kept := pool[:0]
	for _, id := range pool {
		if drop[id] {
			drop[id] = false
			continue
		}
		kept = append(kept, id)
	}
	return kept
}
