// Copyright 2026 The Ember Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"math"
	"math/rand"
)

// TrainTestSplit partitions a dataset into disjoint train and test
// subsets. testFraction is the share of rows assigned to the test set,
// rounded to the nearest row. The shuffle is seeded, so the same seed
// always produces the same split.
func TrainTestSplit(ds *TabularDataset, testFraction float64, seed int64) (train, test *TabularDataset, err error) {
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("data: test fraction must be in (0, 1), got %g", testFraction)
	}
	n := ds.Len()
	nTest := int(math.Round(float64(n) * testFraction))
	if nTest == 0 || nTest == n {
		return nil, nil, fmt.Errorf("data: test fraction %g leaves an empty split for %d rows", testFraction, n)
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)

	test, err = ds.Select(perm[:nTest])
	if err != nil {
		return nil, nil, err
	}
	train, err = ds.Select(perm[nTest:])
	if err != nil {
		return nil, nil, err
	}
	return train, test, nil
}
