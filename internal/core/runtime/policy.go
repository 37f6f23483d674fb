// Copyright 2020 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package runtime

import (
	"math/rand"

	"github.com/inet-lang/inet/internal/core/eval"
)

// Policy picks one redex out of the current redex set, spec.md §5's
// "reduction is confluent, so any policy for picking among the current
// redexes produces the same normal form (if one exists); policies differ
// only in the intermediate states and step count observed along the way."
type Policy interface {
	Pick(sites []eval.RedexSite) eval.RedexSite
}

// FirstPolicy always picks the first redex Scan found, giving a
// deterministic step sequence for a given graph shape. Used by ReduceDet
// and by tests that assert on an exact trace.
type FirstPolicy struct{}

// Pick implements Policy.
func (FirstPolicy) Pick(sites []eval.RedexSite) eval.RedexSite { return sites[0] }

// RandomPolicy picks uniformly among the current redexes using Rand, which
// callers supply so that a run can be replayed from a fixed seed (spec.md
// §6.3's --seed flag).
type RandomPolicy struct {
	Rand *rand.Rand
}

// Pick implements Policy.
func (p RandomPolicy) Pick(sites []eval.RedexSite) eval.RedexSite {
	return sites[p.Rand.Intn(len(sites))]
}
