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

package eval

import "github.com/inet-lang/inet/internal/core/net"

// Apply rewrites g in place at site, the way a single step of spec.md §5
// does: site must have come from a Scan of the current state of g, since
// the Host field / Dup pointer it carries is only valid until the graph is
// next mutated.
func Apply(g *net.Graph, site RedexSite) {
	switch site.Rule {
	case AppLam:
		applyAppLam(g, site.Host)
	case AppSup:
		applyAppSup(g, site.Host)
	case DupLam:
		applyDupLam(g, site.Dup)
	case DupSup:
		applyDupSup(g, site.Dup)
	default:
		panic("eval: unreachable RuleKind")
	}
}
