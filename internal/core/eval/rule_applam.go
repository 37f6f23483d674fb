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

// applyAppLam implements spec.md §4.2 AppLam:
//
//	(λx e) a  =>  (x <- a; e)
//
// host is the field holding the App (the "host field P"); its value's E1
// must be a *net.Lam.
//
// The Subst must run before reading lam.E into host, not after: when x's
// only occurrence is the body itself (the identity function, lam.X and
// &lam.E are the same address), lam.E is the field Subst overwrites, so a
// copy of it taken beforehand would still hold the pre-substitution
// marker.
func applyAppLam(g *net.Graph, host *net.NodeRef) {
	app := host.Node().(*net.App)
	lam := app.E1.Node().(*net.Lam)
	arg := app.E2

	net.Subst(g, lam, net.SlotLamX, arg)
	net.WriteField(host, lam.E)

	g.FreeApp(app)
	g.FreeLam(lam)
}
