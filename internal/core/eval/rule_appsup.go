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

// applyAppSup implements spec.md §4.2 AppSup:
//
//	(#l{e1 e2}) a  =>  dup #l{u v} = a; #l{(e1 u) (e2 v)}
func applyAppSup(g *net.Graph, host *net.NodeRef) {
	app := host.Node().(*net.App)
	sup := app.E1.Node().(*net.Sup)
	a := app.E2
	l := sup.L

	d := g.NewDup(app.Src)
	a1 := g.NewApp(app.Src)
	a2 := g.NewApp(app.Src)
	t := g.NewSup(app.Src)

	d.L = l
	d.A = &a1.E2
	d.B = &a2.E2
	net.WriteField(&d.E, a)

	net.WriteField(&a1.E1, sup.E1)
	a1.E2 = net.BoundVarMarker(d, net.SlotDupA)

	net.WriteField(&a2.E1, sup.E2)
	a2.E2 = net.BoundVarMarker(d, net.SlotDupB)

	t.L = l
	t.E1 = net.NewNodeRef(a1)
	t.E2 = net.NewNodeRef(a2)

	net.WriteField(host, net.NewNodeRef(t))

	g.FreeApp(app)
	g.FreeSup(sup)
}
