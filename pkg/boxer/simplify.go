// Copyright Semtools Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package boxer

import (
	"github.com/semtools/go-boxer/pkg/drt"
)

// compoundNounRelation is the reserved relation the external analyzer emits
// to link a noun-noun compound's head and modifier.
const compoundNounRelation = "r_nn_2"

// Simplify normalises a freshly-parsed expression: box merges are flattened
// and compound-noun relations are folded into plain equalities.
func Simplify(e drt.Expr) drt.Expr {
	return FoldCompoundNouns(e.Simplify())
}

// FoldCompoundNouns replaces every binary atom over the compound-noun
// relation with an equality of its two arguments, at the same tree position.
// The rewrite is a pure bottom-up transform with no other effect.
func FoldCompoundNouns(e drt.Expr) drt.Expr {
	switch e := e.(type) {
	case *drt.DRS:
		conds := make([]drt.Expr, len(e.Conds))
		//
		for i, c := range e.Conds {
			conds[i] = FoldCompoundNouns(c)
		}
		//
		return drt.NewDRS(e.Refs, conds)
	case *drt.Negation:
		return &drt.Negation{Body: FoldCompoundNouns(e.Body)}
	case *drt.Or:
		return &drt.Or{Left: FoldCompoundNouns(e.Left), Right: FoldCompoundNouns(e.Right)}
	case *drt.Implication:
		return &drt.Implication{Left: FoldCompoundNouns(e.Left), Right: FoldCompoundNouns(e.Right)}
	case *drt.Concatenation:
		return &drt.Concatenation{Left: FoldCompoundNouns(e.Left), Right: FoldCompoundNouns(e.Right)}
	case *drt.And:
		return &drt.And{Left: FoldCompoundNouns(e.Left), Right: FoldCompoundNouns(e.Right)}
	case *drt.Exists:
		return &drt.Exists{Ref: e.Ref, Body: FoldCompoundNouns(e.Body)}
	case *drt.ForAll:
		return &drt.ForAll{Ref: e.Ref, Body: FoldCompoundNouns(e.Body)}
	case *drt.Equality:
		return e
	case *drt.Atom:
		if e.Pred.Name == compoundNounRelation && len(e.Args) == 2 {
			return &drt.Equality{Left: e.Args[0], Right: e.Args[1]}
		}
		//
		return e
	}
	//
	panic("unreachable")
}
