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
package drt

import (
	"errors"
)

// ErrEmptyBox indicates an attempt to translate a box with no conditions into
// first-order logic, for which there is no sensible conjunction.
var ErrEmptyBox = errors.New("cannot translate box with no conditions")

// Fol translates a discourse representation into first-order logic.  Boxes
// become existential closures of the conjunction of their conditions, except
// on the left of an implication, where their referents take universal scope
// over the consequent.
func Fol(e Expr) (Expr, error) {
	switch e := e.(type) {
	case *DRS:
		body, err := conjoin(e.Conds)
		if err != nil {
			return nil, err
		}
		// Close innermost referent first
		for i := len(e.Refs) - 1; i >= 0; i-- {
			body = &Exists{e.Refs[i], body}
		}
		//
		return body, nil
	case *Negation:
		body, err := Fol(e.Body)
		if err != nil {
			return nil, err
		}
		//
		return &Negation{body}, nil
	case *Or:
		left, right, err := folPair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		//
		return &Or{left, right}, nil
	case *Implication:
		return folImplication(e)
	case *Concatenation:
		// Merge boxes before translating, so their referents scope over the
		// combined conditions.
		simplified := e.Simplify()
		// A concatenation which survives simplification has at least one
		// non-box operand, and can only be rendered as a conjunction.
		if c, ok := simplified.(*Concatenation); ok {
			left, right, err := folPair(c.Left, c.Right)
			if err != nil {
				return nil, err
			}
			//
			return &And{left, right}, nil
		}
		//
		return Fol(simplified)
	case *Equality:
		return e, nil
	case *Atom:
		return e, nil
	case *And:
		left, right, err := folPair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		//
		return &And{left, right}, nil
	case *Exists:
		body, err := Fol(e.Body)
		if err != nil {
			return nil, err
		}
		//
		return &Exists{e.Ref, body}, nil
	case *ForAll:
		body, err := Fol(e.Body)
		if err != nil {
			return nil, err
		}
		//
		return &ForAll{e.Ref, body}, nil
	}
	//
	panic("unreachable")
}

// Translate an implication, giving the referents of a box antecedent
// universal scope over the consequent.
func folImplication(e *Implication) (Expr, error) {
	antecedent, ok := e.Left.(*DRS)
	if !ok {
		left, right, err := folPair(e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		//
		return &Implication{left, right}, nil
	}
	//
	consequent, err := Fol(e.Right)
	if err != nil {
		return nil, err
	}
	//
	var body Expr = consequent
	// An antecedent without conditions contributes quantifiers only.
	if len(antecedent.Conds) > 0 {
		conds, err := conjoin(antecedent.Conds)
		if err != nil {
			return nil, err
		}
		//
		body = &Implication{conds, consequent}
	}
	//
	for i := len(antecedent.Refs) - 1; i >= 0; i-- {
		body = &ForAll{antecedent.Refs[i], body}
	}
	//
	return body, nil
}

func folPair(l Expr, r Expr) (Expr, Expr, error) {
	left, err := Fol(l)
	if err != nil {
		return nil, nil, err
	}
	//
	right, err := Fol(r)
	if err != nil {
		return nil, nil, err
	}
	//
	return left, right, nil
}

// Conjoin translates a condition list into a right-nested conjunction.
func conjoin(conds []Expr) (Expr, error) {
	if len(conds) == 0 {
		return nil, ErrEmptyBox
	}
	//
	last, err := Fol(conds[len(conds)-1])
	if err != nil {
		return nil, err
	}
	//
	for i := len(conds) - 2; i >= 0; i-- {
		next, err := Fol(conds[i])
		if err != nil {
			return nil, err
		}
		//
		last = &And{next, last}
	}
	//
	return last, nil
}
