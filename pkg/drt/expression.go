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
	"fmt"
	"strings"
)

// Variable is an opaque name used both as a discourse referent and as a
// free/bound identifier inside predicates.  Two variables are equal iff their
// names are equal.
type Variable struct {
	Name string
}

// NewVariable constructs a variable with the given name.
func NewVariable(name string) Variable {
	return Variable{name}
}

func (v Variable) String() string {
	return v.Name
}

// Expr represents an arbitrary expression in the discourse representation
// language.  It is a closed union: the only implementations are the variants
// defined in this package.  Expressions are immutable after construction and
// every transformation returns a fresh tree.
type Expr interface {
	// Simplify normalises this expression by flattening the concatenation of
	// two boxes into a single box, recursively.  The receiver is unchanged.
	Simplify() Expr
	// String produces a compact, linear rendering of this expression.
	String() string
}

// ============================================================================
// DRS
// ============================================================================

// DRS is a scope introducing zero or more discourse referents and a
// conjunction of conditions.  Referents and conditions preserve the order in
// which they were declared.
type DRS struct {
	Refs  []Variable
	Conds []Expr
}

// NewDRS constructs a box from the given referents and conditions.
func NewDRS(refs []Variable, conds []Expr) *DRS {
	return &DRS{refs, conds}
}

// Simplify normalises all conditions of this box.
func (e *DRS) Simplify() Expr {
	conds := make([]Expr, len(e.Conds))
	//
	for i, c := range e.Conds {
		conds[i] = c.Simplify()
	}
	//
	return &DRS{e.Refs, conds}
}

func (e *DRS) String() string {
	refs := make([]string, len(e.Refs))
	conds := make([]string, len(e.Conds))
	//
	for i, r := range e.Refs {
		refs[i] = r.Name
	}
	//
	for i, c := range e.Conds {
		conds[i] = c.String()
	}
	//
	return fmt.Sprintf("([%s],[%s])", strings.Join(refs, ","), strings.Join(conds, ", "))
}

// ============================================================================
// Negation
// ============================================================================

// Negation negates its body.
type Negation struct {
	Body Expr
}

// Simplify normalises the body of this negation.
func (e *Negation) Simplify() Expr {
	return &Negation{e.Body.Simplify()}
}

func (e *Negation) String() string {
	return fmt.Sprintf("-%s", e.Body)
}

// ============================================================================
// Binary connectives
// ============================================================================

// Or is the disjunction of two sub-expressions.
type Or struct {
	Left  Expr
	Right Expr
}

// Simplify normalises both operands.
func (e *Or) Simplify() Expr {
	return &Or{e.Left.Simplify(), e.Right.Simplify()}
}

func (e *Or) String() string {
	return fmt.Sprintf("(%s | %s)", e.Left, e.Right)
}

// Implication is a conditional between two sub-expressions.  When the
// antecedent is a box, its referents take universal scope over the
// consequent.
type Implication struct {
	Left  Expr
	Right Expr
}

// Simplify normalises both operands.
func (e *Implication) Simplify() Expr {
	return &Implication{e.Left.Simplify(), e.Right.Simplify()}
}

func (e *Implication) String() string {
	return fmt.Sprintf("(%s -> %s)", e.Left, e.Right)
}

// Concatenation merges two box-like structures into one.  Simplification
// collapses the concatenation of two boxes into a single box whose referents
// and conditions are the two operands' taken in order.
type Concatenation struct {
	Left  Expr
	Right Expr
}

// Simplify normalises both operands and, where both are boxes, merges them
// into one.
func (e *Concatenation) Simplify() Expr {
	left := e.Left.Simplify()
	right := e.Right.Simplify()
	//
	if l, ok := left.(*DRS); ok {
		if r, ok := right.(*DRS); ok {
			refs := make([]Variable, 0, len(l.Refs)+len(r.Refs))
			refs = append(refs, l.Refs...)
			refs = append(refs, r.Refs...)
			//
			conds := make([]Expr, 0, len(l.Conds)+len(r.Conds))
			conds = append(conds, l.Conds...)
			conds = append(conds, r.Conds...)
			//
			return &DRS{refs, conds}
		}
	}
	//
	return &Concatenation{left, right}
}

func (e *Concatenation) String() string {
	return fmt.Sprintf("(%s + %s)", e.Left, e.Right)
}

// ============================================================================
// Equality
// ============================================================================

// Equality equates two discourse referents.
type Equality struct {
	Left  Variable
	Right Variable
}

// Simplify returns this equality unchanged, since it has no sub-expressions.
func (e *Equality) Simplify() Expr {
	return e
}

func (e *Equality) String() string {
	return fmt.Sprintf("(%s = %s)", e.Left, e.Right)
}

// ============================================================================
// Atom
// ============================================================================

// Atom applies a predicate to one or more argument variables.  It is the
// fully-applied form of the curried application chain found in the source
// notation, and is semantically an n-ary relation.
type Atom struct {
	Pred Variable
	Args []Variable
}

// NewAtom constructs an atom applying the named predicate to the given
// arguments, in order.
func NewAtom(pred string, args ...Variable) *Atom {
	return &Atom{NewVariable(pred), args}
}

// Arity returns the number of arguments this atom applies its predicate to.
func (e *Atom) Arity() int {
	return len(e.Args)
}

// Simplify returns this atom unchanged, since it has no sub-expressions.
func (e *Atom) Simplify() Expr {
	return e
}

func (e *Atom) String() string {
	args := make([]string, len(e.Args))
	//
	for i, a := range e.Args {
		args[i] = a.Name
	}
	//
	return fmt.Sprintf("%s(%s)", e.Pred, strings.Join(args, ","))
}

// ============================================================================
// First-order variants
// ============================================================================

// And is the conjunction of two sub-expressions.  It is produced only by the
// first-order translation, which compiles a box's condition list away.
type And struct {
	Left  Expr
	Right Expr
}

// Simplify normalises both operands.
func (e *And) Simplify() Expr {
	return &And{e.Left.Simplify(), e.Right.Simplify()}
}

func (e *And) String() string {
	return fmt.Sprintf("(%s & %s)", e.Left, e.Right)
}

// Exists existentially quantifies a referent over its body.  Produced only by
// the first-order translation.
type Exists struct {
	Ref  Variable
	Body Expr
}

// Simplify normalises the body of this quantifier.
func (e *Exists) Simplify() Expr {
	return &Exists{e.Ref, e.Body.Simplify()}
}

func (e *Exists) String() string {
	return fmt.Sprintf("exists %s.%s", e.Ref, e.Body)
}

// ForAll universally quantifies a referent over its body.  Produced only by
// the first-order translation.
type ForAll struct {
	Ref  Variable
	Body Expr
}

// Simplify normalises the body of this quantifier.
func (e *ForAll) Simplify() Expr {
	return &ForAll{e.Ref, e.Body.Simplify()}
}

func (e *ForAll) String() string {
	return fmt.Sprintf("all %s.%s", e.Ref, e.Body)
}
