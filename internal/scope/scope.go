// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package scope models the nested variable scopes tracked along a control flow graph.
//
// A [Scope] is a snapshot of one lexical nesting level at one program point, linked to
// the enclosing level. Snapshots are values: every program point gets its own deep copy,
// so that diverging branches evolve independently until they are merged again.
package scope

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"fillmore-labs.com/usecount/flowgraph"
	"fillmore-labs.com/usecount/internal/usage"
)

var (
	// ErrRedeclared is returned when a name is declared twice in the same scope level.
	ErrRedeclared = errors.New("variable redeclared in the same scope")

	// ErrUndeclared is returned when a read can't be resolved in any enclosing scope.
	ErrUndeclared = errors.New("read of undeclared variable")

	// ErrDepthMismatch is returned when merging scopes with different nesting depths.
	ErrDepthMismatch = errors.New("scope nesting depth differs at merge")

	// ErrNoScopes is returned when merging an empty list of scopes.
	ErrNoScopes = errors.New("no scopes to merge")
)

// Var tracks the usage of one declared variable.
type Var struct {
	// Name is the declared name.
	Name string

	// Usage is the read multiplicity observed so far.
	Usage usage.Count

	// TopLevel is set for variables of the outermost scope, like function arguments.
	TopLevel bool

	// Decl is the declaring node.
	Decl flowgraph.Node
}

// Scope is one lexical nesting level.
type Scope struct {
	parent     *Scope
	atMostOnce bool
	names      []string // declaration order
	vars       map[string]*Var
}

// New creates an empty scope level nested in parent, which may be nil for the outermost scope.
func New(parent *Scope, atMostOnce bool) *Scope {
	return &Scope{parent: parent, atMostOnce: atMostOnce}
}

// Parent returns the enclosing scope, nil for the outermost scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// AtMostOnce reports whether this level is known to be executed at most once.
func (s *Scope) AtMostOnce() bool {
	return s.atMostOnce
}

// Repeat marks this level as possibly executed more than once.
func (s *Scope) Repeat() {
	s.atMostOnce = false
}

// Depth returns the number of levels, counting this one.
func (s *Scope) Depth() int {
	d := 0
	for range s.Levels() {
		d++
	}

	return d
}

// Levels yields this scope and its ancestors, innermost first.
func (s *Scope) Levels() iter.Seq[*Scope] {
	return func(yield func(*Scope) bool) {
		for l := s; l != nil; l = l.parent {
			if !yield(l) {
				break
			}
		}
	}
}

// Vars yields the variables declared in this level in declaration order.
func (s *Scope) Vars() iter.Seq[*Var] {
	return func(yield func(*Var) bool) {
		for _, name := range s.names {
			if !yield(s.vars[name]) {
				break
			}
		}
	}
}

// Len returns the number of variables declared in this level.
func (s *Scope) Len() int {
	return len(s.names)
}

// Lookup finds a variable declared in this level only.
func (s *Scope) Lookup(name string) (*Var, bool) {
	v, ok := s.vars[name]

	return v, ok
}

// Declare adds a new variable to this level.
func (s *Scope) Declare(name string, decl flowgraph.Node) (*Var, error) {
	if _, ok := s.vars[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrRedeclared, name)
	}

	v := &Var{Name: name, Usage: usage.Bottom, TopLevel: s.parent == nil, Decl: decl}
	s.put(v)

	return v, nil
}

func (s *Scope) put(v *Var) {
	if s.vars == nil {
		s.vars = make(map[string]*Var)
	}

	s.names = append(s.names, v.Name)
	s.vars[v.Name] = v
}

// Resolve finds the innermost declaration of name.
// atMostOnce is the conjunction of the flags of all levels from s up to the declaring one.
func (s *Scope) Resolve(name string) (v *Var, atMostOnce, ok bool) {
	atMostOnce = true

	for l := range s.Levels() {
		atMostOnce = atMostOnce && l.atMostOnce

		if v, ok := l.vars[name]; ok {
			return v, atMostOnce, true
		}
	}

	return nil, false, false
}

// Read records one read of name.
//
// When every level between the read and the declaration executes at most once the
// usage is incremented, otherwise it becomes [usage.Unknown].
func (s *Scope) Read(name string) (*Var, error) {
	v, atMostOnce, ok := s.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUndeclared, name)
	}

	if atMostOnce {
		v.Usage = v.Usage.Increment()
	} else {
		v.Usage = usage.Unknown
	}

	return v, nil
}

// Copy returns an independent deep copy of s including all ancestors.
func (s *Scope) Copy() *Scope {
	if s == nil {
		return nil
	}

	var result, inner *Scope

	for l := range s.Levels() {
		c := l.copyLevel()

		if inner == nil {
			result = c
		} else {
			inner.parent = c
		}

		inner = c
	}

	return result
}

func (s *Scope) copyLevel() *Scope {
	c := &Scope{atMostOnce: s.atMostOnce}
	if len(s.names) == 0 {
		return c
	}

	c.names = make([]string, 0, len(s.names))
	c.vars = make(map[string]*Var, len(s.names))

	for v := range s.Vars() {
		cv := *v
		c.put(&cv)
	}

	return c
}

// Merge joins the scopes of several control flow paths converging in one node.
//
// The result is independent of the arguments. At least one scope must be given,
// all scopes must have the same nesting depth.
func Merge(scopes ...*Scope) (*Scope, error) {
	switch len(scopes) {
	case 0:
		return nil, ErrNoScopes

	case 1:
		return scopes[0].Copy(), nil
	}

	result := scopes[0]
	for _, s := range scopes[1:] {
		var err error
		if result, err = merge2(result, s); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// merge2 merges two scope chains level by level.
func merge2(a, b *Scope) (*Scope, error) {
	if da, db := a.Depth(), b.Depth(); da != db {
		return nil, fmt.Errorf("%w: %d and %d levels", ErrDepthMismatch, da, db)
	}

	var result, inner *Scope

	for a != nil {
		m := mergeLevel(a, b)

		if inner == nil {
			result = m
		} else {
			inner.parent = m
		}

		inner = m
		a, b = a.parent, b.parent
	}

	return result, nil
}

// mergeLevel joins two levels. Variables declared on only one side are kept unchanged.
func mergeLevel(a, b *Scope) *Scope {
	m := &Scope{atMostOnce: a.atMostOnce && b.atMostOnce}

	for v := range a.Vars() {
		c := *v
		if w, ok := b.vars[v.Name]; ok {
			c.Usage = usage.Merge(v.Usage, w.Usage)
		}

		m.put(&c)
	}

	for w := range b.Vars() {
		if _, ok := a.vars[w.Name]; ok {
			continue
		}

		c := *w
		m.put(&c)
	}

	return m
}

// String returns a compact description, innermost level first.
func (s *Scope) String() string {
	var b strings.Builder

	for l := range s.Levels() {
		if l != s {
			b.WriteString(" < ")
		}

		b.WriteByte('{')

		if !l.atMostOnce {
			b.WriteString("* ")
		}

		i := 0
		for v := range l.Vars() {
			if i > 0 {
				b.WriteByte(' ')
			}

			i++

			b.WriteString(v.Name)
			b.WriteByte('=')
			b.WriteString(v.Usage.String())
		}

		b.WriteByte('}')
	}

	return b.String()
}
