// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package onboardfilter declares the link dependencies of the OnboardFilter
// component.
package onboardfilter

import (
	"log/slog"

	"github.com/goplus/libdecl/decl"
)

// Declarator is the decl.Declarator of OnboardFilter.
type Declarator struct {
	Revision Revision
}

// New returns a declarator for rev.
func New(rev Revision) *Declarator {
	return &Declarator{Revision: rev}
}

// Generate issues the registrations planned for env's platform and
// container. A missing library group or companion declarator aborts the
// declaration with decl.ErrUnresolved.
func (d *Declarator) Generate(env decl.Environment, opts decl.Options) error {
	actions := Plan(d.Revision, env.Platform(), env.ContainerName(), opts)
	slog.Debug("Declaring dependencies",
		"component", Library,
		"revision", d.Revision,
		"platform", env.Platform(),
		"depsOnly", opts.DepsOnly,
		"actions", len(actions))
	return decl.Apply(env, actions)
}

// Exists always reports true.
func (d *Declarator) Exists(decl.Environment) bool {
	return true
}
