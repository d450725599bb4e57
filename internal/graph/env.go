// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph implements the orchestrator side of dependency declaration:
// an environment that records what declarators register and follows their
// delegation to companion declarators.
package graph

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/goplus/libdecl/decl"
)

// ErrCycle is returned when a declarator delegates, directly or not, to a
// declarator that is still being declared.
var ErrCycle = errors.New("declarator cycle")

// Env is the build environment of a single declaration phase.
//
// Every registration is kept in issue order. The link line is deduplicated
// on a first-seen basis so that the precedence declarators express through
// their ordering survives repeated registrations.
type Env struct {
	platform  decl.Platform
	container string
	groups    map[decl.Group][]string
	registry  *decl.Registry

	events   []Event
	libs     []string
	seenLibs map[string]bool
	packages []string

	declared map[string]bool
	active   []string
}

// New returns an environment for platform inside container. groups are the
// library groups populated before declaration starts; registry resolves
// companion declarators.
func New(platform decl.Platform, container string, groups map[decl.Group][]string, registry *decl.Registry) *Env {
	if registry == nil {
		registry = decl.NewRegistry()
	}
	return &Env{
		platform:  platform,
		container: container,
		groups:    groups,
		registry:  registry,
		seenLibs:  make(map[string]bool),
		declared:  make(map[string]bool),
	}
}

func (e *Env) Platform() decl.Platform { return e.platform }
func (e *Env) ContainerName() string   { return e.container }

// Group returns the libraries of g.
func (e *Env) Group(g decl.Group) ([]string, error) {
	libs, ok := e.groups[g]
	if !ok {
		return nil, fmt.Errorf("library group %s: %w", g, decl.ErrUnresolved)
	}
	return libs, nil
}

func (e *Env) AddLibrary(name string) {
	e.events = append(e.events, Event{Kind: decl.AddLibrary, Name: name})
	e.link(name)
}

func (e *Env) AddGroup(libs []string) {
	e.events = append(e.events, Event{Kind: decl.AddGroup, Libs: slices.Clone(libs)})
	for _, lib := range libs {
		e.link(lib)
	}
}

func (e *Env) link(lib string) {
	if e.seenLibs[lib] {
		return
	}
	e.seenLibs[lib] = true
	e.libs = append(e.libs, lib)
}

// UseModule declares the companion called name with its own artifact
// included. A companion already declared in this phase is not declared again.
func (e *Env) UseModule(name string) error {
	e.events = append(e.events, Event{Kind: decl.UseModule, Name: name})
	return e.declare(name, decl.Options{})
}

func (e *Env) FindPackage(name string) error {
	e.events = append(e.events, Event{Kind: decl.FindPackage, Name: name})
	if !slices.Contains(e.packages, name) {
		e.packages = append(e.packages, name)
	}
	return nil
}

// Declare runs the declarator registered as name against e. It is the entry
// point the orchestrator uses for each component being built.
func (e *Env) Declare(name string, opts decl.Options) error {
	return e.declare(name, opts)
}

func (e *Env) declare(name string, opts decl.Options) error {
	if slices.Contains(e.active, name) {
		return fmt.Errorf("%w: %v -> %s", ErrCycle, e.active, name)
	}
	if e.declared[name] {
		return nil
	}
	d, err := e.registry.Lookup(name)
	if err != nil {
		return err
	}
	if !d.Exists(e) {
		slog.Debug("Skipping unavailable declarator", "name", name, "platform", e.platform)
		e.declared[name] = true
		return nil
	}

	e.active = append(e.active, name)
	defer func() { e.active = e.active[:len(e.active)-1] }()

	slog.Debug("Declaring", "name", name, "depsOnly", opts.DepsOnly, "depth", len(e.active))
	if err := d.Generate(e, opts); err != nil {
		return fmt.Errorf("declare %s: %w", name, err)
	}
	// A deps-only declaration leaves the artifact itself to a later request.
	if !opts.DepsOnly {
		e.declared[name] = true
	}
	return nil
}

// Events returns every registration in issue order.
func (e *Env) Events() []Event {
	return slices.Clone(e.events)
}

// Strings returns Events formatted with Event.String.
func (e *Env) Strings() []string {
	return eventStrings(e.events)
}

// Libraries returns the link line: every registered library once, in the
// order it was first registered.
func (e *Env) Libraries() []string {
	return slices.Clone(e.libs)
}

// Packages returns the packages whose path was discovered, first-seen order.
func (e *Env) Packages() []string {
	return slices.Clone(e.packages)
}
