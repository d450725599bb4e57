// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decl defines the contract between a build orchestrator and the
// dependency declarators it drives.
//
// A declarator decides which registrations a component needs: its own
// library, bare system libraries, library groups supplied by the
// environment, and other declarators it delegates to. The orchestrator
// owns the Environment and the Registry; declarators hold no state.
package decl

import "errors"

// ErrUnresolved is returned when a library group or a companion declarator
// referenced by a declarator is not known to the environment.
var ErrUnresolved = errors.New("unresolved reference")

// Environment is the registration capability the orchestrator hands to a
// declarator. It is shared by reference for the whole declaration phase.
type Environment interface {
	// Platform reports the target platform.
	Platform() Platform
	// ContainerName names the enclosing release, or "" when there is none.
	ContainerName() string

	// Group returns the libraries of g. It fails with ErrUnresolved when the
	// environment was not populated with g.
	Group(g Group) ([]string, error)

	// AddLibrary adds a single library to the dependency closure.
	AddLibrary(name string)
	// AddGroup adds the libraries of a group, in order.
	AddGroup(libs []string)
	// UseModule pulls in the closure of the named companion declarator. It
	// fails with ErrUnresolved when no such declarator is registered.
	UseModule(name string) error
	// FindPackage locates an external package whose link metadata is not
	// directly available.
	FindPackage(name string) error
}

// Declarator declares the dependencies of one component.
type Declarator interface {
	// Generate issues the registrations of the component against env.
	Generate(env Environment, opts Options) error
	// Exists reports whether the declarator is usable in env.
	Exists(env Environment) bool
}
