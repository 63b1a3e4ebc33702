/*
 * Copyright 2018-2020 the original author or authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package librecipe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/opencontainers/go-digest"
)

// PackageInfo is the input to the package identity. Recipes mutate it in PackageID before the identity is computed.
type PackageInfo struct {

	// Settings are the settings that participate in the identity.
	Settings Settings

	// Options are the recipe options that participate in the identity.
	Options map[string]string

	// Requires are the dependencies that participate in the identity.
	Requires []Reference
}

// NewPackageInfo creates the identity input for a recipe, keeping only the settings the recipe declares.
func NewPackageInfo(recipe Recipe, settings Settings, requires []Reference) *PackageInfo {
	return &PackageInfo{
		Settings: settings.Filter(recipe.Settings),
		Options:  map[string]string{},
		Requires: append([]Reference(nil), requires...),
	}
}

// HeaderOnly removes everything that cannot affect header content from the identity, so that every compiler, build
// type and dependency variation maps to the same package.
func (p *PackageInfo) HeaderOnly() {
	p.Settings = Settings{}
	p.Options = map[string]string{}
	p.Requires = nil
}

// String returns the canonical text the identity is computed from.
func (p PackageInfo) String() string {
	var b strings.Builder

	b.WriteString("[settings]\n")
	for _, name := range p.Settings.Names() {
		_, _ = fmt.Fprintf(&b, "    %s=%s\n", name, p.Settings[name])
	}

	b.WriteString("[options]\n")
	options := make([]string, 0, len(p.Options))
	for name := range p.Options {
		options = append(options, name)
	}
	sort.Strings(options)
	for _, name := range options {
		_, _ = fmt.Fprintf(&b, "    %s=%s\n", name, p.Options[name])
	}

	b.WriteString("[requires]\n")
	requires := make([]string, 0, len(p.Requires))
	for _, r := range p.Requires {
		requires = append(requires, r.String())
	}
	sort.Strings(requires)
	for _, r := range requires {
		_, _ = fmt.Fprintf(&b, "    %s\n", r)
	}

	return b.String()
}

// ID returns the package identity, the hex encoded SHA-256 digest of the canonical info.
func (p PackageInfo) ID() string {
	return digest.FromString(p.String()).Encoded()
}

// PackageID declares the package header-only.
func (p PackageRecipe) PackageID(info *PackageInfo) {
	info.HeaderOnly()
}
