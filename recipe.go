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
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver"
	"gopkg.in/yaml.v3"

	"github.com/braintwister/librecipe/internal"
)

// Recipe is the declarative part of a package recipe, from recipe.toml or recipe.yaml.
type Recipe struct {

	// Name is the package identifier.
	Name string `toml:"name" yaml:"name"`

	// Version is the package version.
	Version string `toml:"version" yaml:"version"`

	// License is the license identifier.
	License string `toml:"license" yaml:"license"`

	// Description is a short description of the package.
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`

	// Homepage is the homepage of the packaged project.
	Homepage string `toml:"homepage,omitempty" yaml:"homepage,omitempty"`

	// URL is the location of the recipe itself.
	URL string `toml:"url,omitempty" yaml:"url,omitempty"`

	// ExportsSources are the globs, relative to the recipe directory, selecting the files copied into the build
	// context.
	ExportsSources []string `toml:"exports_sources" yaml:"exports_sources"`

	// NoCopySource indicates that the build may read the exported sources in place rather than from a per-build copy.
	NoCopySource bool `toml:"no_copy_source" yaml:"no_copy_source"`

	// Settings are the build-matrix axes the package identity may depend on.
	Settings []string `toml:"settings" yaml:"settings"`

	// Requires are the dependencies, as name/version@user/channel references, in resolution order.
	Requires []string `toml:"requires" yaml:"requires"`

	// Generators are the build-file generators to run before building.
	Generators []string `toml:"generators" yaml:"generators"`

	// Script holds the optional shell scripts used by the script build system.
	Script *Script `toml:"script,omitempty" yaml:"script,omitempty"`
}

// ReadRecipe decodes and validates a recipe descriptor. Files ending in .yaml or .yml are decoded as YAML, all others as
// TOML.
func ReadRecipe(path string) (Recipe, error) {
	var recipe Recipe

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return Recipe{}, fmt.Errorf("unable to read recipe %s\n%w", path, err)
		}
		if err := yaml.Unmarshal(b, &recipe); err != nil {
			return Recipe{}, fmt.Errorf("unable to decode recipe %s\n%w", path, err)
		}
	default:
		if _, err := toml.DecodeFile(path, &recipe); err != nil {
			return Recipe{}, fmt.Errorf("unable to decode recipe %s\n%w", path, err)
		}
	}

	if err := recipe.Validate(); err != nil {
		return Recipe{}, fmt.Errorf("unable to validate recipe %s\n%w", path, err)
	}

	return recipe, nil
}

// Validate checks the recipe metadata. All returned errors wrap ErrInvalidRecipe.
func (r Recipe) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidRecipe)
	}

	if _, err := semver.NewVersion(r.Version); err != nil {
		return fmt.Errorf("%w: version %q cannot be parsed: %s", ErrInvalidRecipe, r.Version, err)
	}

	if r.License == "" {
		return fmt.Errorf("%w: license must not be empty", ErrInvalidRecipe)
	}

	for _, glob := range r.ExportsSources {
		if err := internal.ValidatePattern(glob); err != nil {
			return fmt.Errorf("%w: exports_sources: %s", ErrInvalidRecipe, err)
		}
	}

	for _, axis := range r.Settings {
		if !isKnownSetting(axis) {
			return fmt.Errorf("%w: unknown setting %q, expected one of %s", ErrInvalidRecipe, axis, KnownSettings)
		}
	}

	for _, require := range r.Requires {
		if _, err := ParseReference(require); err != nil {
			return fmt.Errorf("%w: requires: %s", ErrInvalidRecipe, err)
		}
	}

	for _, generator := range r.Generators {
		if _, ok := generators[generator]; !ok {
			return fmt.Errorf("%w: unknown generator %q", ErrInvalidRecipe, generator)
		}
	}

	return nil
}

// Reference returns the reference of the package the recipe describes.
func (r Recipe) Reference() Reference {
	return Reference{Name: r.Name, Version: r.Version}
}

func (r Recipe) clone() Recipe {
	c := r
	c.ExportsSources = append([]string(nil), r.ExportsSources...)
	c.Settings = append([]string(nil), r.Settings...)
	c.Requires = append([]string(nil), r.Requires...)
	c.Generators = append([]string(nil), r.Generators...)
	if r.Script != nil {
		s := *r.Script
		c.Script = &s
	}
	return c
}
