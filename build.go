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
	"context"
	"fmt"
	"path/filepath"

	"github.com/braintwister/librecipe/log"
)

// Dependency is a required package that the orchestrator resolved and materialized before the build.
type Dependency struct {

	// Reference is the reference the dependency was resolved for.
	Reference Reference

	// Path is the root of the materialized package.
	Path string
}

// IncludePath returns the header directory of the dependency.
func (d Dependency) IncludePath() string {
	return filepath.Join(d.Path, "include")
}

// BuildContext contains the inputs to build. It is bound for a single invocation and never retained by the recipe.
type BuildContext struct {

	// SourcePath is the directory holding the exported sources.
	SourcePath string

	// BuildPath is the build-output directory, owned exclusively by this invocation.
	BuildPath string

	// Settings are the concrete build-matrix values for this invocation.
	Settings Settings

	// Dependencies are the resolved requirements of the recipe.
	Dependencies []Dependency

	// Logger is the way to write messages to the end user.
	Logger log.Logger
}

func (b BuildContext) logger() log.Logger {
	if b.Logger == nil {
		return log.NewDiscard()
	}
	return b.Logger
}

//go:generate mockery --name BuildSystem --case=underscore

// BuildSystem is the native build tool a recipe drives. Each method blocks until the underlying step completes.
type BuildSystem interface {

	// Configure translates settings and dependency information into a concrete build tree.
	Configure(ctx context.Context, build BuildContext) error

	// Compile builds the targets defined by the configured build tree.
	Compile(ctx context.Context, build BuildContext) error

	// RunTests executes the built test binaries.
	RunTests(ctx context.Context, build BuildContext) error
}

// PackageRecipe is a validated recipe bound to the build system that drives it.
type PackageRecipe struct {
	recipe      Recipe
	requires    []Reference
	buildSystem BuildSystem
}

// NewPackageRecipe validates the recipe and binds it to a build system.
func NewPackageRecipe(recipe Recipe, buildSystem BuildSystem) (PackageRecipe, error) {
	if err := recipe.Validate(); err != nil {
		return PackageRecipe{}, err
	}

	if buildSystem == nil {
		return PackageRecipe{}, fmt.Errorf("build system must not be nil")
	}

	p := PackageRecipe{recipe: recipe.clone(), buildSystem: buildSystem}
	for _, require := range recipe.Requires {
		r, err := ParseReference(require)
		if err != nil {
			return PackageRecipe{}, err
		}
		p.requires = append(p.requires, r)
	}

	return p, nil
}

// Recipe returns a copy of the recipe metadata.
func (p PackageRecipe) Recipe() Recipe {
	return p.recipe.clone()
}

// Requires returns the parsed requirements in declaration order.
func (p PackageRecipe) Requires() []Reference {
	return append([]Reference(nil), p.requires...)
}

// Build configures the build tree, compiles it and runs its tests, strictly in that order. The packaged library is
// header-only, so the build exists to compile and run the test suite as a gate before packaging. The first failing
// step aborts the build with a *BuildFailure.
func (p PackageRecipe) Build(ctx context.Context, build BuildContext) error {
	logger := build.logger()

	logger.Infof("Building %s", p.recipe.Reference())
	if logger.IsDebugEnabled() {
		logger.Debug(SourcePathFormatter(build.SourcePath))
	}
	logger.Debugf("Settings: %v", build.Settings)
	logger.Debugf("Dependencies: %+v", build.Dependencies)

	if err := p.checkDependencies(build.Dependencies); err != nil {
		return &BuildFailure{Step: StepConfigure, Err: err}
	}

	steps := []struct {
		step Step
		run  func(context.Context, BuildContext) error
	}{
		{StepConfigure, p.buildSystem.Configure},
		{StepCompile, p.buildSystem.Compile},
		{StepTest, p.buildSystem.RunTests},
	}

	for _, s := range steps {
		logger.Debugf("Running %s step", s.step)
		if err := s.run(ctx, build); err != nil {
			return &BuildFailure{Step: s.step, Err: err}
		}
	}

	return nil
}

func (p PackageRecipe) checkDependencies(dependencies []Dependency) error {
	for _, require := range p.requires {
		found := false
		for _, d := range dependencies {
			if d.Reference.Name == require.Name && d.Reference.Version == require.Version {
				found = true
				break
			}
		}

		if !found {
			return fmt.Errorf("unresolved dependency %s", require)
		}
	}

	return nil
}
