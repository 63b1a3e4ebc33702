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

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/braintwister/librecipe"
	"github.com/braintwister/librecipe/internal"
	"github.com/braintwister/librecipe/log"
)

// descriptors are the recipe descriptor names, in lookup order.
var descriptors = []string{"recipe.toml", "recipe.yaml", "recipe.yml"}

// buildMarker is the file written into the build directory once a build has passed its tests.
const buildMarker = "recipe-build.toml"

// workspace lays out the directories of one recipe invocation and binds the recipe to its build system.
type workspace struct {
	config     config
	logger     log.Logger
	recipe     librecipe.PackageRecipe
	recipePath string
}

// packageManifest is written next to each package and describes its contents.
type packageManifest struct {
	Name     string            `toml:"name"`
	Version  string            `toml:"version"`
	License  string            `toml:"license"`
	ID       string            `toml:"id"`
	Settings map[string]string `toml:"settings,omitempty"`
	Requires []string          `toml:"requires"`
	Files    []string          `toml:"files"`
}

// buildRecord is the content of the build marker.
type buildRecord struct {
	Name     string            `toml:"name"`
	Version  string            `toml:"version"`
	Settings map[string]string `toml:"settings,omitempty"`
}

func newWorkspace(recipePath string, c config, logger log.Logger) (workspace, error) {
	file, err := findDescriptor(recipePath)
	if err != nil {
		return workspace{}, err
	}

	r, err := librecipe.ReadRecipe(file)
	if err != nil {
		return workspace{}, err
	}

	var buildSystem librecipe.BuildSystem
	switch c.Backend {
	case backendScript:
		if r.Script == nil {
			return workspace{}, fmt.Errorf("recipe %s declares no script", file)
		}
		buildSystem = *r.Script
	default:
		cmake := librecipe.NewCMake()
		cmake.Generator = c.CMakeGenerator
		cmake.Parallel = c.Parallel
		buildSystem = cmake
	}

	p, err := librecipe.NewPackageRecipe(r, buildSystem)
	if err != nil {
		return workspace{}, err
	}

	return workspace{config: c, logger: logger, recipe: p, recipePath: recipePath}, nil
}

func findDescriptor(recipePath string) (string, error) {
	for _, name := range descriptors {
		file := filepath.Join(recipePath, name)
		if _, err := os.Stat(file); err == nil {
			return file, nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("unable to stat %s\n%w", file, err)
		}
	}

	return "", fmt.Errorf("no recipe descriptor found in %s, expected one of %s", recipePath, descriptors)
}

func (w workspace) root() string {
	r := w.recipe.Recipe()
	return filepath.Join(w.config.BuildDir, r.Name, r.Version)
}

// buildPath is distinct for every combination of settings so that concurrent builds never share a directory.
func (w workspace) buildPath() string {
	info := librecipe.NewPackageInfo(w.recipe.Recipe(), w.config.Settings, w.recipe.Requires())
	return filepath.Join(w.root(), "build", info.ID()[:12])
}

func (w workspace) sourcePath() string {
	if w.recipe.Recipe().NoCopySource {
		return filepath.Join(w.root(), "source")
	}
	return w.buildPath()
}

func (w workspace) packageInfo() *librecipe.PackageInfo {
	info := librecipe.NewPackageInfo(w.recipe.Recipe(), w.config.Settings, w.recipe.Requires())
	w.recipe.PackageID(info)
	return info
}

func (w workspace) packageID() string {
	return w.packageInfo().ID()
}

func (w workspace) packagePath() string {
	r := w.recipe.Recipe()
	return filepath.Join(w.config.PackagesDir, r.Name, r.Version, w.packageID())
}

func (w workspace) manifestPath() string {
	return w.packagePath() + ".toml"
}

// dependencies resolves requirements from <deps-dir>/<name>/<version>. Requirements that are not present are left
// out, which Build reports as a configuration failure.
func (w workspace) dependencies() []librecipe.Dependency {
	var d []librecipe.Dependency

	if w.config.DepsDir == "" {
		return d
	}

	for _, r := range w.recipe.Requires() {
		path := filepath.Join(w.config.DepsDir, r.Name, r.Version)
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			w.logger.Debugf("Dependency %s not found in %s", r, path)
			continue
		}
		d = append(d, librecipe.Dependency{Reference: r, Path: path})
	}

	return d
}

func (w workspace) buildContext() librecipe.BuildContext {
	return librecipe.BuildContext{
		SourcePath:   w.sourcePath(),
		BuildPath:    w.buildPath(),
		Settings:     w.config.Settings,
		Dependencies: w.dependencies(),
		Logger:       w.logger,
	}
}

// export replaces the source tree with the source manifest and runs the generators.
func (w workspace) export(build librecipe.BuildContext) error {
	r := w.recipe.Recipe()

	if err := os.RemoveAll(build.SourcePath); err != nil {
		return fmt.Errorf("unable to remove %s\n%w", build.SourcePath, err)
	}

	exported, err := librecipe.ExportSources(w.recipePath, build.SourcePath, r.ExportsSources)
	if err != nil {
		return err
	}
	w.logger.Infof("Exported %d files to %s", len(exported), build.SourcePath)

	generators, err := librecipe.NewGenerators(r.Generators)
	if err != nil {
		return err
	}

	return librecipe.RunGenerators(build, generators)
}

// build runs the build and records its success in the build directory.
func (w workspace) build(ctx context.Context, build librecipe.BuildContext) error {
	marker := filepath.Join(build.BuildPath, buildMarker)
	if err := os.RemoveAll(marker); err != nil {
		return fmt.Errorf("unable to remove %s\n%w", marker, err)
	}

	if err := w.recipe.Build(ctx, build); err != nil {
		return err
	}

	r := w.recipe.Recipe()
	record := buildRecord{Name: r.Name, Version: r.Version, Settings: build.Settings.Filter(r.Settings)}
	if err := (internal.TOMLWriter{}).Write(marker, record); err != nil {
		return fmt.Errorf("unable to write build marker %s\n%w", marker, err)
	}

	return nil
}

func (w workspace) pack(build librecipe.BuildContext) (packageManifest, error) {
	marker := filepath.Join(build.BuildPath, buildMarker)
	if _, err := os.Stat(marker); os.IsNotExist(err) {
		return packageManifest{}, fmt.Errorf("no successful build in %s, run build first", build.BuildPath)
	} else if err != nil {
		return packageManifest{}, fmt.Errorf("unable to stat %s\n%w", marker, err)
	}

	result, err := w.recipe.Package(librecipe.PackageContext{
		SourcePath:  build.SourcePath,
		BuildPath:   build.BuildPath,
		PackagePath: w.packagePath(),
		Logger:      w.logger,
	})
	if err != nil {
		return packageManifest{}, err
	}

	r := w.recipe.Recipe()
	info := w.packageInfo()
	m := packageManifest{
		Name:     r.Name,
		Version:  r.Version,
		License:  r.License,
		ID:       info.ID(),
		Settings: info.Settings,
		Requires: r.Requires,
		Files:    result.Files,
	}

	if err := (internal.TOMLWriter{}).Write(w.manifestPath(), m); err != nil {
		return packageManifest{}, fmt.Errorf("unable to write package manifest %s\n%w", w.manifestPath(), err)
	}

	return m, nil
}
