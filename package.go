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
	"sort"
	"strings"

	"github.com/braintwister/librecipe/internal"
	"github.com/braintwister/librecipe/log"
)

// HeaderPattern selects the files that make up a header-only package.
const HeaderPattern = "*.h"

// PackageContext contains the inputs to package.
type PackageContext struct {

	// SourcePath is the directory holding the exported sources.
	SourcePath string

	// BuildPath is the build-output directory of the successful build.
	BuildPath string

	// PackagePath is the directory the package contents are written to.
	PackagePath string

	// Logger is the way to write messages to the end user.
	Logger log.Logger
}

// PackageResult contains the results of packaging.
type PackageResult struct {

	// Files are the copied files, relative to PackagePath and sorted.
	Files []string
}

// Package replaces the package directory with every header from the source tree and then the build tree, preserving
// relative paths. Nothing but headers is ever copied. Finding no headers is not an error; the result is an empty
// package.
func (p PackageRecipe) Package(ctx PackageContext) (PackageResult, error) {
	logger := ctx.Logger
	if logger == nil {
		logger = log.NewDiscard()
	}

	if ctx.PackagePath == "" {
		return PackageResult{}, fmt.Errorf("package path must not be empty")
	}

	patterns, err := internal.CompilePatterns(HeaderPattern)
	if err != nil {
		return PackageResult{}, err
	}

	for _, root := range []string{ctx.SourcePath, ctx.BuildPath} {
		if root != "" && within(root, ctx.PackagePath) {
			return PackageResult{}, fmt.Errorf("package path %s must not contain %s", ctx.PackagePath, root)
		}
	}

	if err := os.RemoveAll(ctx.PackagePath); err != nil {
		return PackageResult{}, fmt.Errorf("unable to remove %s\n%w", ctx.PackagePath, err)
	}
	if err := os.MkdirAll(ctx.PackagePath, 0755); err != nil {
		return PackageResult{}, fmt.Errorf("unable to mkdir %s\n%w", ctx.PackagePath, err)
	}

	roots := []string{ctx.SourcePath}
	if ctx.BuildPath != "" && filepath.Clean(ctx.BuildPath) != filepath.Clean(ctx.SourcePath) {
		roots = append(roots, ctx.BuildPath)
	}

	copied := map[string]struct{}{}
	for _, root := range roots {
		files, err := internal.DirectoryContents{Path: root}.Files()
		if err != nil {
			return PackageResult{}, fmt.Errorf("unable to list %s\n%w", root, err)
		}

		for _, file := range files {
			if !patterns.Match(file) || within(filepath.Join(root, file), ctx.PackagePath) {
				continue
			}

			logger.Debugf("Copying %s", filepath.Join(root, file))
			if err := (internal.FileCopier{}).Copy(root, ctx.PackagePath, file); err != nil {
				return PackageResult{}, fmt.Errorf("unable to package %s\n%w", file, err)
			}
			copied[file] = struct{}{}
		}
	}

	result := PackageResult{}
	for file := range copied {
		result.Files = append(result.Files, file)
	}
	sort.Strings(result.Files)

	if len(result.Files) == 0 {
		logger.Debugf("No files matching %s found, package is empty", HeaderPattern)
	}
	logger.Infof("Packaged %d files into %s", len(result.Files), ctx.PackagePath)
	if logger.IsDebugEnabled() {
		logger.Debug(PackagePathFormatter(ctx.PackagePath))
	}

	return result, nil
}

func within(path string, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
