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
	"strconv"
	"strings"
)

//go:generate mockery --name Generator --case=underscore

// Generator emits auxiliary build files describing the resolved dependencies. Generators run before Build.
type Generator interface {
	Generate(build BuildContext) error
}

// GeneratorCMake is the name of the CMake generator.
const GeneratorCMake = "cmake"

var generators = map[string]Generator{
	GeneratorCMake: CMakeGenerator{},
}

// NewGenerators returns the generators with the given names, in order.
func NewGenerators(names []string) ([]Generator, error) {
	var g []Generator

	for _, name := range names {
		generator, ok := generators[name]
		if !ok {
			return nil, fmt.Errorf("unknown generator %q", name)
		}
		g = append(g, generator)
	}

	return g, nil
}

// CMakeBuildInfo is the name of the file written by CMakeGenerator.
const CMakeBuildInfo = "conanbuildinfo.cmake"

// CMakeGenerator writes conanbuildinfo.cmake to the build directory. It sets CONAN_INCLUDE_DIRS_<NAME> for each
// dependency and CONAN_INCLUDE_DIRS for all of them, and defines the conan_basic_setup() macro adding them to the
// include path.
type CMakeGenerator struct{}

func (CMakeGenerator) Generate(build BuildContext) error {
	var (
		b   strings.Builder
		all []string
	)

	for _, d := range build.Dependencies {
		include := strconv.Quote(filepath.ToSlash(d.IncludePath()))
		all = append(all, include)
		_, _ = fmt.Fprintf(&b, "set(CONAN_INCLUDE_DIRS_%s %s)\n", cmakeName(d.Reference.Name), include)
	}

	_, _ = fmt.Fprintf(&b, "set(CONAN_INCLUDE_DIRS %s)\n", strings.Join(all, " "))
	b.WriteString("\nmacro(conan_basic_setup)\n")
	b.WriteString("    include_directories(${CONAN_INCLUDE_DIRS})\n")
	b.WriteString("endmacro()\n")

	if err := os.MkdirAll(build.BuildPath, 0755); err != nil {
		return fmt.Errorf("unable to mkdir %s\n%w", build.BuildPath, err)
	}

	file := filepath.Join(build.BuildPath, CMakeBuildInfo)
	build.logger().Debugf("Writing %s", file)
	if err := os.WriteFile(file, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("unable to write %s\n%w", file, err)
	}

	return nil
}

func cmakeName(name string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(name))
}

// RunGenerators runs each generator in order, stopping at the first failure.
func RunGenerators(build BuildContext, generators []Generator) error {
	for _, g := range generators {
		if err := g.Generate(build); err != nil {
			return fmt.Errorf("unable to run generator %T\n%w", g, err)
		}
	}

	return nil
}
