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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"

	"github.com/braintwister/librecipe"
	"github.com/braintwister/librecipe/internal"
)

func testRoot(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		buildDir    string
		depsDir     string
		output      *bytes.Buffer
		packagesDir string
		recipeDir   string
	)

	write := func(rel string, contents string) {
		path := filepath.Join(recipeDir, rel)
		Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(contents), 0600)).To(Succeed())
	}

	execute := func(args ...string) error {
		root := newRootCommand()
		root.SetOut(output)
		root.SetErr(output)
		root.SetArgs(append(args,
			"--backend", "script",
			"--build-dir", buildDir,
			"--deps-dir", depsDir,
			"--packages-dir", packagesDir,
			"-s", "os=Linux",
			"-s", "compiler=gcc",
		))
		return root.Execute()
	}

	headerOnlyID := librecipe.PackageInfo{}.ID()

	it.Before(func() {
		output = &bytes.Buffer{}
		buildDir = t.TempDir()
		depsDir = t.TempDir()
		packagesDir = t.TempDir()
		recipeDir = t.TempDir()

		write("recipe.toml", `
name = "benchmark"
version = "1.0"
license = "MIT"
exports_sources = ["include/*", "test/*", "CMakeLists.txt"]
settings = ["os", "compiler", "build_type", "arch"]
requires = ["record/1.0@braintwister/testing"]
generators = ["cmake"]

[script]
configure = "test -f conanbuildinfo.cmake && test -f CMakeLists.txt"
compile = "echo compiled"
test = "test -f include/BrainTwister/benchmark.h"
`)
		write("include/BrainTwister/benchmark.h", "#pragma once\n")
		write("test/benchmark.cpp", "int main() {}\n")
		write("CMakeLists.txt", "project(benchmark)\n")

		Expect(os.MkdirAll(filepath.Join(depsDir, "record", "1.0", "include"), 0755)).To(Succeed())
	})

	context("create", func() {
		it("builds, tests and packages the headers", func() {
			Expect(execute("create", recipeDir, "-s", "build_type=Release")).To(Succeed())

			pkg := filepath.Join(packagesDir, "benchmark", "1.0", headerOnlyID)
			Expect(internal.DirectoryContents{Path: pkg}.Files()).
				To(Equal([]string{filepath.Join("include", "BrainTwister", "benchmark.h")}))

			Expect(os.ReadFile(pkg + ".toml")).To(internal.MatchTOML(`
name = "benchmark"
version = "1.0"
license = "MIT"
id = "` + headerOnlyID + `"
requires = ["record/1.0@braintwister/testing"]
files = ["include/BrainTwister/benchmark.h"]
`))
			Expect(output.String()).To(ContainSubstring("compiled"))
			Expect(output.String()).To(ContainSubstring("Created benchmark/1.0:" + headerOnlyID))
		})

		it("does not package when tests fail", func() {
			write("recipe.toml", `
name = "benchmark"
version = "1.0"
license = "MIT"
exports_sources = ["include/*"]

[script]
test = "exit 1"
`)

			err := execute("create", recipeDir)
			Expect(errors.Is(err, librecipe.ErrTest)).To(BeTrue())
			Expect(filepath.Join(packagesDir, "benchmark")).NotTo(BeADirectory())
		})

		it("fails configuration when a dependency is missing", func() {
			Expect(os.RemoveAll(filepath.Join(depsDir, "record"))).To(Succeed())

			err := execute("create", recipeDir)
			Expect(errors.Is(err, librecipe.ErrConfigure)).To(BeTrue())
			Expect(filepath.Join(packagesDir, "benchmark")).NotTo(BeADirectory())
		})

		it("drops headers removed from the recipe since the last create", func() {
			write("recipe.toml", `
name = "benchmark"
version = "1.0"
license = "MIT"
exports_sources = ["include/*", "test/*"]
no_copy_source = true

[script]
test = "true"
`)
			Expect(execute("create", recipeDir)).To(Succeed())

			pkg := filepath.Join(packagesDir, "benchmark", "1.0", headerOnlyID)
			Expect(filepath.Join(pkg, "include", "BrainTwister", "benchmark.h")).To(BeARegularFile())

			Expect(os.Remove(filepath.Join(recipeDir, "include", "BrainTwister", "benchmark.h"))).To(Succeed())

			Expect(execute("create", recipeDir)).To(Succeed())
			Expect(internal.DirectoryContents{Path: pkg}.Files()).To(BeEmpty())
			Expect(filepath.Join(buildDir, "benchmark", "1.0", "source", "include", "BrainTwister", "benchmark.h")).
				NotTo(BeAnExistingFile())
		})

		it("does not keep settings in the manifest of a header-only package", func() {
			Expect(execute("create", recipeDir, "-s", "build_type=Debug")).To(Succeed())

			b, err := os.ReadFile(filepath.Join(packagesDir, "benchmark", "1.0", headerOnlyID+".toml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).NotTo(ContainSubstring("build_type"))
		})

		it("packages an empty package when there are no headers", func() {
			Expect(os.RemoveAll(filepath.Join(recipeDir, "include"))).To(Succeed())
			write("recipe.toml", `
name = "benchmark"
version = "1.0"
license = "MIT"
exports_sources = ["include/*", "test/*"]

[script]
test = "true"
`)

			Expect(execute("create", recipeDir)).To(Succeed())

			pkg := filepath.Join(packagesDir, "benchmark", "1.0", headerOnlyID)
			Expect(internal.DirectoryContents{Path: pkg}.Files()).To(BeEmpty())
			Expect(pkg + ".toml").To(BeARegularFile())
		})
	})

	context("build and package", func() {
		it("packages a previous build", func() {
			Expect(execute("build", recipeDir)).To(Succeed())
			Expect(execute("package", recipeDir)).To(Succeed())

			pkg := filepath.Join(packagesDir, "benchmark", "1.0", headerOnlyID)
			Expect(filepath.Join(pkg, "include", "BrainTwister", "benchmark.h")).To(BeARegularFile())
		})

		it("refuses to package a failed build", func() {
			write("recipe.toml", `
name = "benchmark"
version = "1.0"
license = "MIT"
exports_sources = ["include/*"]

[script]
test = "exit 1"
`)

			Expect(errors.Is(execute("build", recipeDir), librecipe.ErrTest)).To(BeTrue())
			Expect(execute("package", recipeDir)).To(MatchError(ContainSubstring("no successful build")))
			Expect(filepath.Join(packagesDir, "benchmark")).NotTo(BeADirectory())
		})

		it("refuses to package without a build", func() {
			Expect(execute("package", recipeDir)).To(MatchError(ContainSubstring("run build first")))
		})

		it("keeps builds with different settings apart", func() {
			Expect(execute("build", recipeDir, "-s", "build_type=Release")).To(Succeed())
			Expect(execute("build", recipeDir, "-s", "build_type=Debug")).To(Succeed())

			Expect(filepath.Glob(filepath.Join(buildDir, "benchmark", "1.0", "build", "*"))).To(HaveLen(2))
		})
	})

	context("package-id", func() {
		it("prints the same identity for every build type", func() {
			Expect(execute("package-id", recipeDir, "-s", "build_type=Release")).To(Succeed())
			Expect(execute("package-id", recipeDir, "-s", "build_type=Debug")).To(Succeed())

			Expect(output.String()).To(Equal(headerOnlyID + "\n" + headerOnlyID + "\n"))
		})
	})

	context("inspect", func() {
		it("prints the recipe", func() {
			Expect(execute("inspect", recipeDir)).To(Succeed())

			Expect(output.String()).To(ContainSubstring(`name = "benchmark"`))
			Expect(output.String()).To(ContainSubstring(`requires = ["record/1.0@braintwister/testing"]`))
		})

		it("fails without a descriptor", func() {
			Expect(os.Remove(filepath.Join(recipeDir, "recipe.toml"))).To(Succeed())

			Expect(execute("inspect", recipeDir)).To(MatchError(ContainSubstring("no recipe descriptor found")))
		})
	})

	it("rejects the script backend without scripts", func() {
		write("recipe.toml", `
name = "benchmark"
version = "1.0"
license = "MIT"
`)

		Expect(execute("build", recipeDir)).To(MatchError(ContainSubstring("declares no script")))
	})
}
