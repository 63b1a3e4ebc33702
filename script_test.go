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

package librecipe_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"

	"github.com/braintwister/librecipe"
	"github.com/braintwister/librecipe/log"
)

func testScript(t *testing.T, when spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		build  librecipe.BuildContext
		output *bytes.Buffer
	)

	it.Before(func() {
		output = &bytes.Buffer{}

		build = librecipe.BuildContext{
			SourcePath: t.TempDir(),
			BuildPath:  filepath.Join(t.TempDir(), "build"),
			Settings:   librecipe.Settings{"build_type": "Release", "compiler.version": "9"},
			Logger:     log.New(output),
		}
	})

	it("runs scripts in the build directory", func() {
		script := librecipe.Script{ConfigureScript: "echo configured > marker"}

		Expect(script.Configure(context.Background(), build)).To(Succeed())
		Expect(os.ReadFile(filepath.Join(build.BuildPath, "marker"))).To(Equal([]byte("configured\n")))
	})

	it("exposes paths and settings to scripts", func() {
		script := librecipe.Script{
			ConfigureScript: "true",
			CompileScript:   `echo "$RECIPE_SOURCE_DIR $RECIPE_SETTING_BUILD_TYPE $RECIPE_SETTING_COMPILER_VERSION"`,
		}

		Expect(script.Configure(context.Background(), build)).To(Succeed())
		Expect(script.Compile(context.Background(), build)).To(Succeed())
		Expect(output.String()).To(ContainSubstring(build.SourcePath + " Release 9\n"))
	})

	it("treats an empty script as success", func() {
		script := librecipe.Script{}

		Expect(script.Configure(context.Background(), build)).To(Succeed())
		Expect(script.Compile(context.Background(), build)).To(Succeed())
		Expect(script.RunTests(context.Background(), build)).To(Succeed())
	})

	it("fails on a non-zero exit status", func() {
		script := librecipe.Script{TestScript: "exit 3"}
		Expect(os.MkdirAll(build.BuildPath, 0755)).To(Succeed())

		Expect(script.RunTests(context.Background(), build)).To(MatchError("test script exited with status 3"))
	})

	it("fails on a syntax error", func() {
		script := librecipe.Script{CompileScript: "if then"}
		Expect(os.MkdirAll(build.BuildPath, 0755)).To(Succeed())

		Expect(script.Compile(context.Background(), build)).To(MatchError(ContainSubstring("unable to parse compile script")))
	})

	it("surfaces a failing test step as a test failure", func() {
		r := benchmarkRecipe()
		r.Requires = nil
		recipe, err := librecipe.NewPackageRecipe(r, librecipe.Script{TestScript: "false"})
		Expect(err).NotTo(HaveOccurred())

		err = recipe.Build(context.Background(), build)

		var failure *librecipe.BuildFailure
		Expect(err).To(BeAssignableToTypeOf(failure))
		Expect(err.(*librecipe.BuildFailure).Step).To(Equal(librecipe.StepTest))
	})
}
