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
	"os"
	"strconv"
	"strings"
)

// CMake is the BuildSystem that drives cmake and ctest.
type CMake struct {

	// Executor runs the cmake and ctest processes.
	Executor Executor

	// Generator is the optional CMake generator name, e.g. Ninja.
	Generator string

	// Parallel is the number of concurrent compile jobs. Zero leaves the choice to the native build tool.
	Parallel int
}

// NewCMake creates a CMake build system that runs real processes.
func NewCMake() CMake {
	return CMake{Executor: ProcessExecutor{}}
}

// Configure runs cmake to generate the build tree. The build type is passed as CMAKE_BUILD_TYPE and every setting as
// CONAN_<NAME>.
func (c CMake) Configure(ctx context.Context, build BuildContext) error {
	if err := os.MkdirAll(build.BuildPath, 0755); err != nil {
		return fmt.Errorf("unable to mkdir %s\n%w", build.BuildPath, err)
	}

	args := []string{"-S", build.SourcePath, "-B", build.BuildPath}
	if c.Generator != "" {
		args = append(args, "-G", c.Generator)
	}
	if bt, ok := build.Settings[SettingBuildType]; ok && bt != "" {
		args = append(args, fmt.Sprintf("-DCMAKE_BUILD_TYPE=%s", bt))
	}
	for _, name := range build.Settings.Names() {
		args = append(args, fmt.Sprintf("-D%s=%s", cmakeVariable(name), build.Settings[name]))
	}

	return c.execute(ctx, build, "cmake", args)
}

// Compile runs cmake --build over the build tree.
func (c CMake) Compile(ctx context.Context, build BuildContext) error {
	args := []string{"--build", build.BuildPath}
	if bt, ok := build.Settings[SettingBuildType]; ok && bt != "" {
		args = append(args, "--config", bt)
	}
	if c.Parallel > 0 {
		args = append(args, "--parallel", strconv.Itoa(c.Parallel))
	}

	return c.execute(ctx, build, "cmake", args)
}

// RunTests runs ctest over the build tree.
func (c CMake) RunTests(ctx context.Context, build BuildContext) error {
	if logger := build.logger(); logger.IsDebugEnabled() {
		logger.Debug(BuildPathFormatter(build.BuildPath))
	}

	args := []string{"--test-dir", build.BuildPath, "--output-on-failure"}
	if bt, ok := build.Settings[SettingBuildType]; ok && bt != "" {
		args = append(args, "-C", bt)
	}

	return c.execute(ctx, build, "ctest", args)
}

func (c CMake) execute(ctx context.Context, build BuildContext, command string, args []string) error {
	logger := build.logger()

	execution := Execution{
		Command: command,
		Args:    args,
		Dir:     build.BuildPath,
		Stdout:  logger.InfoWriter(),
		Stderr:  logger.InfoWriter(),
	}

	logger.Infof("Running %s", execution)
	return c.Executor.Execute(ctx, execution)
}

func cmakeVariable(setting string) string {
	return "CONAN_" + strings.ToUpper(strings.ReplaceAll(setting, ".", "_"))
}
