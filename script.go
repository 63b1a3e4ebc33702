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
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Script is the BuildSystem that runs a POSIX shell script for each step, interpreted in-process. Scripts run in the
// build directory with RECIPE_SOURCE_DIR, RECIPE_BUILD_DIR and a RECIPE_SETTING_<NAME> variable per setting in their
// environment. An empty script is a step that does nothing.
type Script struct {

	// ConfigureScript is run by Configure.
	ConfigureScript string `toml:"configure" yaml:"configure"`

	// CompileScript is run by Compile.
	CompileScript string `toml:"compile" yaml:"compile"`

	// TestScript is run by RunTests.
	TestScript string `toml:"test" yaml:"test"`
}

func (s Script) Configure(ctx context.Context, build BuildContext) error {
	if err := os.MkdirAll(build.BuildPath, 0755); err != nil {
		return fmt.Errorf("unable to mkdir %s\n%w", build.BuildPath, err)
	}

	return s.run(ctx, build, string(StepConfigure), s.ConfigureScript)
}

func (s Script) Compile(ctx context.Context, build BuildContext) error {
	return s.run(ctx, build, string(StepCompile), s.CompileScript)
}

func (s Script) RunTests(ctx context.Context, build BuildContext) error {
	return s.run(ctx, build, string(StepTest), s.TestScript)
}

func (Script) run(ctx context.Context, build BuildContext, name string, script string) error {
	if strings.TrimSpace(script) == "" {
		return nil
	}

	logger := build.logger()

	file, err := syntax.NewParser().Parse(strings.NewReader(script), name)
	if err != nil {
		return fmt.Errorf("unable to parse %s script\n%w", name, err)
	}

	env := append(os.Environ(),
		"RECIPE_SOURCE_DIR="+build.SourcePath,
		"RECIPE_BUILD_DIR="+build.BuildPath,
	)
	for _, setting := range build.Settings.Names() {
		env = append(env, fmt.Sprintf("RECIPE_SETTING_%s=%s",
			strings.ToUpper(strings.ReplaceAll(setting, ".", "_")), build.Settings[setting]))
	}

	runner, err := interp.New(
		interp.Dir(build.BuildPath),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, logger.InfoWriter(), logger.InfoWriter()),
	)
	if err != nil {
		return fmt.Errorf("unable to create interpreter for %s script\n%w", name, err)
	}

	logger.Infof("Running %s script", name)
	if err := runner.Run(ctx, file); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return fmt.Errorf("%s script exited with status %d", name, status)
		}
		return fmt.Errorf("unable to run %s script\n%w", name, err)
	}

	return nil
}
