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
	"io"
	"os"
	"os/exec"
	"strings"
)

// Execution is a single invocation of an external build tool.
type Execution struct {

	// Command is the program to run, looked up in $PATH if not a path.
	Command string

	// Args are the arguments passed to the program.
	Args []string

	// Dir is the working directory of the process.
	Dir string

	// Env are additional environment variables, in KEY=value form, appended to the current environment.
	Env []string

	// Stdout receives the standard output of the process.
	Stdout io.Writer

	// Stderr receives the standard error of the process.
	Stderr io.Writer
}

func (e Execution) String() string {
	return strings.Join(append([]string{e.Command}, e.Args...), " ")
}

//go:generate mockery --name Executor --case=underscore

// Executor runs external processes for build systems.
type Executor interface {

	// Execute runs the process and blocks until it exits. A non-zero exit status is an error.
	Execute(ctx context.Context, execution Execution) error
}

// ProcessExecutor is the Executor that starts operating system processes.
type ProcessExecutor struct{}

func (ProcessExecutor) Execute(ctx context.Context, execution Execution) error {
	cmd := exec.CommandContext(ctx, execution.Command, execution.Args...)
	cmd.Dir = execution.Dir
	cmd.Env = append(os.Environ(), execution.Env...)
	cmd.Stdout = execution.Stdout
	cmd.Stderr = execution.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("unable to run %s\n%w", execution, err)
	}

	return nil
}
