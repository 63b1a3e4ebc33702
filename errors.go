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
	"errors"
	"fmt"
)

var (
	// ErrConfigure indicates that the build system could not produce a valid build tree.
	ErrConfigure = errors.New("configuration failed")

	// ErrCompile indicates that compilation of the build targets failed.
	ErrCompile = errors.New("compilation failed")

	// ErrTest indicates that the test binaries ran and reported failures.
	ErrTest = errors.New("tests failed")

	// ErrInvalidRecipe indicates that a recipe descriptor is malformed.
	ErrInvalidRecipe = errors.New("invalid recipe")
)

// Step is one of the ordered steps of a build.
type Step string

const (
	StepConfigure Step = "configure"
	StepCompile   Step = "compile"
	StepTest      Step = "test"
)

// BuildFailure is returned by Build when one of its steps fails. It matches both the sentinel for the failing step
// (ErrConfigure, ErrCompile or ErrTest) and the underlying cause under errors.Is and errors.As.
type BuildFailure struct {

	// Step is the step that failed.
	Step Step

	// Err is the underlying cause.
	Err error
}

func (b *BuildFailure) Error() string {
	if b.Err == nil {
		return fmt.Sprintf("%s step: %s", b.Step, b.sentinel())
	}

	return fmt.Sprintf("%s step: %s\n%s", b.Step, b.sentinel(), b.Err)
}

func (b *BuildFailure) Unwrap() []error {
	return []error{b.sentinel(), b.Err}
}

func (b *BuildFailure) sentinel() error {
	switch b.Step {
	case StepConfigure:
		return ErrConfigure
	case StepCompile:
		return ErrCompile
	default:
		return ErrTest
	}
}
