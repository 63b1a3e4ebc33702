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
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"

	"github.com/braintwister/librecipe"
)

func testSettings(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		settings librecipe.Settings
	)

	it.Before(func() {
		settings = librecipe.Settings{
			"os":               "Linux",
			"compiler":         "gcc",
			"compiler.version": "9",
			"compilerx":        "nope",
			"build_type":       "Release",
		}
	})

	it("sorts names", func() {
		Expect(settings.Names()).To(Equal([]string{"build_type", "compiler", "compiler.version", "compilerx", "os"}))
	})

	it("filters by axis including sub-settings", func() {
		Expect(settings.Filter([]string{"compiler", "os"})).To(Equal(librecipe.Settings{
			"os":               "Linux",
			"compiler":         "gcc",
			"compiler.version": "9",
		}))
	})

	it("filters everything without axes", func() {
		Expect(settings.Filter(nil)).To(BeEmpty())
	})
}
