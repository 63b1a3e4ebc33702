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

package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"

	"github.com/braintwister/librecipe/internal"
)

func testFileCopier(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		copier      internal.FileCopier
		destination string
		source      string
	)

	it.Before(func() {
		source = t.TempDir()
		destination = t.TempDir()

		Expect(os.MkdirAll(filepath.Join(source, "include", "BrainTwister"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(source, "include", "BrainTwister", "clock.h"), []byte("#pragma once\n"), 0600)).
			To(Succeed())
	})

	it("copies a file preserving its relative path", func() {
		rel := filepath.Join("include", "BrainTwister", "clock.h")
		Expect(copier.Copy(source, destination, rel)).To(Succeed())

		Expect(os.ReadFile(filepath.Join(destination, rel))).To(Equal([]byte("#pragma once\n")))

		info, err := os.Stat(filepath.Join(destination, rel))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0644)))
	})

	it("overwrites an existing file", func() {
		rel := filepath.Join("include", "BrainTwister", "clock.h")
		Expect(os.MkdirAll(filepath.Join(destination, "include", "BrainTwister"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(destination, rel), []byte("stale contents that are longer"), 0644)).To(Succeed())

		Expect(copier.Copy(source, destination, rel)).To(Succeed())
		Expect(os.ReadFile(filepath.Join(destination, rel))).To(Equal([]byte("#pragma once\n")))
	})

	it("fails when the source does not exist", func() {
		Expect(copier.Copy(source, destination, "missing.h")).To(MatchError(ContainSubstring("unable to open")))
	})
}
