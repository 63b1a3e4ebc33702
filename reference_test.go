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

func testReference(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect
	)

	it("parses a scoped reference", func() {
		Expect(librecipe.ParseReference("gtest/1.8.0@bincrafters/stable")).To(Equal(librecipe.Reference{
			Name:    "gtest",
			Version: "1.8.0",
			User:    "bincrafters",
			Channel: "stable",
		}))
	})

	it("parses an unscoped reference", func() {
		Expect(librecipe.ParseReference("record/1.0")).To(Equal(librecipe.Reference{Name: "record", Version: "1.0"}))
	})

	it("round trips through String", func() {
		for _, s := range []string{"gtest/1.8.0@bincrafters/stable", "record/1.0"} {
			r, err := librecipe.ParseReference(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.String()).To(Equal(s))
		}
	})

	it("rejects malformed references", func() {
		for _, s := range []string{
			"gtest",
			"/1.8.0",
			"gtest/",
			"gtest/1.8.0/extra",
			"gtest/1.8.0@bincrafters",
			"gtest/1.8.0@/stable",
			"gtest/1.8.0@bincrafters/stable/extra",
		} {
			_, err := librecipe.ParseReference(s)
			Expect(err).To(HaveOccurred(), s)
		}
	})

	it("rejects invalid versions", func() {
		_, err := librecipe.ParseReference("gtest/latest@bincrafters/stable")
		Expect(err).To(MatchError(ContainSubstring("invalid version")))
	})
}
