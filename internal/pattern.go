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

package internal

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Pattern is a shell-style file pattern matched against slash separated relative paths. Unlike path.Match, a * also
// matches directory separators so that "*.h" selects headers at any depth and "include/*" selects the whole tree.
type Pattern struct {
	raw string
	re  *regexp.Regexp
}

// CompilePattern compiles a pattern. The pattern must be relative and may not refer to a parent directory.
func CompilePattern(pattern string) (Pattern, error) {
	if err := ValidatePattern(pattern); err != nil {
		return Pattern{}, err
	}

	var b strings.Builder
	b.WriteString("^")

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			end, class, negate := bracket(pattern, i)
			if end < 0 {
				b.WriteString(regexp.QuoteMeta("["))
				continue
			}

			b.WriteString("[")
			if negate {
				b.WriteString("^")
			}
			for _, r := range class {
				if strings.ContainsRune(`\[]^`, r) {
					b.WriteString(`\`)
				}
				b.WriteRune(r)
			}
			b.WriteString("]")
			i = end
		default:
			r, size := utf8.DecodeRuneInString(pattern[i:])
			b.WriteString(regexp.QuoteMeta(string(r)))
			i += size - 1
		}
	}

	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return Pattern{}, fmt.Errorf("unable to compile pattern %s\n%w", pattern, err)
	}

	return Pattern{raw: pattern, re: re}, nil
}

// bracket scans the class opened at pattern[start]. A leading ! negates the class and a ] directly after the opening
// bracket is a member. It returns the index of the closing bracket, or -1 when the class is not terminated.
func bracket(pattern string, start int) (int, string, bool) {
	i := start + 1
	negate := i < len(pattern) && pattern[i] == '!'
	if negate {
		i++
	}

	first := i
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}

	j := strings.IndexByte(pattern[i:], ']')
	if j < 0 {
		return -1, "", false
	}

	return i + j, pattern[first : i+j], negate
}

// ValidatePattern checks that a pattern stays within the directory it is evaluated against.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("pattern must not be empty")
	}

	slashed := filepath.ToSlash(pattern)
	if strings.HasPrefix(slashed, "/") || filepath.IsAbs(pattern) {
		return fmt.Errorf("pattern %s must be relative", pattern)
	}

	for _, element := range strings.Split(slashed, "/") {
		if element == ".." {
			return fmt.Errorf("pattern %s must not refer to a parent directory", pattern)
		}
	}

	return nil
}

// Match reports whether a relative path matches the pattern.
func (p Pattern) Match(path string) bool {
	return p.re.MatchString(filepath.ToSlash(path))
}

func (p Pattern) String() string {
	return p.raw
}

// Patterns is an ordered collection of patterns, any of which may match.
type Patterns []Pattern

// CompilePatterns compiles each of the given patterns.
func CompilePatterns(patterns ...string) (Patterns, error) {
	var p Patterns

	for _, s := range patterns {
		c, err := CompilePattern(s)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}

	return p, nil
}

// Match reports whether any pattern matches a relative path.
func (p Patterns) Match(path string) bool {
	for _, pattern := range p {
		if pattern.Match(path) {
			return true
		}
	}

	return false
}
