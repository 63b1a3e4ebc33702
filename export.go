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
	"fmt"
	"path/filepath"

	"github.com/braintwister/librecipe/internal"
)

// ExportSources copies the files of recipePath matching any of the globs to destination, preserving relative paths,
// and returns the copied paths sorted. Globs must stay within recipePath. When destination lies inside recipePath its
// contents are never exported.
func ExportSources(recipePath string, destination string, globs []string) ([]string, error) {
	patterns, err := internal.CompilePatterns(globs...)
	if err != nil {
		return nil, fmt.Errorf("unable to export sources\n%w", err)
	}

	files, err := internal.DirectoryContents{Path: recipePath}.Files()
	if err != nil {
		return nil, fmt.Errorf("unable to list %s\n%w", recipePath, err)
	}

	var exported []string
	for _, file := range files {
		if !patterns.Match(file) || within(filepath.Join(recipePath, file), destination) {
			continue
		}

		if err := (internal.FileCopier{}).Copy(recipePath, destination, file); err != nil {
			return nil, fmt.Errorf("unable to export %s\n%w", file, err)
		}
		exported = append(exported, file)
	}

	return exported, nil
}
