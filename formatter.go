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

	"github.com/braintwister/librecipe/internal"
)

// SourcePathFormatter is the formatter for a BuildContext SourcePath.
type SourcePathFormatter string

func (s SourcePathFormatter) String() string {
	return contents("Source", string(s))
}

// BuildPathFormatter is the formatter for a BuildContext BuildPath.
type BuildPathFormatter string

func (b BuildPathFormatter) String() string {
	return contents("Build", string(b))
}

// PackagePathFormatter is the formatter for a PackageContext PackagePath.
type PackagePathFormatter string

func (p PackagePathFormatter) String() string {
	return contents("Package", string(p))
}

func contents(title string, path string) string {
	c, err := internal.DirectoryContents{Path: path}.Get()
	if err != nil {
		return fmt.Sprintf("%s contents: %s", title, err)
	}

	return fmt.Sprintf("%s contents: %s", title, c)
}
