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
	"io"
	"os"
	"path/filepath"
)

// FileCopier copies files between directory trees, preserving paths relative to the roots.
type FileCopier struct{}

// Copy copies source/rel to destination/rel, creating parent directories and truncating any existing file. Copied files
// are always written with mode 0644 so that repeated copies produce identical trees.
func (FileCopier) Copy(source string, destination string, rel string) error {
	in, err := os.Open(filepath.Join(source, rel))
	if err != nil {
		return fmt.Errorf("unable to open %s\n%w", filepath.Join(source, rel), err)
	}
	defer in.Close()

	file := filepath.Join(destination, rel)
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("unable to mkdir %s\n%w", filepath.Dir(file), err)
	}

	out, err := os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("unable to open file %s\n%w", file, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("unable to copy %s to %s\n%w", filepath.Join(source, rel), file, err)
	}

	if err := os.Chmod(file, 0644); err != nil {
		return fmt.Errorf("unable to chmod %s\n%w", file, err)
	}

	return nil
}
