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
	"sort"
	"strings"
)

const (
	// SettingOS is the operating system axis.
	SettingOS = "os"

	// SettingCompiler is the compiler axis. Sub-settings such as compiler.version belong to it.
	SettingCompiler = "compiler"

	// SettingBuildType is the build type axis, e.g. Release or Debug.
	SettingBuildType = "build_type"

	// SettingArch is the architecture axis.
	SettingArch = "arch"
)

// KnownSettings are the build-matrix axes a recipe may declare.
var KnownSettings = []string{SettingOS, SettingCompiler, SettingBuildType, SettingArch}

// Settings are the concrete values of the build-matrix axes for one invocation. Keys are axis names or dotted
// sub-settings of an axis (compiler.version).
type Settings map[string]string

// Names returns the setting names, sorted.
func (s Settings) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Filter returns the settings that belong to one of the given axes.
func (s Settings) Filter(axes []string) Settings {
	filtered := Settings{}

	for name, value := range s {
		for _, axis := range axes {
			if name == axis || strings.HasPrefix(name, axis+".") {
				filtered[name] = value
				break
			}
		}
	}

	return filtered
}

func isKnownSetting(axis string) bool {
	for _, known := range KnownSettings {
		if axis == known {
			return true
		}
	}

	return false
}
