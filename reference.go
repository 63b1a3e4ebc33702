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
	"strings"

	"github.com/Masterminds/semver"
)

// Reference identifies a package in the name/version@user/channel form. User and Channel are optional but must be set
// together.
type Reference struct {

	// Name is the name of the package.
	Name string

	// Version is the version of the package.
	Version string

	// User is the namespace the package is published under.
	User string

	// Channel is the channel the package is published to, e.g. stable or testing.
	Channel string
}

// ParseReference parses a reference of the form name/version or name/version@user/channel.
func ParseReference(s string) (Reference, error) {
	var r Reference

	coordinates, scope, scoped := strings.Cut(s, "@")

	name, version, ok := strings.Cut(coordinates, "/")
	if !ok || name == "" || version == "" || strings.Contains(version, "/") {
		return Reference{}, fmt.Errorf("reference %q must be of the form name/version[@user/channel]", s)
	}
	r.Name, r.Version = name, version

	if _, err := semver.NewVersion(version); err != nil {
		return Reference{}, fmt.Errorf("reference %q has an invalid version\n%w", s, err)
	}

	if scoped {
		user, channel, ok := strings.Cut(scope, "/")
		if !ok || user == "" || channel == "" || strings.Contains(channel, "/") {
			return Reference{}, fmt.Errorf("reference %q must have a scope of the form user/channel", s)
		}
		r.User, r.Channel = user, channel
	}

	return r, nil
}

func (r Reference) String() string {
	if r.User == "" {
		return fmt.Sprintf("%s/%s", r.Name, r.Version)
	}

	return fmt.Sprintf("%s/%s@%s/%s", r.Name, r.Version, r.User, r.Channel)
}
