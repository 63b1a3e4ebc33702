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

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/braintwister/librecipe"
)

const (
	flagBackend         = "backend"
	flagBuildDir        = "build-dir"
	flagCMakeGenerator  = "cmake-generator"
	flagDepsDir         = "deps-dir"
	flagPackagesDir     = "packages-dir"
	flagParallel        = "parallel"
	flagProfile         = "profile"
	flagSetting         = "setting"
	settingsKey         = "settings"
	keyDelimiter        = "::"
	environmentPrefix   = "RECIPE_"
	backendCMake        = "cmake"
	backendScript       = "script"
	defaultDirectory    = "recipe"
	settingsEnvironment = environmentPrefix + "SETTINGS_"
)

// config is the resolved orchestrator configuration. Values come from flags, then RECIPE_* environment variables, then
// the profile, then defaults.
type config struct {
	Backend        string
	BuildDir       string
	CMakeGenerator string
	DepsDir        string
	PackagesDir    string
	Parallel       int
	Settings       librecipe.Settings
}

func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(flagBackend, "", "build system to drive, cmake or script (default cmake)")
	flags.String(flagBuildDir, "", "root of the build directories (default $XDG_CACHE_HOME/recipe/build)")
	flags.String(flagCMakeGenerator, "", "CMake generator to configure with")
	flags.String(flagDepsDir, "", "directory holding resolved dependencies as <name>/<version>")
	flags.String(flagPackagesDir, "", "root of the package store (default $XDG_DATA_HOME/recipe/packages)")
	flags.Int(flagParallel, 0, "number of parallel compile jobs")
	flags.String(flagProfile, "", "TOML or YAML profile with a [settings] table")
	flags.StringArrayP(flagSetting, "s", nil, "setting as axis=value, may be repeated")
}

func loadConfig(cmd *cobra.Command) (config, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	v.SetDefault(flagBackend, backendCMake)
	v.SetDefault(flagBuildDir, filepath.Join(xdg.CacheHome, defaultDirectory, "build"))
	v.SetDefault(flagPackagesDir, filepath.Join(xdg.DataHome, defaultDirectory, "packages"))

	for _, name := range []string{flagBackend, flagBuildDir, flagCMakeGenerator, flagDepsDir, flagPackagesDir, flagParallel} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return config{}, fmt.Errorf("unable to bind flag %s\n%w", name, err)
		}
		if err := v.BindEnv(name, environmentVariable(name)); err != nil {
			return config{}, fmt.Errorf("unable to bind environment for %s\n%w", name, err)
		}
	}

	for _, axis := range librecipe.KnownSettings {
		if err := v.BindEnv(settingsKey+keyDelimiter+axis, settingsEnvironment+strings.ToUpper(axis)); err != nil {
			return config{}, fmt.Errorf("unable to bind environment for setting %s\n%w", axis, err)
		}
	}

	profile, err := cmd.Flags().GetString(flagProfile)
	if err != nil {
		return config{}, err
	}
	if profile != "" {
		v.SetConfigFile(profile)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("unable to read profile %s\n%w", profile, err)
		}
	}

	c := config{
		Backend:        v.GetString(flagBackend),
		BuildDir:       v.GetString(flagBuildDir),
		CMakeGenerator: v.GetString(flagCMakeGenerator),
		DepsDir:        v.GetString(flagDepsDir),
		PackagesDir:    v.GetString(flagPackagesDir),
		Parallel:       v.GetInt(flagParallel),
		Settings:       librecipe.Settings{},
	}

	for name, value := range v.GetStringMapString(settingsKey) {
		c.Settings[name] = value
	}
	for _, axis := range librecipe.KnownSettings {
		if value := v.GetString(settingsKey + keyDelimiter + axis); value != "" {
			c.Settings[axis] = value
		}
	}

	assignments, err := cmd.Flags().GetStringArray(flagSetting)
	if err != nil {
		return config{}, err
	}
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return config{}, fmt.Errorf("setting %q must be of the form axis=value", a)
		}
		c.Settings[name] = value
	}

	switch c.Backend {
	case backendCMake, backendScript:
	default:
		return config{}, fmt.Errorf("unsupported backend %q", c.Backend)
	}

	return c, nil
}

func environmentVariable(flag string) string {
	return environmentPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
