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

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/braintwister/librecipe/log"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "recipe",
		Short: "Build, test and package header-only library recipes",
		Long: `recipe drives a package recipe through its lifecycle: sources are exported,
build files generated, the test suite configured, compiled and run, and the
headers collected into a package identified independently of compiler and
build type.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	addConfigFlags(root)

	root.AddCommand(
		newCreateCommand(),
		newBuildCommand(),
		newPackageCommand(),
		newPackageIDCommand(),
		newInspectCommand(),
	)

	return root
}

func prepare(cmd *cobra.Command, args []string) (workspace, error) {
	c, err := loadConfig(cmd)
	if err != nil {
		return workspace{}, err
	}

	logger := log.New(cmd.OutOrStdout())
	logger.Debugf("Configuration: %+v", c)

	return newWorkspace(args[0], c, logger)
}

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <recipe-dir>",
		Short: "Export, build, test and package a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := prepare(cmd, args)
			if err != nil {
				return err
			}

			build := w.buildContext()
			if err := w.export(build); err != nil {
				return err
			}

			if err := w.build(cmd.Context(), build); err != nil {
				return err
			}

			m, err := w.pack(build)
			if err != nil {
				return err
			}

			w.logger.Infof("Created %s/%s:%s", m.Name, m.Version, m.ID)
			return nil
		},
	}
}

func newBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build <recipe-dir>",
		Short: "Export and build a recipe, running its tests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := prepare(cmd, args)
			if err != nil {
				return err
			}

			build := w.buildContext()
			if err := w.export(build); err != nil {
				return err
			}

			return w.build(cmd.Context(), build)
		},
	}
}

func newPackageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "package <recipe-dir>",
		Short: "Package the headers of a previously built recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := prepare(cmd, args)
			if err != nil {
				return err
			}

			m, err := w.pack(w.buildContext())
			if err != nil {
				return err
			}

			w.logger.Infof("Packaged %s/%s:%s", m.Name, m.Version, m.ID)
			return nil
		},
	}
}

func newPackageIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "package-id <recipe-dir>",
		Short: "Print the package identity for the configured settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := prepare(cmd, args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), w.packageID())
			return err
		},
	}
}

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <recipe-dir>",
		Short: "Print the validated recipe metadata as TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := prepare(cmd, args)
			if err != nil {
				return err
			}

			return toml.NewEncoder(cmd.OutOrStdout()).Encode(w.recipe.Recipe())
		},
	}
}
