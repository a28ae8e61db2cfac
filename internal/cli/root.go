/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package cli implements the pathtip command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pathtip/internal/config"
	applog "pathtip/internal/log"
	"pathtip/internal/textlayout"
	"pathtip/internal/tooltip"
	"pathtip/internal/version"
)

// app carries state shared by all subcommands once the root pre-run has loaded
// the configuration.
type app struct {
	cfgPath string
	verbose bool
	cfg     config.AppConfig
	log     *slog.Logger
	fonts   textlayout.Provider
}

// style returns the configured tooltip style.
func (a *app) style() (tooltip.Style, error) { return a.cfg.Tooltip.Style() }

// provider resolves label fonts: the Go fonts plus the configured font file.
func (a *app) provider() (textlayout.Provider, error) {
	if a.fonts == nil {
		lib, err := a.cfg.Tooltip.FontLibrary()
		if err != nil {
			return nil, err
		}
		a.fonts = textlayout.OTProvider{Lib: lib}
	}
	return a.fonts, nil
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// NewRootCmd builds the command tree. Tests call it with SetArgs and SetOut.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "pathtip",
		Short:         "Place and lay out hover tooltips for chart shapes",
		Long:          `pathtip computes where a tooltip callout and its pointer go for a cursor inside a container, wraps the label text, and replays or renders recorded hover sessions.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate("pathtip {{.Version}}\n")
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default: per-user config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newPlaceCmd(a))
	root.AddCommand(newWrapCmd(a))
	root.AddCommand(newReplayCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newUICmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.cfgPath != "" {
		a.cfg, err = config.LoadFile(a.cfgPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts := a.cfg.Logging.Options()
	opts.Writer = cmd.ErrOrStderr()
	applog.Init(opts)
	if a.verbose {
		applog.SetLevel(slog.LevelDebug)
	}
	a.log = applog.WithOperation(applog.WithComponent("cli"), cmd.Name())
	a.log.Debug("config loaded", slog.String("path", a.cfgPath))
	return nil
}
