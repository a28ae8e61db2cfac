/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"pathtip/internal/textlayout"
)

func newWrapCmd(a *app) *cobra.Command {
	var (
		fontSize float32
		maxChars int
	)
	cmd := &cobra.Command{
		Use:   "wrap [text...]",
		Short: "Wrap label text the way the tooltip does",
		Long:  `Wrap splits text at the last space within the line budget. The budget shrinks by one character per point of font size above 11; --max overrides it.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("font-size") {
				fontSize = a.cfg.Tooltip.FontSize
			}
			budget := textlayout.LineBudget(fontSize)
			if maxChars > 0 {
				budget = maxChars
			}
			lines := textlayout.Wrap(strings.Join(args, " "), budget)
			a.log.Debug("wrapped", slog.Int("budget", budget), slog.Int("lines", len(lines)))
			for _, ln := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), ln)
			}
			return nil
		},
	}
	cmd.Flags().Float32Var(&fontSize, "font-size", 12, "font size in px; sets the line budget")
	cmd.Flags().IntVar(&maxChars, "max", 0, "explicit line budget in characters")
	return cmd
}
