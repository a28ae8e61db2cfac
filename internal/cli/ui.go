/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"pathtip/internal/ui"
)

func newUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui [label text...]",
		Short: "Open a window with a hoverable chart and its tooltip (needs -tags fyne)",
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := a.style()
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			if text == "" {
				text = "Hover the line: the tooltip follows the cursor and flips near the edges"
			}
			return ui.Run(ui.Options{
				Text:    text,
				Style:   st,
				Offsets: a.cfg.Tooltip.TooltipOffsets(),
				Padding: a.cfg.Tooltip.Padding,
			})
		},
	}
}
