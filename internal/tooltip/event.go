/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tooltip

import (
	"fmt"
	"strings"
)

// EventKind enumerates the hover notifications a host delivers.
type EventKind uint8

const (
	Enter EventKind = iota + 1
	Move
	Leave
)

func (k EventKind) String() string {
	switch k {
	case Enter:
		return "enter"
	case Move:
		return "move"
	case Leave:
		return "leave"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// ParseEventKind accepts enter|move|leave and the DOM aliases mouseover/mousemove/mouseleave.
func ParseEventKind(s string) (EventKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enter", "mouseover", "mouseenter":
		return Enter, nil
	case "move", "mousemove":
		return Move, nil
	case "leave", "mouseleave", "mouseout":
		return Leave, nil
	}
	return 0, fmt.Errorf("unknown pointer event %q", s)
}

// PointerEvent is a hover notification in the host's coordinate space, which
// must match the space ContainerBounds reports in.
type PointerEvent struct {
	Kind EventKind
	X, Y float32
}
