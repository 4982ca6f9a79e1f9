// Copyright The Effectunify Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when stdout is not attached to a terminal (e.g. when
// output is piped or redirected).
const DefaultWidth = 80

// IsTerminal checks whether standard output is attached to an interactive
// terminal, as opposed to (say) a file or pipe.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Width determines the current width of the terminal attached to standard
// output, or returns DefaultWidth when no terminal is attached.
func Width() uint {
	if !IsTerminal() {
		return DefaultWidth
	}

	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}

	return uint(w)
}
