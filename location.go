// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package gomark

import "fmt"

// Location is a 1-based line/column position in a source document.
// Column counts Unicode scalar values, not bytes.
type Location struct {
	Line   int64
	Column int64
}

// IsValid reports whether loc refers to an actual position, as opposed to
// the zero [Location].
func (loc Location) IsValid() bool {
	return loc.Line > 0 && loc.Column > 0
}

func (loc Location) String() string {
	return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
}

// Range is a half-open [Start, End) span of source locations.
type Range struct {
	Start Location
	End   Location
}

// IsValid reports whether r's endpoints are both valid and ordered.
func (r Range) IsValid() bool {
	if !r.Start.IsValid() || !r.End.IsValid() {
		return false
	}
	if r.Start.Line != r.End.Line {
		return r.Start.Line < r.End.Line
	}
	return r.Start.Column <= r.End.Column
}

func (r Range) String() string {
	return fmt.Sprintf("%v-%v", r.Start, r.End)
}

// nullRange is returned by operations that have no meaningful source range.
var nullRange = Range{}
