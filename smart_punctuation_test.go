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

import "testing"

func TestSmartPunctuationDashesAndEllipses(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "no dashes or ellipses", text: "plain text", want: "plain text"},
		{name: "single hyphen untouched", text: "well-known", want: "well-known"},
		{name: "double hyphen becomes en dash", text: "pages 1--2", want: "pages 1–2"},
		{name: "triple hyphen becomes em dash", text: "a---b", want: "a—b"},
		{name: "four hyphens becomes two en dashes", text: "a----b", want: "a––b"},
		{name: "five hyphens becomes em plus en", text: "a-----b", want: "a—–b"},
		{name: "six hyphens becomes two em dashes", text: "a------b", want: "a——b"},
		{name: "ellipsis", text: "wait...", want: "wait…"},
		{name: "dash and ellipsis together", text: "a--b...", want: "a–b…"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := smartPunctuationDashesAndEllipses(test.text)
			if got != test.want {
				t.Errorf("smartPunctuationDashesAndEllipses(%q) = %q, want %q", test.text, got, test.want)
			}
		})
	}
}
