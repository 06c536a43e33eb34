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

func TestNormalizeReferenceLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{name: "already normal", label: "FOO", want: "FOO"},
		{name: "case folds", label: "Foo BAR", want: "FOO BAR"},
		{name: "collapses internal whitespace", label: "foo   \t  bar", want: "FOO BAR"},
		{name: "trims surrounding whitespace", label: "  foo  ", want: "FOO"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := NormalizeReferenceLabel(test.label)
			if got != test.want {
				t.Errorf("NormalizeReferenceLabel(%q) = %q, want %q", test.label, got, test.want)
			}
		})
	}
}

func TestParseLeadingLinkReference(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantOK    bool
		wantLabel string
		wantDest  string
		wantTitle string
		wantTitleOK bool
		wantRest  string
	}{
		{
			name:      "bare destination",
			text:      "[foo]: /url",
			wantOK:    true,
			wantLabel: "foo",
			wantDest:  "/url",
			wantRest:  "",
		},
		{
			name:        "destination with title",
			text:        "[foo]: /url \"a title\"",
			wantOK:      true,
			wantLabel:   "foo",
			wantDest:    "/url",
			wantTitle:   "a title",
			wantTitleOK: true,
			wantRest:    "",
		},
		{
			name:      "angle-bracketed destination",
			text:      "[foo]: <my url>\nrest of paragraph",
			wantOK:    true,
			wantLabel: "foo",
			wantDest:  "my url",
			wantRest:  "rest of paragraph",
		},
		{
			name:   "not a definition",
			text:   "just a paragraph",
			wantOK: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			label, dest, title, titleOK, rest, ok := parseLeadingLinkReference(test.text)
			if ok != test.wantOK {
				t.Fatalf("ok = %v, want %v", ok, test.wantOK)
			}
			if !ok {
				return
			}
			if label != test.wantLabel {
				t.Errorf("label = %q, want %q", label, test.wantLabel)
			}
			if dest != test.wantDest {
				t.Errorf("dest = %q, want %q", dest, test.wantDest)
			}
			if title != test.wantTitle {
				t.Errorf("title = %q, want %q", title, test.wantTitle)
			}
			if titleOK != test.wantTitleOK {
				t.Errorf("titleOK = %v, want %v", titleOK, test.wantTitleOK)
			}
			if rest != test.wantRest {
				t.Errorf("rest = %q, want %q", rest, test.wantRest)
			}
		})
	}
}
