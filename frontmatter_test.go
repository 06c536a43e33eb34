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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractFrontMatter(t *testing.T) {
	source := "---\ntitle: Hello\ntags:\n  - a\n  - b\n---\n\nbody text\n"
	doc, err := Parse([]byte(source), NewOptions(WithObsidianFlavored()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := map[string]any{
		"title": "Hello",
		"tags":  []any{"a", "b"},
	}
	if diff := cmp.Diff(want, doc.FrontMatter); diff != "" {
		t.Errorf("FrontMatter mismatch (-want +got):\n%s", diff)
	}

	// The front matter block is unlinked: the root's only remaining
	// child is the paragraph that follows it.
	root := doc.Root()
	if n := root.ChildCount(); n != 1 {
		t.Fatalf("root has %d children, want 1", n)
	}
	if kind := root.Children()[0].Kind(); kind != ParagraphKind {
		t.Errorf("remaining child kind = %v, want %v", kind, ParagraphKind)
	}
}

func TestFrontMatterNotAtDocStart(t *testing.T) {
	source := "text first\n\n---\nnot: frontmatter\n---\n"
	doc, err := Parse([]byte(source), NewOptions(WithObsidianFlavored()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.FrontMatter != nil {
		t.Errorf("FrontMatter = %v, want nil when the fence isn't the first line", doc.FrontMatter)
	}
}

func TestCJKNounsFromFrontmatter(t *testing.T) {
	source := "---\nnouns:\n  - 用iPhone\n---\n\n我用iPhone拍照\n"
	opts := NewOptions(WithObsidianFlavored(), WithCJKAutocorrect(), WithCJKNounsFromFrontmatter("nouns"))
	doc, err := Parse([]byte(source), opts)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"用iPhone"}
	if diff := cmp.Diff(want, doc.cjkNouns); diff != "" {
		t.Errorf("cjkNouns mismatch (-want +got):\n%s", diff)
	}
}
