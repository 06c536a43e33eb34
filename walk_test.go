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

func TestWalkVisitsInDocumentOrder(t *testing.T) {
	doc, err := Parse([]byte("# Title\n\na *b* c\n"), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var kinds []NodeKind
	Walk(doc.Root(), &WalkOptions{
		Pre: func(n Node) bool {
			kinds = append(kinds, n.Kind())
			return true
		},
	})
	want := []NodeKind{
		DocumentKind,
		HeadingKind, TextKind,
		ParagraphKind, TextKind, EmphasisKind, TextKind, TextKind,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("visited kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkPreFalseSkipsChildrenButStillCallsPost(t *testing.T) {
	doc, err := Parse([]byte("a *b* c\n"), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var preKinds, postKinds []NodeKind
	Walk(doc.Root(), &WalkOptions{
		Pre: func(n Node) bool {
			preKinds = append(preKinds, n.Kind())
			return n.Kind() != EmphasisKind
		},
		Post: func(n Node) {
			postKinds = append(postKinds, n.Kind())
		},
	})
	// Document, Paragraph, Text("a "), Emphasis, Text(" c"): emphasis's own
	// child (the Text("b") inside it) is skipped since Pre returned false.
	want := []NodeKind{DocumentKind, ParagraphKind, TextKind, EmphasisKind, TextKind}
	if diff := cmp.Diff(want, preKinds); diff != "" {
		t.Errorf("Pre-visited kinds mismatch (-want +got):\n%s", diff)
	}
	if len(postKinds) != len(preKinds) {
		t.Errorf("Post called %d times, Pre called %d times; want equal", len(postKinds), len(preKinds))
	}
}
