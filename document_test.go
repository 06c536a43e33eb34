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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tonitrnel/gomark/internal/normhtml"
)

func renderToHTML(t *testing.T, source string, opts Options) string {
	t.Helper()
	doc, err := Parse([]byte(source), opts)
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}
	buf := new(bytes.Buffer)
	if err := RenderHTML(buf, doc); err != nil {
		t.Fatalf("RenderHTML(%q): %v", source, err)
	}
	return buf.String()
}

// checkRender renders source under opts and compares it to want, ignoring
// insignificant whitespace and attribute-order differences the same way the
// test suite this package was built from does.
func checkRender(t *testing.T, source, want string, opts Options) {
	t.Helper()
	got := renderToHTML(t, source, opts)
	gotNorm := string(normhtml.NormalizeHTML([]byte(got)))
	wantNorm := string(normhtml.NormalizeHTML([]byte(want)))
	if diff := cmp.Diff(wantNorm, gotNorm); diff != "" {
		t.Errorf("render(%q) mismatch (-want +got):\n%s\nfull output: %s", source, diff, got)
	}
}

func TestParseRenderCommonMarkCore(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "paragraph",
			source: "hello world\n",
			want:   "<p>hello world</p>",
		},
		{
			name:   "atx heading",
			source: "## Title\n",
			want:   `<h2 id="title">Title</h2>`,
		},
		{
			name:   "emphasis and strong",
			source: "*a* **b**\n",
			want:   "<p><em>a</em> <strong>b</strong></p>",
		},
		{
			name:   "thematic break",
			source: "---\n",
			want:   "<hr>",
		},
		{
			name:   "fenced code block",
			source: "```go\nfmt.Println(1)\n```\n",
			want:   "<pre><code class=\"language-go\">fmt.Println(1)\n</code></pre>",
		},
		{
			name:   "inline code span",
			source: "run `go test` now\n",
			want:   "<p>run <code>go test</code> now</p>",
		},
		{
			name:   "block quote",
			source: "> quoted\n",
			want:   "<blockquote><p>quoted</p></blockquote>",
		},
		{
			name:   "tight bullet list",
			source: "- a\n- b\n",
			want:   "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name:   "hard line break",
			source: "a\\\nb\n",
			want:   "<p>a<br>b</p>",
		},
		{
			name:   "link with title",
			source: "[text](/url \"title\")\n",
			want:   `<p><a href="/url" title="title">text</a></p>`,
		},
		{
			name:   "link reference definition",
			source: "[text][lbl]\n\n[lbl]: /url\n",
			want:   `<p><a href="/url">text</a></p>`,
		},
		{
			name:   "image alt text from nested inlines",
			source: "![an *emph* alt](/img.png)\n",
			want:   `<p><img src="/img.png" alt="an emph alt"></p>`,
		},
		{
			name:   "entity reference",
			source: "a &amp; b\n",
			want:   "<p>a &amp; b</p>",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			checkRender(t, test.source, test.want, Options{})
		})
	}
}

func TestParseRenderGFM(t *testing.T) {
	opts := NewOptions(WithGithubFlavored())
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "strikethrough",
			source: "~~gone~~\n",
			want:   "<p><del>gone</del></p>",
		},
		{
			name:   "task list",
			source: "- [x] done\n- [ ] todo\n",
			want: `<ul>` +
				`<li class="task-list-item"><input type="checkbox" checked disabled> done</li>` +
				`<li class="task-list-item"><input type="checkbox" disabled> todo</li>` +
				`</ul>`,
		},
		{
			name:   "table",
			source: "| a | b |\n| - | - |\n| 1 | 2 |\n",
			want: "<table><thead><tr><th>a</th><th>b</th></tr></thead>" +
				"<tbody><tr><td>1</td><td>2</td></tr></tbody></table>",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			checkRender(t, test.source, test.want, opts)
		})
	}
}

func TestParseRenderObsidian(t *testing.T) {
	opts := NewOptions(WithObsidianFlavored())
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "wikilink",
			source: "[[Some Page]]\n",
			want:   `<p><a class="internal-link" href="Some%20Page">Some Page</a></p>`,
		},
		{
			name:   "wikilink with display text",
			source: "[[Some Page|shown]]\n",
			want:   `<p><a class="internal-link" href="Some%20Page">shown</a></p>`,
		},
		{
			name:   "highlighting",
			source: "==marked==\n",
			want:   "<p><mark>marked</mark></p>",
		},
		{
			name:   "tag",
			source: "#project/todo stuff\n",
			want:   `<p><a class="tag" href="#project/todo">#project/todo</a> stuff</p>`,
		},
		{
			name:   "emoji shortcode",
			source: ":fire: hot\n",
			want:   "<p>🔥 hot</p>",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			checkRender(t, test.source, test.want, opts)
		})
	}
}

func TestParseResourceLimits(t *testing.T) {
	_, err := Parse([]byte("hello world\n"), NewOptions(WithMaxInputBytes(4)))
	if err == nil {
		t.Fatal("Parse with a 4-byte ceiling on an 11-byte input succeeded, want error")
	}
}
