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
	"sort"
	"strings"
	"unicode"
)

// isCJKIdeograph reports whether r falls in one of the CJK ideograph or
// kana blocks that participate in spacing correction. Punctuation and
// fullwidth symbol blocks are deliberately excluded: only ideographs and
// kana trigger a space against adjacent ASCII alphanumerics.
func isCJKIdeograph(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF,
		r >= 0x3400 && r <= 0x4DBF,
		r >= 0xF900 && r <= 0xFAFF,
		r >= 0x20000 && r <= 0x2A6DF,
		r >= 0x2A700 && r <= 0x2B73F,
		r >= 0x2B740 && r <= 0x2B81F,
		r >= 0x2B820 && r <= 0x2CEAF,
		r >= 0x2CEB0 && r <= 0x2EBEF,
		r >= 0x30000 && r <= 0x3134F,
		r >= 0x3040 && r <= 0x309F,
		r >= 0x30A0 && r <= 0x30FF,
		r >= 0x31F0 && r <= 0x31FF:
		return true
	}
	return false
}

// isCJKPunctOrSymbol reports whether r is a CJK punctuation or fullwidth
// symbol. Spacing correction does not insert spaces around these.
func isCJKPunctOrSymbol(r rune) bool {
	switch {
	case r >= 0x3000 && r <= 0x303F,
		r >= 0xFF00 && r <= 0xFFEF,
		r >= 0xFE30 && r <= 0xFE4F:
		return true
	}
	return false
}

// isCJK reports whether r is any CJK ideograph, kana, punctuation, or
// fullwidth symbol.
func isCJK(r rune) bool {
	return isCJKIdeograph(r) || isCJKPunctOrSymbol(r)
}

func isASCIIAlnum(r rune) bool {
	return r < 0x80 && (unicode.IsDigit(r) || unicode.IsLetter(r))
}

// correctCJKSpacing inserts an ASCII space at every boundary between a CJK
// ideograph and an ASCII letter or digit, skipping boundaries that fall
// within one of the literal nouns. It is a single O(n) scan over text that
// only allocates a new string when a space was actually inserted.
func correctCJKSpacing(text string, nouns []string) string {
	if text == "" {
		return text
	}
	type span struct{ start, end int }
	var skip []span
	for _, noun := range nouns {
		if noun == "" {
			continue
		}
		from := 0
		for {
			rel := strings.Index(text[from:], noun)
			if rel < 0 {
				break
			}
			start := from + rel
			end := start + len(noun)
			skip = append(skip, span{start, end})
			from = end
		}
	}
	sort.Slice(skip, func(i, j int) bool { return skip[i].start < skip[j].start })
	inSkipRange := func(pos int) bool {
		for _, s := range skip {
			if pos >= s.start && pos <= s.end {
				return true
			}
		}
		return false
	}

	var buf strings.Builder
	lastCopied := 0
	wrote := false
	runes := []struct {
		offset int
		r      rune
	}{}
	for i, r := range text {
		runes = append(runes, struct {
			offset int
			r      rune
		}{i, r})
	}
	for i := 0; i+1 < len(runes); i++ {
		cur, next := runes[i].r, runes[i+1].r
		needSpace := (isCJKIdeograph(cur) && isASCIIAlnum(next)) || (isASCIIAlnum(cur) && isCJKIdeograph(next))
		if needSpace && !inSkipRange(runes[i+1].offset) {
			if !wrote {
				buf.Grow(len(text) + 16)
				wrote = true
			}
			buf.WriteString(text[lastCopied:runes[i+1].offset])
			buf.WriteByte(' ')
			lastCopied = runes[i+1].offset
		}
	}
	if !wrote {
		return text
	}
	buf.WriteString(text[lastCopied:])
	return buf.String()
}
