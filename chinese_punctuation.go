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

import "strings"

// isCJKIdeographOnly is isCJKIdeograph without the kana phonetic-extension
// block, matching the narrower ideograph-only definition punctuation
// normalization uses to decide when CJK context begins.
func isCJKIdeographOnly(r rune) bool {
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
		r >= 0x30A0 && r <= 0x30FF:
		return true
	}
	return false
}

var halfwidthToFullwidth = map[rune]rune{
	',': '，', '.': '。', '!': '！', '?': '？',
	':': '：', ';': '；', '(': '（', ')': '）',
}

func isConvertibleHalfwidthPunct(r rune) bool {
	_, ok := halfwidthToFullwidth[r]
	return ok
}

func isFullwidthPunct(r rune) bool {
	switch r {
	case '，', '。', '！', '？', '：', '；', '（', '）',
		'、', '《', '》', '「', '」', '『', '』':
		return true
	}
	return false
}

func isSentenceEndFullwidth(r rune) bool {
	return r == '。' || r == '！' || r == '？'
}

// needsChinesePunctuationNormalization cheaply scans for either a repeated
// fullwidth punctuation run or a convertible halfwidth punctuation mark
// following CJK text, without building any output.
func needsChinesePunctuationNormalization(text string) bool {
	hasCJK := false
	prevFullwidth := rune(-1)
	for _, r := range text {
		if isFullwidthPunct(r) {
			if prevFullwidth == r {
				return true
			}
			prevFullwidth = r
			continue
		}
		prevFullwidth = -1
		if isCJKIdeographOnly(r) {
			hasCJK = true
		}
		if hasCJK && isConvertibleHalfwidthPunct(r) {
			return true
		}
	}
	return false
}

// normalizeChinesePunctuation converts ASCII punctuation to its fullwidth
// equivalent once CJK ideograph text has been seen, and collapses runs of
// a repeated fullwidth punctuation mark to a single occurrence. CJK
// context persists across intervening ASCII text and only resets at a
// sentence-ending fullwidth mark (。！？).
func normalizeChinesePunctuation(text string) string {
	if !needsChinesePunctuationNormalization(text) {
		return text
	}
	runes := []rune(text)
	var buf strings.Builder
	buf.Grow(len(text))
	inCJKContext := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if isCJKIdeographOnly(r) {
			inCJKContext = true
			buf.WriteRune(r)
			continue
		}
		if isFullwidthPunct(r) {
			buf.WriteRune(r)
			for i+1 < len(runes) && runes[i+1] == r {
				i++
			}
			if isSentenceEndFullwidth(r) {
				inCJKContext = false
			}
			continue
		}
		if inCJKContext {
			if fw, ok := halfwidthToFullwidth[r]; ok {
				buf.WriteRune(fw)
				for i+1 < len(runes) && (runes[i+1] == r || halfwidthToFullwidth[runes[i+1]] == fw) {
					i++
				}
				if isSentenceEndFullwidth(fw) {
					resetsContext := true
					if i+1 < len(runes) {
						next := runes[i+1]
						if isConvertibleHalfwidthPunct(next) || isFullwidthPunct(next) {
							resetsContext = false
						}
					}
					if resetsContext {
						inCJKContext = false
					}
				}
				continue
			}
		}
		buf.WriteRune(r)
	}
	return buf.String()
}
