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

// smartPunctuationDashesAndEllipses rewrites runs of ASCII hyphens into em
// and en dashes and "..." into a single ellipsis character. Smart quote
// conversion happens separately in the inline delimiter pass, since it
// depends on flanking context the way emphasis delimiters do.
func smartPunctuationDashesAndEllipses(text string) string {
	if !strings.Contains(text, "--") && !strings.Contains(text, "...") {
		return text
	}
	var buf strings.Builder
	buf.Grow(len(text))
	b := []byte(text)
	n := len(b)
	i := 0
	for i < n {
		switch {
		case b[i] == '-':
			start := i
			for i < n && b[i] == '-' {
				i++
			}
			emitDashes(&buf, i-start)
		case b[i] == '.' && i+2 < n && b[i+1] == '.' && b[i+2] == '.':
			buf.WriteRune('…')
			i += 3
		default:
			start := i
			i++
			for i < n && !isUTF8CharBoundary(b[i]) {
				i++
			}
			buf.Write(b[start:i])
		}
	}
	return buf.String()
}

// emitDashes converts count consecutive hyphens into em dashes (—) and en
// dashes (–), preferring em dashes and using the fewest en dashes needed.
func emitDashes(buf *strings.Builder, count int) {
	if count == 1 {
		buf.WriteByte('-')
		return
	}
	var em, en int
	switch count % 3 {
	case 0:
		em, en = count/3, 0
	case 2:
		em, en = count/3, 1
	default: // 1
		if count >= 4 {
			em, en = count/3-1, 2
		} else {
			em, en = 0, count/2
		}
	}
	for i := 0; i < em; i++ {
		buf.WriteRune('—')
	}
	for i := 0; i < en; i++ {
		buf.WriteRune('–')
	}
}

func isUTF8CharBoundary(b byte) bool {
	return int8(b) >= -0x40
}
