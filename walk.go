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

// WalkOptions configures [Walk]. Pre is called before a node's children are
// visited; Post is called after. Either may be nil. Returning false from
// Pre skips the node's children (Post is still called, if set).
type WalkOptions struct {
	Pre  func(n Node) bool
	Post func(n Node)
}

// Walk traverses the tree rooted at root in document order, calling
// opts.Pre and opts.Post around each node's children.
func Walk(root Node, opts *WalkOptions) {
	if opts == nil {
		return
	}
	var visit func(Node)
	visit = func(n Node) {
		descend := true
		if opts.Pre != nil {
			descend = opts.Pre(n)
		}
		if descend {
			for _, c := range n.Children() {
				visit(c)
			}
		}
		if opts.Post != nil {
			opts.Post(n)
		}
	}
	visit(root)
}
