// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package astcmp

// Options controls how sources are normalized before they are compared.
//
// A nil *Options is valid everywhere one is accepted and means the zero
// value: comments are not part of the comparison.
type Options struct {
	// Comments makes comment text significant.
	//
	// When false, all comments are removed during normalization and two
	// sources differing only in comments compare equal. When true, the
	// comment text attached to each node must match; comment placement
	// relative to surrounding whitespace still does not matter.
	Comments bool
}

func (o *Options) comments() bool {
	return o != nil && o.Comments
}
