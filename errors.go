/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package caseid

import (
	"errors"

	"dirpx.dev/caseid/apis"
)

var (
	// ErrUnsupportedFieldType is matched by every error caused by a field
	// value that has no textual rendering (channels, funcs, unsafe pointers).
	ErrUnsupportedFieldType = apis.ErrUnsupportedFieldType
	// ErrMaxDepthExceeded is returned for records nested deeper than
	// Config.MaxDepth, which in practice means a pointer cycle.
	ErrMaxDepthExceeded = apis.ErrMaxDepthExceeded
	// ErrDuplicateID is returned by Prepare when two cases resolve to the
	// same name.
	ErrDuplicateID = errors.New("caseid: duplicate case id")
	// ErrNilCase is returned by Prepare for a nil *Case in the input.
	ErrNilCase = errors.New("caseid: nil case")
	// ErrNotRecord is returned by Fields for a wrapped value that is neither
	// a struct nor an apis.Record.
	ErrNotRecord = errors.New("caseid: value is not a record")
)

// UnsupportedFieldTypeError names the record, field path and Go type that
// could not be rendered.
type UnsupportedFieldTypeError = apis.UnsupportedFieldTypeError
