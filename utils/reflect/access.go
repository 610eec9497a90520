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

package reflect

import (
	"reflect"
	"unsafe"
)

// Accessible returns a view of v whose value can be read with Interface(),
// including values reached through unexported struct fields.
//
// Non-addressable structs and arrays are first copied into fresh storage so
// that their fields and elements become addressable. Addressable values that
// are read-only because of an unexported field are re-exposed through
// reflect.NewAt. The returned value must be treated as read-only.
func Accessible(v reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}
	if !v.CanAddr() && v.CanInterface() {
		switch v.Kind() {
		case reflect.Struct, reflect.Array:
			cp := reflect.New(v.Type()).Elem()
			cp.Set(v)
			v = cp
		}
	}
	if v.CanAddr() && !v.CanInterface() {
		v = reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
	}
	return v
}

// Interface is v.Interface() for values that went through Accessible, and
// nil for invalid or still unreadable values.
func Interface(v reflect.Value) any {
	v = Accessible(v)
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}
