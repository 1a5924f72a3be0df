/*
Copyright 2026 The Strand Authors.

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

package charset

import (
	"golang.org/x/text/encoding/charmap"
)

func init() {
	Register(Charset_utf8{}, "utf8", "utf8mb4")
	Register(Charset_utf16be{}, "utf16", "utf16be")
	Register(Charset_latin1{}, "latin1", "iso-8859-1", "iso8859-1", "l1")
	Register(Charset_ascii{}, "us-ascii", "646")
	Register(Charset_binary{}, "raw")

	Register(NewCharmap("windows-1252", charmap.Windows1252), "cp1252")
	Register(NewCharmap("iso-8859-2", charmap.ISO8859_2), "latin2", "l2")
	Register(NewCharmap("koi8-r", charmap.KOI8R))
}
