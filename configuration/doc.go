// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and os.getenv to extract environment supplied items.  The file must
// return a single table which is mapped onto a struct using the
// "gluamapper" field tags.
//
// Caller supplied variables are visible to the script as globals so a
// single file can serve several data directories, e.g.
//
//   local data = data_directory or "."
//   return { data_directory = data, ... }
package configuration
