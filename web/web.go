// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package web embeds the static frontend shell.
package web

import "embed"

// IndexFile is the name of the shell page inside FS.
const IndexFile = "index.html"

//go:embed index.html
var FS embed.FS
