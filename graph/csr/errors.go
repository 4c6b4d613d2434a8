// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csr

import "errors"

// ErrInvalidInput is returned when an edge list cannot be turned into a
// graph because it holds no edges.
var ErrInvalidInput = errors.New("csr: invalid input")
