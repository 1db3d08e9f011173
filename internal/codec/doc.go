// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec normalises data read from the host platform's record storage
// and received from the embedded application.
//
// Every function in this package is total: malformed input is recovered into
// an empty value instead of being reported as an error, because stored record
// fields are frequently hand-edited, double-encoded or HTML-wrapped by the
// host platform.
package codec
