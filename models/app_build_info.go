// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// UnknownBuildValue stands in for build metadata the linker did not inject.
const UnknownBuildValue = "N/A"

// AppBuildInfo is the build metadata of the relay binary, injected with
// -ldflags "-X main.buildVersion=..." and reported by /health, /api/version
// and the startup banner.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo keeps the values as given. Empty date and commit are
// reported as [UnknownBuildValue]; an empty version is left empty so that
// callers can reject an unversioned build.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.version
}

func (a AppBuildInfo) BuildDate() string {
	return orUnknown(a.date)
}

func (a AppBuildInfo) BuildCommit() string {
	return orUnknown(a.commit)
}

// String renders the banner line, e.g. "1.4.0 (commit 9f2c1e0, built 2026-10-01)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", orUnknown(a.version), a.BuildCommit(), a.BuildDate())
}

func orUnknown(s string) string {
	if s == "" {
		return UnknownBuildValue
	}
	return s
}
