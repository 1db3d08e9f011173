// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package relay implements the per-session message relay between the
// embedded flashcard application and the host platform's record storage.
//
// A [Session] is opened by the host page with the signed-in user's profile
// and session token. The embedded application then attaches a [Channel];
// every frame it sends is handed to the session's [Router] which validates
// it, dispatches it to a handler and posts replies back on the same channel.
// Writes to the user record go through the session's [SaveCoordinator],
// which keeps at most one save in flight and at most one queued behind it.
//
// The [Registry] owns all live sessions and closes idle ones when swept.
package relay
