// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package browse holds the browsing state of the notes UI.
//
// [Navigator] is the bare state machine: a Home view with no folder
// selected, a Folder view showing one folder's notes, and an optional
// editor or viewer overlay on top of either. [Manager] adds the admin
// mutations on top of it and [PublicViewer] exposes the read-only subset
// plus the way out to the login prompt.
package browse
