// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package severity defines the ordered severity levels of script log
// messages and their mapping onto the host logging backends.
package severity
