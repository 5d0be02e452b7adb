// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"fmt"
	"strings"
)

const placeholder = "{}"

// Format substitutes each {} in template with the next argument. A
// backslash before {} emits a literal {}. Placeholders without a matching
// argument are kept verbatim and surplus arguments are ignored.
func Format(template string, args ...any) string {
	if len(args) == 0 || !strings.Contains(template, placeholder) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(args))

	next := 0
	for i := 0; i < len(template); {
		if strings.HasPrefix(template[i:], `\`+placeholder) {
			b.WriteString(placeholder)
			i += len(placeholder) + 1
			continue
		}
		if strings.HasPrefix(template[i:], placeholder) {
			if next < len(args) {
				b.WriteString(Stringify(args[next]))
				next++
			} else {
				b.WriteString(placeholder)
			}
			i += len(placeholder)
			continue
		}
		b.WriteByte(template[i])
		i++
	}
	return b.String()
}

// Stringify renders v for a log line. nil renders as "null" and a panic
// raised while formatting v is turned into a marker string.
func Stringify(v any) (s string) {
	if v == nil {
		return "null"
	}
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("<!panic formatting %T: %v>", v, r)
		}
	}()
	return fmt.Sprint(v)
}
