// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package sequence

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// EmptyFormat is the rendering of a sequence with no elements.
const EmptyFormat = "<empty list>"

// Format renders elements as "[e0,e1,...,en]", each element formatted with
// [fmt.Sprint]. It returns [EmptyFormat] when elements yields nothing.
func Format[E any](elements iter.Seq[E]) string {
	var sb strings.Builder
	for e := range elements {
		if sb.Len() == 0 {
			sb.WriteByte('[')
		} else {
			sb.WriteByte(',')
		}
		fmt.Fprint(&sb, e)
	}
	if sb.Len() == 0 {
		return EmptyFormat
	}
	sb.WriteByte(']')
	return sb.String()
}

// Print writes the [Format] rendering of elements to w.
func Print[E any](w io.Writer, elements iter.Seq[E]) error {
	_, err := io.WriteString(w, Format(elements))
	return err
}
