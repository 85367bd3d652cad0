package templates

import "strconv"

//go:generate templ generate

func rowNumber(i int) string {
	return strconv.Itoa(i + 1)
}

func quantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// nonEmpty drops blank lines so optional contact fields render no empty
// paragraphs.
func nonEmpty(lines ...string) []string {
	out := lines[:0:0]
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

func labelled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}

func joinParts(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " | " + b
}
