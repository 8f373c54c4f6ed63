package domain

import (
	"cmp"
	"slices"
	"strings"
)

// SortNames orders entry names in place. Lexical order compares bytes, so
// the result never depends on the order the filesystem reported.
func SortNames(names []string, order SortOrder) {
	if order == SortNatural {
		slices.SortFunc(names, naturalCompare)
		return
	}
	slices.Sort(names)
}

// naturalCompare orders digit runs by numeric value and everything else
// case-insensitively, so "file_2" < "file_10". Names equal under those rules
// fall back to byte order to keep the result total.
func naturalCompare(a, b string) int {
	la, lb := strings.ToLower(a), strings.ToLower(b)

	i, j := 0, 0
	for i < len(la) && j < len(lb) {
		if isDigit(la[i]) && isDigit(lb[j]) {
			ei, ej := digitRunEnd(la, i), digitRunEnd(lb, j)
			if c := compareDigits(la[i:ei], lb[j:ej]); c != 0 {
				return c
			}
			i, j = ei, ej
			continue
		}
		if la[i] != lb[j] {
			return cmp.Compare(la[i], lb[j])
		}
		i++
		j++
	}
	if c := cmp.Compare(len(la)-i, len(lb)-j); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// compareDigits compares two digit runs numerically without overflowing.
// Equal values with more leading zeros sort later ("1" < "01").
func compareDigits(a, b string) int {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(ta), len(tb)); c != 0 {
		return c
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	return cmp.Compare(len(a), len(b))
}

func digitRunEnd(s string, start int) int {
	for start < len(s) && isDigit(s[start]) {
		start++
	}
	return start
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
