package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidGroup is returned for a --group value that is not a list of integers.
var ErrInvalidGroup = errors.New("cli: invalid unknown group")

// parseGroups turns repeated --group values into unknown groups; the i-th
// value lists the offsets whose i-th derivative is unknown. An empty value
// ("" or "[]") is an empty group, so "--group '' --group 0" asks for u'_j only.
func parseGroups(raw []string) ([][]int, error) {
	groups := make([][]int, len(raw))
	for i, s := range raw {
		s = strings.Trim(strings.TrimSpace(s), "[]{}")
		groups[i] = []int{}
		if strings.TrimSpace(s) == "" {
			continue
		}
		for _, field := range strings.Split(s, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("group %d: %q: %w", i, field, ErrInvalidGroup)
			}
			groups[i] = append(groups[i], n)
		}
	}

	return groups, nil
}
