package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Compare orders two semantic versions of the form [v]MAJOR.MINOR.PATCH.
// It returns -1, 0 or 1 like cmp.Compare.
func Compare(a, b string) (int, error) {
	left, err := segments(a)
	if err != nil {
		return 0, err
	}

	right, err := segments(b)
	if err != nil {
		return 0, err
	}

	for i := range left {
		if c := cmp.Compare(left[i], right[i]); c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

func segments(version string) ([3]int, error) {
	var out [3]int

	parts := strings.SplitN(strings.TrimPrefix(version, "v"), ".", 3)
	if len(parts) != 3 {
		return out, fmt.Errorf("malformed version %q", version)
	}

	for i, part := range parts {
		// tolerate build suffixes such as 1.2.3-rc1
		if j := strings.IndexAny(part, "-+"); i == 2 && j >= 0 {
			part = part[:j]
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return out, fmt.Errorf("malformed version %q", version)
		}
		out[i] = n
	}
	return out, nil
}
