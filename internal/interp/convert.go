package interp

import (
	"strconv"

	"github.com/jcorbin/sof/internal/langerr"
)

func parseConvertInt(s string) (int64, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, langerr.Mathf("cannot convert %q to int", s)
	}
	return i, nil
}

func parseConvertFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, langerr.Mathf("cannot convert %q to float", s)
	}
	return f, nil
}
