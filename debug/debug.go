package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Normalize bool
	Merge     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("UNITYFLOW_DEBUG_PARSE")
	d.Normalize = boolEnv("UNITYFLOW_DEBUG_NORMALIZE")
	d.Merge = boolEnv("UNITYFLOW_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func Parse() bool {
	return d.Parse
}
func Normalize() bool {
	return d.Normalize
}
func Merge() bool {
	return d.Merge
}
