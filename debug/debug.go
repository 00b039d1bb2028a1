package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Patch bool
	Run   bool
	Table bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	all := boolEnv("LOCALEPATCH_DEBUG")
	d.Patch = all || boolEnv("LOCALEPATCH_DEBUG_PATCH")
	d.Run = all || boolEnv("LOCALEPATCH_DEBUG_RUN")
	d.Table = all || boolEnv("LOCALEPATCH_DEBUG_TABLE")
	d.Diff = all || boolEnv("LOCALEPATCH_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Patch() bool {
	return d.Patch
}
func Run() bool {
	return d.Run
}
func Table() bool {
	return d.Table
}
func Diff() bool {
	return d.Diff
}
