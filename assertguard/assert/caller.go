package assert

import (
	"path/filepath"
	goruntime "runtime"
	"strings"

	constant "github.com/LerianStudio/lib-assertguard/assertguard/constants"
)

// callerSkip counts the frames between runtime.Caller and the user's call
// site: callerInfo, Checker.failAt, the public check function.
const callerSkip = 3

// callerInfo resolves the routine, file and line of the user's call site.
// It only runs on the failure path.
func callerInfo() (contextName, file string, line int) {
	pc, path, line, ok := goruntime.Caller(callerSkip)
	if !ok {
		return constant.UnknownContext, constant.UnknownContext, 0
	}

	contextName = constant.UnknownContext
	if fn := goruntime.FuncForPC(pc); fn != nil {
		contextName = shortFuncName(fn.Name())
	}

	return contextName, filepath.Base(path), line
}

// shortFuncName drops the import path and package name from a fully
// qualified function name: "example.com/x/ledger.(*Book).Post" -> "(*Book).Post".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	if _, after, ok := strings.Cut(name, "."); ok && after != "" {
		return after
	}

	return name
}
