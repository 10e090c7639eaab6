// Command guardcheck reports assertguard checks whose recovery action is
// missing or does not match the check.
//
//	go run github.com/LerianStudio/lib-assertguard/cmd/guardcheck ./...
package main

import (
	"github.com/LerianStudio/lib-assertguard/assertguard/lint/guardcheck"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(guardcheck.Analyzer)
}
