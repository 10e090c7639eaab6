package guardcheck

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// AssertPackagePath is the import path of the checked package.
const AssertPackagePath = "github.com/LerianStudio/lib-assertguard/assertguard/assert"

// Analyzer enforces the recovery contract of assertguard checks.
var Analyzer = &analysis.Analyzer{
	Name:     "guardcheck",
	Doc:      "check that assertguard checks are followed by their recovery action",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

type recovery uint8

const (
	recoverReturn recovery = iota
	recoverReturnFalse
	recoverReturnValue
	recoverBreak
	recoverContinue
)

func (r recovery) statement() string {
	switch r {
	case recoverReturnFalse:
		return "return false"
	case recoverBreak:
		return "break"
	case recoverContinue:
		return "continue"
	default:
		return "return"
	}
}

var checks = map[string]recovery{
	"CheckOrReturn":                 recoverReturn,
	"CheckOrReturnDefault":          recoverReturn,
	"CheckOrReturnFalse":            recoverReturnFalse,
	"CheckOrReturnValue":            recoverReturnValue,
	"CheckOrBreak":                  recoverBreak,
	"CheckOrContinue":               recoverContinue,
	"CheckParameterOrReturn":        recoverReturn,
	"CheckParameterOrReturnDefault": recoverReturn,
	"CheckParameterOrReturnFalse":   recoverReturnFalse,
	"CheckParameterOrReturnValue":   recoverReturnValue,
	"CheckParameterOrBreak":         recoverBreak,
	"CheckParameterOrContinue":      recoverContinue,
}

// outcomeChecks are the Checker methods returning an Outcome.
var outcomeChecks = map[string]bool{
	"Check":          true,
	"CheckParameter": true,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.WithStack([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		call := n.(*ast.CallExpr)

		fn := callee(pass, call)
		if fn == nil {
			return true
		}

		name := fn.Name()
		if outcomeChecks[name] && isMethod(fn) {
			checkOutcomeUsed(pass, name, call, stack)
			return true
		}

		kind, ok := checks[name]
		if !ok {
			return true
		}

		ifStmt := enclosingIf(call, kind, stack)
		if ifStmt == nil {
			pass.Reportf(call.Pos(), "result of %s must be the condition of an if statement ending in %s", name, kind.statement())
			return true
		}

		if checkBody(pass, name, kind, ifStmt) && kind == recoverBreak {
			checkSwitchBreak(pass, name, ifStmt, stack)
		}

		return true
	})

	return nil, nil
}

// callee returns the assert package function or method call targets.
func callee(pass *analysis.Pass, call *ast.CallExpr) *types.Func {
	fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != AssertPackagePath {
		return nil
	}

	return fn.Origin()
}

func isMethod(fn *types.Func) bool {
	sig, ok := fn.Type().(*types.Signature)

	return ok && sig.Recv() != nil
}

// ancestors returns the enclosing nodes of the last stack entry, outermost
// first, without parentheses.
func ancestors(stack []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(stack))
	for _, n := range stack[:len(stack)-1] {
		if _, paren := n.(*ast.ParenExpr); !paren {
			out = append(out, n)
		}
	}

	return out
}

// checkOutcomeUsed reports an Outcome dropped by an expression statement,
// a go or defer statement, or an assignment to the blank identifier.
func checkOutcomeUsed(pass *analysis.Pass, name string, call *ast.CallExpr, stack []ast.Node) {
	up := ancestors(stack)
	if len(up) == 0 {
		return
	}

	discarded := false

	switch p := up[len(up)-1].(type) {
	case *ast.ExprStmt, *ast.GoStmt, *ast.DeferStmt:
		discarded = true
	case *ast.AssignStmt:
		if len(p.Lhs) == len(p.Rhs) {
			for i, rhs := range p.Rhs {
				if astutil.Unparen(rhs) == call {
					discarded = isBlank(p.Lhs[i])
				}
			}
		}
	case *ast.ValueSpec:
		if len(p.Names) == len(p.Values) {
			for i, v := range p.Values {
				if astutil.Unparen(v) == call {
					discarded = p.Names[i].Name == "_"
				}
			}
		}
	}

	if discarded {
		pass.Reportf(call.Pos(), "result of %s is discarded: the returned Outcome must be acted on", name)
	}
}

func isBlank(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)

	return ok && id.Name == "_"
}

// enclosingIf returns the if statement acting on call, or nil.
func enclosingIf(call *ast.CallExpr, kind recovery, stack []ast.Node) *ast.IfStmt {
	up := ancestors(stack)

	parent := func(depth int) ast.Node {
		if i := len(up) - depth; i >= 0 {
			return up[i]
		}

		return nil
	}

	if kind == recoverReturnValue {
		assign, ok := parent(1).(*ast.AssignStmt)
		if !ok || len(assign.Rhs) != 1 || len(assign.Lhs) != 2 || astutil.Unparen(assign.Rhs[0]) != call {
			return nil
		}

		ifStmt, ok := parent(2).(*ast.IfStmt)
		if !ok || ifStmt.Init != assign {
			return nil
		}

		flag, ok := assign.Lhs[1].(*ast.Ident)
		cond, condOK := astutil.Unparen(ifStmt.Cond).(*ast.Ident)
		if !ok || !condOK || flag.Name != cond.Name || flag.Name == "_" {
			return nil
		}

		return ifStmt
	}

	ifStmt, ok := parent(1).(*ast.IfStmt)
	if !ok || astutil.Unparen(ifStmt.Cond) != call {
		return nil
	}

	return ifStmt
}

// checkBody reports whether the if body ends with the matching recovery.
func checkBody(pass *analysis.Pass, name string, kind recovery, ifStmt *ast.IfStmt) bool {
	list := ifStmt.Body.List
	if len(list) == 0 {
		pass.Reportf(ifStmt.Body.Lbrace, "%s: if body must end with %s", name, kind.statement())
		return false
	}

	last := list[len(list)-1]

	switch kind {
	case recoverReturn, recoverReturnValue:
		if _, ok := last.(*ast.ReturnStmt); ok {
			return true
		}
	case recoverReturnFalse:
		if ret, ok := last.(*ast.ReturnStmt); ok && len(ret.Results) > 0 && isFalse(pass, ret.Results[len(ret.Results)-1]) {
			return true
		}
	case recoverBreak:
		if br, ok := last.(*ast.BranchStmt); ok && br.Tok == token.BREAK {
			return true
		}
	case recoverContinue:
		if br, ok := last.(*ast.BranchStmt); ok && br.Tok == token.CONTINUE {
			return true
		}
	}

	pass.Reportf(last.Pos(), "%s: if body must end with %s", name, kind.statement())

	return false
}

func isFalse(pass *analysis.Pass, expr ast.Expr) bool {
	tv, ok := pass.TypesInfo.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.Bool {
		return false
	}

	return !constant.BoolVal(tv.Value)
}

// checkSwitchBreak reports an unlabeled break whose nearest breakable
// statement is a switch or select: it would leave that statement, not the loop.
func checkSwitchBreak(pass *analysis.Pass, name string, ifStmt *ast.IfStmt, stack []ast.Node) {
	list := ifStmt.Body.List
	if br, ok := list[len(list)-1].(*ast.BranchStmt); !ok || br.Label != nil {
		return
	}

	for i := len(stack) - 1; i >= 0; i-- {
		switch stack[i].(type) {
		case *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
			pass.Reportf(ifStmt.Pos(), "%s: break leaves the enclosing switch or select, not the loop", name)
			return
		case *ast.ForStmt, *ast.RangeStmt, *ast.FuncLit, *ast.FuncDecl:
			return
		}
	}
}
