// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package synth

import (
	"go/ast"
	"go/token"
	"strconv"
)

// builder constructs expressions referencing the imported packages.
type builder struct {
	imports Imports
}

func ident(name string) *ast.Ident { return ast.NewIdent(name) }

func (builder) sel(pkg, name string) *ast.SelectorExpr {
	return &ast.SelectorExpr{X: ident(pkg), Sel: ident(name)}
}

func call(fun ast.Expr, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{Fun: fun, Args: args}
}

func str(s string) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}

func intLit(i int) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.INT, Value: strconv.Itoa(i)}
}

func addr(x ast.Expr) *ast.UnaryExpr {
	return &ast.UnaryExpr{Op: token.AND, X: x}
}

func or(xs ...ast.Expr) ast.Expr {
	expr := xs[0]
	for _, x := range xs[1:] {
		expr = &ast.BinaryExpr{X: expr, Op: token.LOR, Y: x}
	}

	return expr
}

func cmpExpr(x ast.Expr, op token.Token, y ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{X: x, Op: op, Y: y}
}

func exprStmt(x ast.Expr) *ast.ExprStmt { return &ast.ExprStmt{X: x} }

func define(name string, value ast.Expr) *ast.AssignStmt {
	return &ast.AssignStmt{Lhs: []ast.Expr{ident(name)}, Tok: token.DEFINE, Rhs: []ast.Expr{value}}
}

// depthAdd returns atomic.AddUint32(&DEPTH, delta).
func (b builder) depthAdd(delta ast.Expr) ast.Stmt {
	return exprStmt(call(b.sel(b.imports.Atomic, "AddUint32"), addr(ident(DepthVar)), delta))
}

// printf returns fmt.Printf(format, __traceIndent, args...).
func (b builder) printf(format string, args []string) ast.Stmt {
	exprs := make([]ast.Expr, 0, len(args)+2)
	exprs = append(exprs, str(format), ident(IndentVar))

	for _, arg := range args {
		exprs = append(exprs, ident(arg))
	}

	return exprStmt(call(b.sel(b.imports.Fmt, "Printf"), exprs...))
}

// indent returns __traceIndent := strings.Repeat(" ", int(atomic.LoadUint32(&DEPTH))).
func (b builder) indent() ast.Stmt {
	depth := call(b.sel(b.imports.Atomic, "LoadUint32"), addr(ident(DepthVar)))

	return define(IndentVar, call(b.sel(b.imports.Strings, "Repeat"), str(" "), call(ident("int"), depth)))
}

// pause reads and discards one line from standard input, returning at once on end of input:
//
//	for __traceBuf := make([]byte, 1); ; {
//		if n, err := os.Stdin.Read(__traceBuf); n == 0 || err != nil || __traceBuf[0] == '\n' {
//			break
//		}
//	}
func (b builder) pause() ast.Stmt {
	buf := func() ast.Expr { return ident(bufVar) }

	read := &ast.AssignStmt{
		Lhs: []ast.Expr{ident("n"), ident("err")},
		Tok: token.DEFINE,
		Rhs: []ast.Expr{call(&ast.SelectorExpr{X: b.sel(b.imports.OS, "Stdin"), Sel: ident("Read")}, buf())},
	}

	done := or(
		cmpExpr(ident("n"), token.EQL, intLit(0)),
		cmpExpr(ident("err"), token.NEQ, ident("nil")),
		cmpExpr(&ast.IndexExpr{X: buf(), Index: intLit(0)}, token.EQL, &ast.BasicLit{Kind: token.CHAR, Value: `'\n'`}),
	)

	return &ast.ForStmt{
		Init: define(bufVar, call(ident("make"), &ast.ArrayType{Elt: ident("byte")}, intLit(1))),
		Body: &ast.BlockStmt{List: []ast.Stmt{
			&ast.IfStmt{
				Init: read,
				Cond: done,
				Body: &ast.BlockStmt{List: []ast.Stmt{&ast.BranchStmt{Tok: token.BREAK}}},
			},
		}},
	}
}

// deferred returns defer func() { stmts }().
func deferred(stmts []ast.Stmt) ast.Stmt {
	fn := &ast.FuncLit{
		Type: &ast.FuncType{Params: &ast.FieldList{}},
		Body: &ast.BlockStmt{List: stmts},
	}

	return &ast.DeferStmt{Call: call(fn)}
}

// decrement is ^uint32(0), which subtracts one when added.
func decrement() ast.Expr {
	return &ast.UnaryExpr{Op: token.XOR, X: call(ident("uint32"), intLit(0))}
}
