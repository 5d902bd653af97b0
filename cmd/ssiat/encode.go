package main

import (
	"fmt"

	"github.com/ssiat-lang/ssiat/internal/ast"
)

// encodeCanon renders the canonical program as plain maps and slices, the
// one shape both the YAML and JSON encoders accept. Node ids and spans come
// along so positions survive the handoff.
func encodeCanon(c *ast.CanonProgram) map[string]any {
	p := c.Program
	items := make([]any, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, encodeStmt(it))
	}
	return map[string]any{
		"file":      p.File,
		"root_hide": p.RootHide,
		"items":     items,
	}
}

func node(n ast.Node, kind string) map[string]any {
	span := n.GetSpan()
	return map[string]any{
		"kind": kind,
		"id":   int(n.ID()),
		"span": []int{span.Start, span.End},
	}
}

func encodeStmt(s ast.Stmt) map[string]any {
	switch x := s.(type) {
	case *ast.SeedDef:
		m := node(x, "seed")
		m["seed_kind"] = string(x.Kind)
		m["name"] = x.Name
		params := make([]any, 0, len(x.Params))
		for _, prm := range x.Params {
			params = append(params, encodeParam(prm))
		}
		m["params"] = params
		m["body"] = encodeStmt(x.Body)
		return m
	case *ast.Block:
		m := node(x, "block")
		stmts := make([]any, 0, len(x.Stmts))
		for _, st := range x.Stmts {
			stmts = append(stmts, encodeStmt(st))
		}
		m["stmts"] = stmts
		return m
	case *ast.If:
		m := node(x, "if")
		m["cond"] = encodeExpr(x.Cond)
		m["then"] = encodeStmt(x.Then)
		if x.Else != nil {
			m["else"] = encodeStmt(x.Else)
		}
		return m
	case *ast.While:
		m := node(x, "while")
		m["cond"] = encodeExpr(x.Cond)
		m["body"] = encodeStmt(x.Body)
		return m
	case *ast.Repeat:
		m := node(x, "repeat")
		m["count"] = encodeExpr(x.Count)
		m["body"] = encodeStmt(x.Body)
		return m
	case *ast.ForEach:
		m := node(x, "foreach")
		m["seq"] = encodeExpr(x.Seq)
		if x.Binder != "" {
			m["binder"] = x.Binder
		}
		m["body"] = encodeStmt(x.Body)
		return m
	case *ast.Choose:
		m := node(x, "choose")
		arms := make([]any, 0, len(x.Arms))
		for _, arm := range x.Arms {
			arms = append(arms, map[string]any{
				"cond": encodeExpr(arm.Cond),
				"body": encodeStmt(arm.Body),
			})
		}
		m["arms"] = arms
		if x.Else != nil {
			m["else"] = encodeStmt(x.Else)
		}
		return m
	case *ast.Contract:
		m := node(x, "contract")
		m["phase"] = x.Phase.String()
		m["cond"] = encodeExpr(x.Cond)
		return m
	case *ast.Guard:
		m := node(x, "guard")
		m["cond"] = encodeExpr(x.Cond)
		m["body"] = encodeStmt(x.Body)
		return m
	case *ast.DeclBlock:
		m := node(x, "decls")
		decls := make([]any, 0, len(x.Decls))
		for _, d := range x.Decls {
			decls = append(decls, map[string]any{
				"name":  d.Name,
				"value": encodeExpr(d.Value),
			})
		}
		m["decls"] = decls
		return m
	case *ast.Mutate:
		m := node(x, "mutate")
		targets := make([]any, 0, len(x.Targets))
		for _, t := range x.Targets {
			targets = append(targets, encodeExpr(t))
		}
		m["targets"] = targets
		m["value"] = encodeExpr(x.Value)
		return m
	case *ast.Return:
		m := node(x, "return")
		if x.Value != nil {
			m["value"] = encodeExpr(x.Value)
		}
		return m
	case *ast.ExprStmt:
		m := node(x, "expr")
		m["x"] = encodeExpr(x.X)
		return m
	case *ast.Directive:
		m := node(x, "directive")
		m["name"] = x.Name
		return m
	}
	return map[string]any{"kind": fmt.Sprintf("unknown(%T)", s)}
}

func encodeExpr(e ast.Expr) map[string]any {
	switch x := e.(type) {
	case *ast.Ident:
		m := node(x, "ident")
		m["name"] = x.Name
		return m
	case *ast.IntLit:
		m := node(x, "int")
		m["value"] = x.Value
		return m
	case *ast.FloatLit:
		m := node(x, "float")
		m["value"] = x.Value
		return m
	case *ast.StrLit:
		m := node(x, "str")
		m["value"] = x.Value
		return m
	case *ast.BoolLit:
		m := node(x, "bool")
		m["value"] = x.Value
		return m
	case *ast.NoneLit:
		return node(x, "none")
	case *ast.Flow:
		return node(x, "flow")
	case *ast.Prefix:
		m := node(x, "prefix")
		m["op"] = x.Op
		m["x"] = encodeExpr(x.X)
		return m
	case *ast.Infix:
		m := node(x, "infix")
		m["op"] = x.Op
		m["left"] = encodeExpr(x.Left)
		m["right"] = encodeExpr(x.Right)
		return m
	case *ast.Range:
		m := node(x, "range")
		m["from"] = encodeExpr(x.From)
		m["to"] = encodeExpr(x.To)
		return m
	case *ast.Call:
		m := node(x, "call")
		m["name"] = x.CanonName
		if x.Display != x.CanonName && x.Display != "" {
			m["display"] = x.Display
		}
		args := make([]any, 0, len(x.Args))
		for _, a := range x.Args {
			args = append(args, map[string]any{
				"pin":    a.ResolvedPin,
				"reason": a.Reason.String(),
				"value":  encodeExpr(a.Value),
			})
		}
		m["args"] = args
		return m
	case *ast.FieldAccess:
		m := node(x, "field")
		m["x"] = encodeExpr(x.X)
		m["field"] = x.Field
		return m
	case *ast.Pipe:
		m := node(x, "pipe")
		stages := make([]any, 0, len(x.Stages))
		for _, st := range x.Stages {
			stages = append(stages, encodeExpr(st))
		}
		m["stages"] = stages
		return m
	case *ast.Pack:
		m := node(x, "pack")
		elems := make([]any, 0, len(x.Elems))
		for _, el := range x.Elems {
			elems = append(elems, encodeExpr(el))
		}
		m["elems"] = elems
		return m
	case *ast.Template:
		m := node(x, "template")
		parts := make([]any, 0, len(x.Parts))
		for _, part := range x.Parts {
			if part.Expr != nil {
				parts = append(parts, map[string]any{"expr": encodeExpr(part.Expr)})
			} else {
				parts = append(parts, map[string]any{"text": part.Text})
			}
		}
		m["parts"] = parts
		return m
	case *ast.Formula:
		m := node(x, "formula")
		m["raw"] = x.Raw
		m["body"] = encodeExpr(x.Body)
		return m
	case *ast.Thunk:
		m := node(x, "thunk")
		m["body"] = encodeStmt(x.Body)
		return m
	case *ast.Eval:
		m := node(x, "eval")
		m["mode"] = x.Mode.String()
		m["thunk"] = encodeExpr(x.Thunk)
		return m
	case *ast.Suffix:
		m := node(x, "suffix")
		m["x"] = encodeExpr(x.X)
		m["unit"] = x.Unit
		return m
	}
	return map[string]any{"kind": fmt.Sprintf("unknown(%T)", e)}
}

func encodeParam(prm *ast.ParamPin) map[string]any {
	m := map[string]any{
		"pin":  prm.PinName,
		"josa": prm.JosaList,
	}
	if prm.Type.Name != "" {
		m["type"] = prm.Type.Name
	}
	if prm.Type.Unit != "" {
		m["unit"] = prm.Type.Unit
	}
	if prm.Default != nil {
		m["default"] = encodeExpr(prm.Default)
	}
	if prm.Optional {
		m["optional"] = true
	}
	return m
}
