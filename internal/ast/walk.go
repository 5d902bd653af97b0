package ast

// Inspect walks the tree rooted at n in depth-first preorder, calling f on
// every non-nil node. If f returns false the node's children are skipped.
//
// The type switch below is the single place that must know every variant;
// adding a node kind without extending it breaks the resolution passes, so
// keep it exhaustive.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch x := n.(type) {
	case *Program:
		for _, it := range x.Items {
			Inspect(it, f)
		}
	case *SeedDef:
		for _, p := range x.Params {
			if p.Default != nil {
				Inspect(p.Default, f)
			}
		}
		if x.Body != nil {
			Inspect(x.Body, f)
		}
	case *Block:
		for _, s := range x.Stmts {
			Inspect(s, f)
		}
	case *If:
		Inspect(x.Cond, f)
		if x.Then != nil {
			Inspect(x.Then, f)
		}
		if x.Else != nil {
			Inspect(x.Else, f)
		}
	case *While:
		Inspect(x.Cond, f)
		if x.Body != nil {
			Inspect(x.Body, f)
		}
	case *Repeat:
		Inspect(x.Count, f)
		if x.Body != nil {
			Inspect(x.Body, f)
		}
	case *ForEach:
		Inspect(x.Seq, f)
		if x.Body != nil {
			Inspect(x.Body, f)
		}
	case *Choose:
		for _, arm := range x.Arms {
			Inspect(arm.Cond, f)
			if arm.Body != nil {
				Inspect(arm.Body, f)
			}
		}
		if x.Else != nil {
			Inspect(x.Else, f)
		}
	case *Contract:
		Inspect(x.Cond, f)
	case *Guard:
		Inspect(x.Cond, f)
		if x.Body != nil {
			Inspect(x.Body, f)
		}
	case *DeclBlock:
		for _, d := range x.Decls {
			Inspect(d.Value, f)
		}
	case *Mutate:
		for _, t := range x.Targets {
			Inspect(t, f)
		}
		Inspect(x.Value, f)
	case *Return:
		if x.Value != nil {
			Inspect(x.Value, f)
		}
	case *ExprStmt:
		Inspect(x.X, f)
	case *Directive:
		// leaf

	case *Ident, *IntLit, *FloatLit, *StrLit, *BoolLit, *NoneLit, *Flow:
		// leaves
	case *Prefix:
		Inspect(x.X, f)
	case *Infix:
		Inspect(x.Left, f)
		Inspect(x.Right, f)
	case *Range:
		Inspect(x.From, f)
		Inspect(x.To, f)
	case *Call:
		for _, a := range x.Args {
			if a.Value != nil {
				Inspect(a.Value, f)
			}
		}
	case *FieldAccess:
		Inspect(x.X, f)
	case *Pipe:
		for _, s := range x.Stages {
			Inspect(s, f)
		}
	case *Pack:
		for _, e := range x.Elems {
			Inspect(e, f)
		}
	case *Template:
		for _, p := range x.Parts {
			if p.Expr != nil {
				Inspect(p.Expr, f)
			}
		}
	case *Formula:
		if x.Body != nil {
			Inspect(x.Body, f)
		}
	case *Thunk:
		if x.Body != nil {
			Inspect(x.Body, f)
		}
	case *Eval:
		if x.Thunk != nil {
			Inspect(x.Thunk, f)
		}
	case *Suffix:
		Inspect(x.X, f)
	}
}

// Calls collects every call expression under n in visit order.
func Calls(n Node) []*Call {
	var out []*Call
	Inspect(n, func(m Node) bool {
		if c, ok := m.(*Call); ok {
			out = append(out, c)
		}
		return true
	})
	return out
}
