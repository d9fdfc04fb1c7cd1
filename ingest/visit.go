package ingest

import (
	"github.com/jameshanlon/netlist-paths/core"
	"github.com/jameshanlon/netlist-paths/dtype"
	"github.com/jameshanlon/netlist-paths/errs"
	"github.com/jameshanlon/netlist-paths/vertex"
)

// dispatch routes a single node to its visitor by tag, mirroring the
// dispatch table of §4.4. Operator and expression nodes with no
// dedicated visitor fall through to iterateChildren: they contribute no
// edges of their own, but may contain varrefs (e.g. inside a select or
// concatenation) that do.
func (c *context) dispatch(n *node) error {
	switch n.Tag {
	case "scope", "topscope":
		return c.visitScope(n)
	case "var":
		return c.visitVar(n)
	case "varscope":
		return c.visitVarScope(n)
	case "varref":
		return c.visitVarRef(n)
	case "intfref":
		// No newVarRef: interfaces are not supported in flat netlists.
		return c.iterateChildren(n)
	case "always":
		return c.newStatement(n, vertex.Always)
	case "initial":
		return c.newStatement(n, vertex.Initial)
	case "assign":
		return c.newStatement(n, vertex.Assign)
	case "assignw":
		return c.newStatement(n, vertex.AssignW)
	case "assigndly":
		was := c.isDelayedAssign
		c.isDelayedAssign = true
		err := c.newStatement(n, vertex.AssignDly)
		c.isDelayedAssign = was
		return err
	case "assignalias":
		return c.newStatement(n, vertex.AssignAlias)
	case "contassign":
		return c.newStatement(n, vertex.Assign)
	case "if":
		return c.newStatement(n, vertex.If)
	case "case":
		return c.newStatement(n, vertex.Case)
	case "caseitem":
		return c.iterateChildren(n)
	case "while":
		return c.newStatement(n, vertex.While)
	case "jumpblock":
		return c.newStatement(n, vertex.JumpBlock)
	case "instance":
		return c.newStatement(n, vertex.Instance)
	case "sengate":
		return c.newStatement(n, vertex.SenGate)
	case "readmem":
		return c.newStatement(n, vertex.ReadMem)
	case "cfunc":
		return c.newStatement(n, vertex.CFunc)
	case "cstmt":
		return c.newStatement(n, vertex.CStmt)
	case "cnew", "cmethodcall":
		return c.iterateChildren(n)
	case "const":
		return nil // consts are visited explicitly by range/enumitem handling.
	default:
		return c.iterateChildren(n)
	}
}

func (c *context) iterateChildren(n *node) error {
	for _, child := range n.Children {
		if err := c.dispatch(child); err != nil {
			return err
		}
	}
	return nil
}

func (c *context) visitScope(n *node) error {
	c.pushScope()
	defer c.popScope()
	return c.iterateChildren(n)
}

// createVar builds a variable vertex from a <var> or <varscope> node: it
// resolves the dtype reference, canonicalizes the name, and reconciles an
// origName back-reference to an already-registered public port vertex by
// adding bidirectional edges and copying that port's direction onto the
// new, prefixed vertex (§4.4). The gate is on the *found* vertex being a
// port, not the new one: the new node typically carries no dir attribute
// of its own in exactly the case this mechanism exists for. It does not
// recurse into n's children; callers do that.
func (c *context) createVar(n *node) (core.VertexID, error) {
	name := n.Attr("name")
	loc := c.parseLocation(n.Attr("loc"))
	dtID := dtype.InvalidID
	if id, ok := c.dtypeByID[n.Attr("dtype_id")]; ok {
		dtID = id
	}
	dir := vertex.DirectionFromTag(n.Attr("dir"))
	isParam := n.HasAttr("param")
	paramValue := n.Attr("param")
	isPublic := n.Attr("public") == "true"

	canonical := c.canonicalize(name)
	id := c.graph.AddVarVertex(vertex.Var, dir, loc, dtID, canonical, isParam, paramValue, isPublic)
	c.registerVar(canonical, id)

	if orig := n.Attr("origName"); orig != "" && orig != canonical {
		if foundID, ok := c.varsByName[orig]; ok {
			found := c.graph.Vertex(foundID)
			if found.IsPort() {
				c.graph.AddEdge(id, foundID, false)
				c.graph.AddEdge(foundID, id, false)
				c.graph.SetVertexDirection(id, found.Direction)
			}
		}
	}
	return id, nil
}

func (c *context) visitVar(n *node) error {
	if _, err := c.createVar(n); err != nil {
		return err
	}
	return c.iterateChildren(n)
}

// visitVarScope looks up the name before creating a vertex: Verilator
// emits a <varscope> for every variable it declared with <var>, and a
// flattened netlist can carry duplicates; only the first wins.
func (c *context) visitVarScope(n *node) error {
	canonical := c.canonicalize(n.Attr("name"))
	if _, ok := c.lookupVar(canonical); !ok {
		if _, err := c.createVar(n); err != nil {
			return err
		}
	}
	return c.iterateChildren(n)
}

// newStatement creates a logic vertex of kind, links it from the
// enclosing logic vertex if any, and recurses. The four assignment kinds
// visit their right-hand child first (is_l_value = false) and their
// left-hand child last (is_l_value = true); every other kind recurses
// uniformly (§4.4).
func (c *context) newStatement(n *node, kind vertex.Kind) error {
	if c.scopeDepth == 0 {
		return errs.New(errs.InvalidDocument, n.Tag, "statement node outside any scope")
	}
	loc := c.parseLocation(n.Attr("loc"))
	id := c.graph.AddLogicVertex(kind, loc)
	if parent := c.currentLogic(); parent != core.NullVertex {
		c.graph.AddEdge(parent, id, false)
	}
	c.pushLogic(id)
	defer c.popLogic()

	switch kind {
	case vertex.Assign, vertex.AssignAlias, vertex.AssignDly, vertex.AssignW:
		if len(n.Children) != 2 {
			return errs.New(errs.InvalidDocument, n.Tag, "assignment expects exactly two children")
		}
		c.isLValue = false
		if err := c.dispatch(n.Children[0]); err != nil {
			return err
		}
		c.isLValue = true
		err := c.dispatch(n.Children[1])
		c.isLValue = false
		return err
	default:
		return c.iterateChildren(n)
	}
}

// visitVarRef resolves a <varref>'s canonical name and adds the edge
// dictated by which side of an assignment it's on (§4.4). An unresolved
// name is a warning, not a failure: the front end can legitimately emit
// references to variables this tool chooses not to model.
func (c *context) visitVarRef(n *node) error {
	if c.currentLogic() == core.NullVertex {
		return errs.New(errs.InvalidDocument, n.Attr("name"), "variable reference outside any logic statement")
	}
	name := n.Attr("name")
	varID, ok := c.lookupVar(name)
	if !ok {
		c.warn(core.NullVertex, "unresolved variable reference %q", name)
		return c.iterateChildren(n)
	}
	logicID := c.currentLogic()
	switch {
	case c.isLValue && c.isDelayedAssign:
		c.graph.AddEdge(logicID, varID, false)
		c.graph.SetVertexDstReg(varID)
	case c.isLValue:
		c.graph.AddEdge(logicID, varID, false)
	default:
		c.graph.AddEdge(varID, logicID, false)
	}
	return c.iterateChildren(n)
}
