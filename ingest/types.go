package ingest

import (
	"strconv"
	"strings"

	"github.com/jameshanlon/netlist-paths/dtype"
	"github.com/jameshanlon/netlist-paths/errs"
)

// visitConst parses a <const> node's name attribute, recognizing plain
// decimal, 'h hex, and 'sh signed-hex prefixes (§4.4). A value that
// carries a quote but neither recognized prefix, or that fails to parse
// as a number, is a malformed document.
func visitConst(n *node) (int64, error) {
	value := n.Attr("name")
	if strings.Contains(value, "'") {
		if idx := strings.LastIndex(value, "'sh"); idx != -1 {
			v, err := strconv.ParseInt(value[idx+3:], 16, 64)
			if err != nil {
				return 0, errs.Wrap(errs.InvalidDocument, value, "malformed signed-hex constant literal", err)
			}
			return v, nil
		}
		if idx := strings.LastIndex(value, "'h"); idx != -1 {
			v, err := strconv.ParseUint(value[idx+2:], 16, 64)
			if err != nil {
				return 0, errs.Wrap(errs.InvalidDocument, value, "malformed hex constant literal", err)
			}
			return int64(v), nil
		}
		return 0, errs.New(errs.InvalidDocument, value, "unexpected constant value type prefix")
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errs.Wrap(errs.InvalidDocument, value, "malformed decimal constant literal", err)
	}
	return int64(v), nil
}

// visitRange reads a <range> node's two <const> children. Verilator emits
// them end-then-start (descending bit order), so the first child is the
// range's low bound and the last its high bound.
func visitRange(n *node) (start, end int64, err error) {
	if len(n.Children) != 2 {
		return 0, 0, errs.New(errs.InvalidDocument, n.Tag, "range expects exactly two const children")
	}
	start, err = visitConst(n.Children[1])
	if err != nil {
		return 0, 0, err
	}
	end, err = visitConst(n.Children[0])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// visitMemberDType builds a struct/union member from a <memberdtype>
// node, whose sub_dtype_id must already have a stub (it is only ever
// visited on the type table's second pass).
func (c *context) visitMemberDType(n *node) (dtype.Member, error) {
	name := n.Attr("name")
	subID := n.Attr("sub_dtype_id")
	sub, ok := c.dtypeByID[subID]
	if !ok {
		return dtype.Member{}, errs.New(errs.InvalidDocument, subID, "could not find member sub dtype ID")
	}
	return dtype.Member{Name: name, DType: sub}, nil
}

// visitTypeNode dispatches a single type-table child on either pass,
// keyed by whether its id attribute has already been stubbed: the first
// visit creates the stub (and any self-contained fields); the second
// patches in every field that could name a forward reference.
func (c *context) visitTypeNode(n *node) error {
	switch n.Tag {
	case "basicdtype":
		return c.visitBasicDType(n)
	case "refdtype":
		return c.visitRefDType(n)
	case "packarraydtype":
		return c.visitArrayDType(n, true)
	case "unpackarraydtype":
		return c.visitArrayDType(n, false)
	case "structdtype":
		return c.visitAggregateDType(n, dtype.Struct)
	case "uniondtype":
		return c.visitAggregateDType(n, dtype.Union)
	case "enumdtype":
		return c.visitEnumDType(n)
	case "voiddtype":
		return c.visitVoidDType(n)
	case "classrefdtype":
		return c.visitClassRefDType(n)
	case "ifacerefdtype":
		return nil // interfaces are unsupported in flat netlists; nothing to record.
	default:
		return nil
	}
}

func (c *context) visitBasicDType(n *node) error {
	id := n.Attr("id")
	if _, exists := c.dtypeByID[id]; exists {
		return nil
	}
	stub := c.graph.DTypes.NewStub(dtype.Basic)
	c.dtypeByID[id] = stub
	d := c.graph.DTypes.Resolve(stub)
	d.Name = n.Attr("name")
	d.Loc = c.parseLocation(n.Attr("loc"))
	if n.HasAttr("left") && n.HasAttr("right") {
		left, err := strconv.Atoi(n.Attr("left"))
		if err != nil {
			return errs.Wrap(errs.InvalidDocument, n.Attr("left"), "malformed basicdtype left bound", err)
		}
		right, err := strconv.Atoi(n.Attr("right"))
		if err != nil {
			return errs.Wrap(errs.InvalidDocument, n.Attr("right"), "malformed basicdtype right bound", err)
		}
		d.HasBounds, d.Left, d.Right = true, left, right
	}
	return nil
}

func (c *context) visitRefDType(n *node) error {
	id := n.Attr("id")
	if stub, exists := c.dtypeByID[id]; !exists {
		stub = c.graph.DTypes.NewStub(dtype.Ref)
		c.dtypeByID[id] = stub
		d := c.graph.DTypes.Resolve(stub)
		d.Name = n.Attr("name")
		d.Loc = c.parseLocation(n.Attr("loc"))
	} else {
		subID := n.Attr("sub_dtype_id")
		sub, ok := c.dtypeByID[subID]
		if !ok {
			return errs.New(errs.InvalidDocument, subID, "could not find ref sub dtype ID")
		}
		c.graph.DTypes.Resolve(stub).Sub = sub
	}
	return nil
}

func (c *context) visitArrayDType(n *node, packed bool) error {
	id := n.Attr("id")
	if stub, exists := c.dtypeByID[id]; !exists {
		if len(n.Children) != 1 {
			return errs.New(errs.InvalidDocument, n.Tag, "arraydtype expects exactly one range child")
		}
		start, end, err := visitRange(n.Children[0])
		if err != nil {
			return err
		}
		stub = c.graph.DTypes.NewStub(dtype.Array)
		c.dtypeByID[id] = stub
		d := c.graph.DTypes.Resolve(stub)
		d.Loc = c.parseLocation(n.Attr("loc"))
		d.Start, d.End, d.Packed = int(start), int(end), packed
	} else {
		subID := n.Attr("sub_dtype_id")
		sub, ok := c.dtypeByID[subID]
		if !ok {
			return errs.New(errs.InvalidDocument, subID, "could not find array sub dtype ID")
		}
		c.graph.DTypes.Resolve(stub).Sub = sub
	}
	return nil
}

func (c *context) visitAggregateDType(n *node, kind dtype.Kind) error {
	id := n.Attr("id")
	if stub, exists := c.dtypeByID[id]; !exists {
		stub = c.graph.DTypes.NewStub(kind)
		c.dtypeByID[id] = stub
		d := c.graph.DTypes.Resolve(stub)
		d.Loc = c.parseLocation(n.Attr("loc"))
		d.Name = n.Attr("name") // struct/union may be anonymous; "" is fine.
	} else {
		d := c.graph.DTypes.Resolve(stub)
		for _, child := range n.Children {
			if child.Tag != "memberdtype" {
				return errs.New(errs.InvalidDocument, child.Tag, "aggregate dtype expects memberdtype children")
			}
			m, err := c.visitMemberDType(child)
			if err != nil {
				return err
			}
			d.Members = append(d.Members, m)
		}
	}
	return nil
}

func (c *context) visitEnumDType(n *node) error {
	id := n.Attr("id")
	if stub, exists := c.dtypeByID[id]; !exists {
		stub = c.graph.DTypes.NewStub(dtype.Enum)
		c.dtypeByID[id] = stub
		d := c.graph.DTypes.Resolve(stub)
		d.Loc = c.parseLocation(n.Attr("loc"))
		d.Name = n.Attr("name")
		for _, child := range n.Children {
			if child.Tag != "enumitem" {
				return errs.New(errs.InvalidDocument, child.Tag, "enumdtype expects enumitem children")
			}
			if len(child.Children) != 1 {
				return errs.New(errs.InvalidDocument, child.Tag, "enumitem expects a single const child")
			}
			if _, err := visitConst(child.Children[0]); err != nil {
				return err
			}
			d.HasMembers = true
		}
	} else {
		subID := n.Attr("sub_dtype_id")
		sub, ok := c.dtypeByID[subID]
		if !ok {
			return errs.New(errs.InvalidDocument, subID, "could not find enum sub dtype ID")
		}
		c.graph.DTypes.Resolve(stub).Sub = sub
	}
	return nil
}

func (c *context) visitVoidDType(n *node) error {
	id := n.Attr("id")
	if _, exists := c.dtypeByID[id]; exists {
		return nil
	}
	stub := c.graph.DTypes.NewStub(dtype.Void)
	c.dtypeByID[id] = stub
	c.graph.DTypes.Resolve(stub).Loc = c.parseLocation(n.Attr("loc"))
	return nil
}

func (c *context) visitClassRefDType(n *node) error {
	id := n.Attr("id")
	if _, exists := c.dtypeByID[id]; exists {
		return nil
	}
	stub := c.graph.DTypes.NewStub(dtype.ClassRef)
	c.dtypeByID[id] = stub
	d := c.graph.DTypes.Resolve(stub)
	d.Name = n.Attr("name")
	d.Loc = c.parseLocation(n.Attr("loc"))
	return nil
}
