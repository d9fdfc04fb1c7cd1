package ingest

import (
	"io"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/jameshanlon/netlist-paths/core"
	"github.com/jameshanlon/netlist-paths/errs"
	"github.com/jameshanlon/netlist-paths/internal/location"
)

// IngestFile opens path and ingests it, wrapping any open failure as an
// IO error (§7).
func IngestFile(path string, logger hclog.Logger) (*core.Graph, []core.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errs.Wrap(errs.IO, path, "could not open netlist document", err)
	}
	defer f.Close()
	return Ingest(f, logger)
}

// Ingest reads a flattened AST document from r and builds a raw,
// unnormalized core.Graph from it (§4.4). The returned Graph still needs
// transform.Normalize before it is fit for queries. Non-fatal anomalies
// encountered along the way (unresolved varrefs, top-level names that do
// not share the inferred top prefix) are returned as warnings rather than failing the ingest; a malformed
// document (missing required attributes, unresolvable type references, a
// non-flattened netlist) fails it, per the closed error taxonomy in §7.
func Ingest(r io.Reader, logger hclog.Logger) (*core.Graph, []core.Warning, error) {
	if logger == nil {
		logger = hclog.L()
	}
	root, err := parseDocument(r)
	if err != nil {
		return nil, nil, err
	}

	g := core.NewGraph()
	c := newContext(logger, g)

	if err := c.readFiles(root); err != nil {
		return nil, c.warnings, err
	}

	netlistNode := root.FirstChild("netlist")
	if netlistNode == nil {
		return nil, c.warnings, errs.New(errs.InvalidDocument, root.Tag, "document has no netlist section")
	}

	typeTableNode := netlistNode.FirstChild("typetable")
	if typeTableNode == nil {
		return nil, c.warnings, errs.New(errs.InvalidDocument, "netlist", "document has no type table")
	}
	// Two passes: the first creates every descriptor by id, the second
	// patches in sub-descriptor and member references, so forward
	// references within the type table resolve regardless of order.
	for pass := 0; pass < 2; pass++ {
		for _, child := range typeTableNode.Children {
			if err := c.visitTypeNode(child); err != nil {
				return nil, c.warnings, err
			}
		}
	}
	logger.Info("type table entries", "count", len(c.dtypeByID))

	var moduleNode *node
	moduleCount, interfaceCount := 0, 0
	for _, child := range netlistNode.Children {
		switch child.Tag {
		case "module":
			moduleCount++
			moduleNode = child
		case "iface":
			interfaceCount++
		}
	}
	logger.Info("netlist module counts", "modules", moduleCount, "interfaces", interfaceCount)

	if moduleCount != 1 || interfaceCount != 0 {
		return nil, c.warnings, errs.New(errs.Unsupported, "netlist",
			"netlist is not flat: expected exactly one module and no interfaces")
	}
	if name := moduleNode.Attr("name"); name != "" && name != "TOP" {
		return nil, c.warnings, errs.New(errs.InvalidDocument, name, "unexpected top module name, want TOP")
	}
	if err := c.iterateChildren(moduleNode); err != nil {
		return nil, c.warnings, err
	}

	logger.Info("netlist built", "vertices", g.NumVertices(), "edges", g.NumEdges())
	return g, c.warnings, nil
}

// readFiles builds the id -> File map from the document's files table.
// Per-entry problems (a missing id or filename) are collected
// across every entry via multierror rather than aborting at the first
// one, since file-table entries are independent of each other and a
// caller debugging a malformed document benefits from seeing all of them
// at once. A non-numeric id is not an error: the entry is kept, still
// keyed by its id string, with File.ID 0.
func (c *context) readFiles(root *node) error {
	filesNode := root.FirstChild("files")
	if filesNode == nil {
		return errs.New(errs.InvalidDocument, root.Tag, "document has no files section")
	}
	var result *multierror.Error
	for _, fileNode := range filesNode.Children {
		if fileNode.Tag != "file" {
			continue
		}
		idAttr := fileNode.Attr("id")
		filename := fileNode.Attr("filename")
		if idAttr == "" || filename == "" {
			result = multierror.Append(result, errs.New(errs.InvalidDocument, idAttr,
				"file entry missing id or filename attribute"))
			continue
		}
		id, err := strconv.Atoi(idAttr)
		if err != nil {
			id = 0
		}
		f := &location.File{ID: id, Path: filename, Language: fileNode.Attr("language")}
		c.fileByID[idAttr] = f
		c.graph.Files = append(c.graph.Files, f)
	}
	return result.ErrorOrNil()
}
