package ingest

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jameshanlon/netlist-paths/core"
	"github.com/jameshanlon/netlist-paths/dtype"
	"github.com/jameshanlon/netlist-paths/internal/location"
)

// context carries the mutable state threaded through the recursive-descent
// walk: the graph under construction, the name and dtype resolution maps,
// the logic-parent stack, the scope depth counter, and the two carry-bits
// (§4.4). It is built once
// per document and discarded after Ingest returns.
type context struct {
	logger hclog.Logger

	graph *core.Graph

	fileByID  map[string]*location.File
	dtypeByID map[string]dtype.ID
	varsByName map[string]core.VertexID

	scopeDepth   int
	logicParents []core.VertexID

	isDelayedAssign bool
	isLValue        bool

	topName    string
	topNameSet bool

	warnings []core.Warning
}

func newContext(logger hclog.Logger, g *core.Graph) *context {
	if logger == nil {
		logger = hclog.L()
	}
	return &context{
		logger:     logger,
		graph:      g,
		fileByID:   make(map[string]*location.File),
		dtypeByID:  make(map[string]dtype.ID),
		varsByName: make(map[string]core.VertexID),
	}
}

func (c *context) currentLogic() core.VertexID {
	if len(c.logicParents) == 0 {
		return core.NullVertex
	}
	return c.logicParents[len(c.logicParents)-1]
}

func (c *context) pushLogic(id core.VertexID) { c.logicParents = append(c.logicParents, id) }

func (c *context) popLogic() {
	c.logicParents = c.logicParents[:len(c.logicParents)-1]
}

func (c *context) pushScope() { c.scopeDepth++ }
func (c *context) popScope()  { c.scopeDepth-- }

func (c *context) warn(id core.VertexID, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.logger.Warn(msg)
	c.warnings = append(c.warnings, core.Warning{Vertex: id, Message: msg})
}

// canonicalize applies the top-name prefix to a bare hierarchical name
// (§4.4): inferring and validating the top name the first time a
// multi-component name is seen outside any scope, and prepending
// "<top>." to every name that does not already carry it. Names beginning
// with the front-end's synthesized "__V" prefix never participate in top
// name inference (they are not reliable signals of the real hierarchy),
// but are still canonicalized like any other name.
func (c *context) canonicalize(name string) string {
	if c.scopeDepth == 0 && strings.Contains(name, ".") && !strings.HasPrefix(name, "__V") {
		prefix := name[:strings.IndexByte(name, '.')]
		if !c.topNameSet {
			c.topName, c.topNameSet = prefix, true
		} else if prefix != c.topName {
			c.warn(core.NullVertex, "top-level name %q does not share inferred top prefix %q", name, c.topName)
		}
	}
	if !c.topNameSet || strings.HasPrefix(name, c.topName+".") || name == c.topName {
		return name
	}
	return c.topName + "." + name
}

// lookupVar resolves name to a vertex id, first trying the canonical
// (top-prefixed) form and falling back to the bare name, mirroring
// lookupVarVertex's exact-then-fallback behaviour.
func (c *context) lookupVar(name string) (core.VertexID, bool) {
	canonical := c.canonicalize(name)
	if id, ok := c.varsByName[canonical]; ok {
		return id, true
	}
	if id, ok := c.varsByName[name]; ok {
		return id, true
	}
	return core.NullVertex, false
}

// registerVar records name -> id, first-registration wins: a later
// duplicate declaration (a known artifact of Verilator's flattened output)
// leaves the graph with an extra, harmless, unreferenced vertex rather
// than silently redirecting earlier references.
func (c *context) registerVar(name string, id core.VertexID) {
	if _, exists := c.varsByName[name]; !exists {
		c.varsByName[name] = id
	}
}

// parseLocation splits a "<file-id>,<startLine>,<startCol>,<endLine>,<endCol>"
// attribute into a location.Location. A missing or malformed loc yields
// the zero Location rather than failing ingest outright: location data is
// diagnostic, not structural.
func (c *context) parseLocation(loc string) location.Location {
	parts := strings.Split(loc, ",")
	if len(parts) != 5 {
		return location.Location{}
	}
	file := c.fileByID[parts[0]]
	var ints [4]int
	for i := 0; i < 4; i++ {
		fmt.Sscanf(parts[i+1], "%d", &ints[i])
	}
	return location.Location{
		File:      file,
		StartLine: ints[0],
		StartCol:  ints[1],
		EndLine:   ints[2],
		EndCol:    ints[3],
	}
}
