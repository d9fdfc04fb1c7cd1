package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jameshanlon/netlist-paths/core"
	"github.com/jameshanlon/netlist-paths/dotfile"
	"github.com/jameshanlon/netlist-paths/ingest"
	"github.com/jameshanlon/netlist-paths/internal/logging"
	"github.com/jameshanlon/netlist-paths/internal/verilatorrun"
	"github.com/jameshanlon/netlist-paths/options"
	"github.com/jameshanlon/netlist-paths/path"
	"github.com/jameshanlon/netlist-paths/query"
	"github.com/jameshanlon/netlist-paths/transform"
	"github.com/jameshanlon/netlist-paths/vertex"
	"github.com/jameshanlon/netlist-paths/waypoints"
)

var (
	fromName string
	toName   string
	through  []string
	avoid    []string

	allPaths    bool
	startPoints bool
	endPoints   bool
	fanoutName  string
	faninName   string
	reportLogic bool
	filenames   bool
	dumpNames   bool

	compile  bool
	includes []string
	defines  []string

	dotfilePath string
	outfile     string

	verbose bool
	debug   bool

	restrictStart          bool
	restrictEnd            bool
	traverseRegisters      bool
	matchAny               bool
	matchWildcard          bool
	matchRegex             bool
	matchExact             bool
	ignoreHierarchyMarkers bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "netlist-paths [file]...",
		Short:        "Query path existence and fan-in/fan-out over a netlist",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	f := cmd.Flags()
	f.StringVar(&fromName, "from", "", "start point name")
	f.StringVar(&toName, "to", "", "finish point name")
	f.StringArrayVar(&through, "through", nil, "a through-point name (repeatable)")
	f.StringArrayVar(&avoid, "avoid", nil, "an avoid-point name (repeatable)")

	f.BoolVar(&allPaths, "allpaths", false, "report every simple path rather than one representative path")
	f.BoolVar(&startPoints, "startpoints", false, "list every valid start point")
	f.BoolVar(&endPoints, "endpoints", false, "list every valid finish point")
	f.StringVar(&fanoutName, "fanout", "", "report every path fanning out from this name")
	f.StringVar(&faninName, "fanin", "", "report every path fanning in to this name")
	f.BoolVar(&reportLogic, "reportlogic", false, "list every logic vertex")
	f.BoolVar(&filenames, "filenames", false, "list every source file referenced by the document")
	f.BoolVar(&dumpNames, "dumpnames", false, "list every named vertex in the graph")

	f.BoolVar(&compile, "compile", false, "run the front-end compiler over the given sources before ingesting")
	f.StringArrayVar(&includes, "include", nil, "an include directory passed to the front end (repeatable)")
	f.StringArrayVar(&defines, "define", nil, "a macro definition passed to the front end (repeatable)")

	f.StringVar(&dotfilePath, "dotfile", "", "write a Graphviz rendering of the graph to this path")
	f.StringVar(&outfile, "outfile", "", "write report output to this path instead of stdout")

	f.BoolVar(&verbose, "verbose", false, "enable informational logging")
	f.BoolVar(&debug, "debug", false, "enable debug logging")

	f.BoolVar(&restrictStart, "restrict-start", false, "restrict start points to combinatorial start points")
	f.BoolVar(&restrictEnd, "restrict-end", false, "restrict finish points to combinatorial finish points")
	f.BoolVar(&traverseRegisters, "traverse-registers", false, "allow paths to cross register boundaries")
	f.BoolVar(&matchAny, "match-any", false, "when a pattern matches more than one vertex, use the first")
	f.BoolVar(&matchWildcard, "match-wildcard", false, "match names with '*'/'?' wildcards")
	f.BoolVar(&matchRegex, "match-regex", false, "match names as regular expressions")
	f.BoolVar(&matchExact, "match-exact", false, "match names exactly (default)")
	f.BoolVar(&ignoreHierarchyMarkers, "ignore-hierarchy-markers", false, "treat '/', '.', '_' as equivalent hierarchy separators")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.New(verbose, debug)

	out := io.Writer(cmd.OutOrStdout())
	if outfile != "" {
		f, err := os.Create(outfile)
		if err != nil {
			return fmt.Errorf("opening outfile: %w", err)
		}
		defer f.Close()
		out = f
	}

	xmlPath := args[0]
	if compile {
		tmp, err := os.CreateTemp("", "netlist-paths-*.xml")
		if err != nil {
			return fmt.Errorf("creating compiler output file: %w", err)
		}
		tmp.Close()
		defer os.Remove(tmp.Name())

		cfg := verilatorrun.Config{Sources: args, Includes: includes, Defines: defines, XMLOutput: tmp.Name()}
		if err := verilatorrun.Run(context.Background(), cfg); err != nil {
			return err
		}
		xmlPath = tmp.Name()
	}

	g, warnings, err := ingest.IngestFile(xmlPath, logger)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn(w.Message)
	}
	for _, w := range transform.Normalize(g) {
		logger.Warn(w.Message)
	}

	if dotfilePath != "" {
		df, err := os.Create(dotfilePath)
		if err != nil {
			return fmt.Errorf("opening dotfile: %w", err)
		}
		defer df.Close()
		if err := dotfile.Write(df, g); err != nil {
			return err
		}
	}

	mode := options.MatchExact
	switch {
	case matchWildcard:
		mode = options.MatchWildcard
	case matchRegex:
		mode = options.MatchRegex
	case matchExact:
		mode = options.MatchExact
	}

	var opts []options.Option
	opts = append(opts, options.WithMatchMode(mode))
	if ignoreHierarchyMarkers {
		opts = append(opts, options.WithIgnoreHierarchyMarkers())
	}
	if traverseRegisters {
		opts = append(opts, options.WithTraverseRegisters())
	}
	if restrictStart {
		opts = append(opts, options.WithRestrictStartPoints())
	}
	if restrictEnd {
		opts = append(opts, options.WithRestrictEndPoints())
	}
	if matchAny {
		opts = append(opts, options.WithMatchAny())
	}
	if verbose {
		opts = append(opts, options.WithVerbose())
	}
	if debug {
		opts = append(opts, options.WithDebug())
	}
	o := options.New(opts...)
	q := query.New(g, o)

	switch {
	case filenames:
		return printFiles(out, g)
	case dumpNames:
		return printVertexList(out, g, func(v *vertex.Vertex) bool { return v.IsNamed() })
	case reportLogic:
		return printVertexList(out, g, func(v *vertex.Vertex) bool { return v.IsLogic() && !v.Deleted })
	case startPoints:
		return printVertexList(out, g, func(v *vertex.Vertex) bool { return v.IsStartPoint(restrictStart) })
	case endPoints:
		return printVertexList(out, g, func(v *vertex.Vertex) bool { return v.IsFinishPoint(restrictEnd) })
	case fanoutName != "":
		paths, err := q.FanOut(fanoutName)
		if err != nil {
			return err
		}
		return printPaths(out, g, paths)
	case faninName != "":
		paths, err := q.FanIn(faninName)
		if err != nil {
			return err
		}
		return printPaths(out, g, paths)
	case fromName != "" && toName != "":
		w := waypoints.New()
		w.Add(fromName)
		for _, t := range through {
			w.Add(t)
		}
		w.Add(toName)
		for _, a := range avoid {
			w.AddAvoid(a)
		}
		if allPaths {
			paths, err := q.AllPaths(w)
			if err != nil {
				return err
			}
			return printPaths(out, g, paths)
		}
		p, err := q.AnyPath(w)
		if err != nil {
			return err
		}
		if p.IsEmpty() {
			fmt.Fprintln(out, "no path")
			return nil
		}
		return printPaths(out, g, []path.Path{p})
	default:
		return fmt.Errorf("no report requested: specify --from/--to, --fanout, --fanin, --startpoints, --endpoints, --dumpnames, --reportlogic, or --filenames")
	}
}

// vertexLabel renders a vertex the way reports identify it: its name if it
// has one, otherwise its kind and source location.
func vertexLabel(g *core.Graph, id core.VertexID) string {
	v := g.Vertex(id)
	if v.Name != "" {
		return v.Name
	}
	return fmt.Sprintf("%s@%s", v.Kind, v.Loc)
}

func printPaths(out io.Writer, g *core.Graph, paths []path.Path) error {
	if len(paths) == 0 {
		fmt.Fprintln(out, "no path")
		return nil
	}
	for _, p := range paths {
		ids := p.Vertices()
		for i, id := range ids {
			if i > 0 {
				fmt.Fprint(out, " -> ")
			}
			fmt.Fprint(out, vertexLabel(g, id))
		}
		fmt.Fprintln(out)
	}
	return nil
}

func printVertexList(out io.Writer, g *core.Graph, pred func(*vertex.Vertex) bool) error {
	var names []string
	for _, id := range g.AllVertices() {
		v := g.Vertex(id)
		if pred(&v) {
			names = append(names, vertexLabel(g, id))
		}
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(out, n)
	}
	return nil
}

func printFiles(out io.Writer, g *core.Graph) error {
	for _, f := range g.Files {
		fmt.Fprintln(out, f.Path)
	}
	return nil
}
