// Command ctnrtool drives the CTNR index from the outside: build an
// index from a literal graph/separator description and persist it, or
// load a persisted index and answer a single query. It is the ambient
// CLI surface spec.md places out of scope (§1), trimmed from the
// teacher's own main.go/config.go (no HTTP server, no OSM parsing -
// this tool's graph is always the literal refcch fixture, since real
// graph parsing and CCH construction stay external collaborators).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lindqvist-dev/ctnr/ctnr"
	"github.com/lindqvist-dev/ctnr/logging"
	"github.com/lindqvist-dev/ctnr/refcch"
	"golang.org/x/exp/slog"
)

func main() {
	slog.SetDefault(logging.NewDefault(os.Stdout, slog.LevelInfo))

	if len(os.Args) < 3 {
		fmt.Println("usage: ctnrtool build <config.yaml> | ctnrtool query <config.yaml> <s> <t>")
		os.Exit(1)
	}

	cmd := os.Args[1]
	configPath := os.Args[2]
	config := ReadConfig(configPath)

	switch cmd {
	case "build":
		runBuild(config)
	case "query":
		if len(os.Args) < 5 {
			fmt.Println("usage: ctnrtool query <config.yaml> <s> <t>")
			os.Exit(1)
		}
		s, err := strconv.Atoi(os.Args[3])
		if err != nil {
			panic(err)
		}
		t, err := strconv.Atoi(os.Args[4])
		if err != nil {
			panic(err)
		}
		runQuery(config, int32(s), int32(t))
	default:
		fmt.Printf("unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func buildGraph(config Config) *refcch.Graph {
	graph := refcch.NewGraph(config.Graph.VertexCount)
	for _, e := range config.Graph.Edges {
		graph.AddUndirected(e[0], e[1], e[2])
	}
	return graph
}

func buildSeparatorTree(config Config) *refcch.SeparatorTree {
	return refcch.NewSeparatorTree(
		config.Separator.FirstSeparatorVertex,
		config.Separator.LastSeparatorVertex,
		config.Separator.LeftChild,
		config.Separator.RightSibling,
		config.Separator.Order,
	)
}

func runBuild(config Config) {
	graph := buildGraph(config)
	ch := refcch.BuildCH(graph, config.RankOrder)
	sep := buildSeparatorTree(config)
	local := refcch.NewEliminationTreeQuery(ch)

	idx := ctnr.New()
	idx.Preprocess(sep, config.K)
	if err := idx.Customize(ch, ch, refcch.NewQueryFactory(ch), local, config.Workers); err != nil {
		slog.Error("customize failed: " + err.Error())
		panic(err)
	}

	out, err := os.Create(config.IndexPath)
	if err != nil {
		slog.Error("failed to create index file: " + err.Error())
		panic(err)
	}
	defer out.Close()

	if err := idx.WriteTo(out); err != nil {
		slog.Error("failed to write index: " + err.Error())
		panic(err)
	}
	slog.Info("wrote index", slog.String("path", config.IndexPath))
}

func runQuery(config Config, s, t int32) {
	graph := buildGraph(config)
	ch := refcch.BuildCH(graph, config.RankOrder)
	sep := buildSeparatorTree(config)
	local := refcch.NewEliminationTreeQuery(ch)

	in, err := os.Open(config.IndexPath)
	if err != nil {
		slog.Error("failed to open index file: " + err.Error())
		panic(err)
	}
	defer in.Close()

	idx, err := ctnr.ReadFrom(in, sep, config.K, ch, local)
	if err != nil {
		slog.Error("failed to read index: " + err.Error())
		panic(err)
	}

	dist, err := idx.Query(ch.OriginalToRank(s), ch.OriginalToRank(t))
	if err != nil {
		slog.Error("query failed: " + err.Error())
		panic(err)
	}
	fmt.Printf("%d\n", dist)
}
