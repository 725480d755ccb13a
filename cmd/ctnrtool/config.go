package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// Config mirrors the teacher's own ReadConfig/Config pair (config.go),
// trimmed to what this tool needs: a literal graph and separator tree
// described inline, since real graph parsing and nested-dissection
// construction are out of scope (spec §1) and this tool exists only to
// exercise the index end to end.
type Config struct {
	K         int32            `yaml:"k"`
	Workers   int              `yaml:"workers"`
	IndexPath string           `yaml:"index-path"`
	Graph     GraphOptions     `yaml:"graph"`
	RankOrder []int32          `yaml:"rank-order"`
	Separator SeparatorOptions `yaml:"separator"`
}

type GraphOptions struct {
	VertexCount int32      `yaml:"vertex-count"`
	Edges       [][3]int32 `yaml:"edges"` // [u, v, weight], treated as undirected
}

type SeparatorOptions struct {
	FirstSeparatorVertex []int32 `yaml:"first-separator-vertex"`
	LastSeparatorVertex  []int32 `yaml:"last-separator-vertex"`
	LeftChild            []int32 `yaml:"left-child"`
	RightSibling         []int32 `yaml:"right-sibling"`
	Order                []int32 `yaml:"order"`
}

func ReadConfig(file string) Config {
	slog.Info("reading config file", slog.String("file", file))
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	return config
}
