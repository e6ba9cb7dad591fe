package engine

import "github.com/phyten/hlgrep/internal/model"

// Options は検索 1 回分の指定です。
type Options struct {
	Pattern    string
	Regex      bool // treat Pattern as a regular expression
	IgnoreCase bool
}

// Result は検索結果です。
type Result struct {
	Matches []model.MatchLine `json:"matches" yaml:"matches"`
	Total   int               `json:"total" yaml:"total"`
}
