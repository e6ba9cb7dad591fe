package config

// Config は 1 つの層（環境変数・フラグ）からの上書き値です。nil は未指定を表します。
type Config struct {
	Regex      *bool
	IgnoreCase *bool
	Color      *string
	Output     *string
	MaxColumns *int
	Count      *bool
	Verbose    *bool
}

// Settings は全層をマージした後の値です。
type Settings struct {
	Regex      bool
	IgnoreCase bool
	Color      string
	Output     string
	MaxColumns int
	Count      bool
	Verbose    bool
}

func Defaults() Settings {
	return Settings{
		Color:  "auto",
		Output: "text",
	}
}
