package config

var Network string

var (
	Node       string
	JSONOutput bool
)
