package constant

var (
	Version = "v0.4.1"
	Commit  = ""
)
