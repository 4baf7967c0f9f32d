package scanners

type Line struct {
	Path       string
	LineNumber int
	Content    []byte
}

// Match is an occurrence within a line, Content[Start:End].
type Match struct {
	Line Line

	Start int
	End   int
}

func (m Match) Text() string {
	return string((m.Line.Content)[m.Start:m.End])
}

// Column is the 1-based column of the first matched byte.
func (m Match) Column() int {
	return m.Start + 1
}
