package gerbilini

// Source is a named, in-memory INI document handed to a parser.
// The library never reads files itself; Name only labels errors and logs.
type Source struct {
	Name    string // Origin label (file path, "stdin", ...)
	Content []byte // Raw document text
}

// NewSource 用字符串内容创建 Source。
func NewSource(name, content string) *Source {
	return &Source{Name: name, Content: []byte(content)}
}

// Label returns Name, or "<memory>" when the source is unnamed.
func (s *Source) Label() string {
	if s == nil || s.Name == "" {
		return "<memory>"
	}
	return s.Name
}
