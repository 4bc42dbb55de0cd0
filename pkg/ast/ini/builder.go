package ini

// Builder 逐步构建 Document，供解析器使用。
// 重复的 section 或 key 不会覆盖已有内容，而是通过返回值告知调用方。
type Builder struct {
	doc     *Document
	current *Section
}

// NewBuilder 创建空的 Builder。
func NewBuilder() *Builder {
	return &Builder{doc: &Document{sections: make(map[string]*Section)}}
}

// AddSection inserts an empty section and makes it current.
// It returns false, leaving the builder unchanged, if the name is already taken.
func (b *Builder) AddSection(name string) bool {
	if _, exists := b.doc.sections[name]; exists {
		return false
	}
	s := &Section{name: name, values: make(map[string]string)}
	b.doc.sections[name] = s
	b.current = s
	return true
}

// Current returns the section entries are added to, or nil before the first AddSection.
func (b *Builder) Current() *Section {
	return b.current
}

// AddEntry inserts key=value into the current section.
// It returns false if there is no current section or the key already exists.
func (b *Builder) AddEntry(key, value string) bool {
	if b.current == nil {
		return false
	}
	if _, exists := b.current.values[key]; exists {
		return false
	}
	b.current.values[key] = value
	return true
}

// Document hands over the built document. The builder must not be used afterwards.
func (b *Builder) Document() *Document {
	doc := b.doc
	b.doc = nil
	b.current = nil
	return doc
}
