package ini

import "sort"

// Document 表示解析完成的 INI 文档：section 名称到 Section 的映射。
// 文档构建完成后只读，没有任何修改接口。
type Document struct {
	sections map[string]*Section
}

// Section 是一组键值对，键在同一 section 内唯一。
type Section struct {
	name   string
	values map[string]string
}

// GetSection 按名称查找 section，不存在时返回 (nil, false)。
func (d *Document) GetSection(name string) (*Section, bool) {
	if d == nil {
		return nil, false
	}
	s, ok := d.sections[name]
	return s, ok
}

// Len returns the number of sections.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.sections)
}

// SectionNames returns section names in ordinal order.
func (d *Document) SectionNames() []string {
	if d == nil {
		return nil
	}
	return sortedKeys(d.sections)
}

// Equal reports whether both documents hold the same sections with the same entries.
func (d *Document) Equal(other *Document) bool {
	if d.Len() != other.Len() {
		return false
	}
	for _, name := range d.SectionNames() {
		o, ok := other.GetSection(name)
		if !ok || !d.sections[name].Equal(o) {
			return false
		}
	}
	return true
}

// Name 返回 section 标题。
func (s *Section) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Get 返回 key 对应的原始值，不存在时返回 ("", false)。
func (s *Section) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Keys returns the section keys in ordinal order.
func (s *Section) Keys() []string {
	if s == nil {
		return nil
	}
	return sortedKeys(s.values)
}

// Map returns a copy of the entries; changes to it do not affect the section.
func (s *Section) Map() map[string]string {
	out := make(map[string]string, s.Len())
	if s == nil {
		return out
	}
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Equal compares entries only; the section name is not part of equality.
func (s *Section) Equal(other *Section) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, key := range s.Keys() {
		v, ok := other.Get(key)
		if !ok || v != s.values[key] {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
