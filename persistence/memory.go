package persistence

// MemoryItems is an in-process ItemStore used when the data directory is
// unavailable. Nothing survives a restart.
type MemoryItems struct {
	items map[string][]byte
}

func NewMemoryItems() *MemoryItems {
	return &MemoryItems{items: make(map[string][]byte)}
}

func (m *MemoryItems) LoadItem(itemKey string) ([]byte, error) {
	return m.items[itemKey], nil
}

func (m *MemoryItems) SaveItem(itemKey string, data []byte) error {
	m.items[itemKey] = append([]byte(nil), data...)
	return nil
}
