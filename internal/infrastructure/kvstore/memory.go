package kvstore

import "context"

// Memory es un KV en memoria, sin durabilidad. Se usa en tests y como
// backend efímero cuando no se configura una ruta de almacenamiento.
type Memory struct {
	data map[string][]byte
}

// NewMemory construye el KV en memoria.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get devuelve el valor de key, o (nil, nil) si no existe.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put reemplaza el valor de key.
func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}
