// Package localstore implementa los puertos de persistencia del dominio
// sobre el espacio clave/valor local, con una colección JSON completa por
// entidad bajo su propia clave.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/obrasur/remitos-api/internal/domain"
	"github.com/obrasur/remitos-api/internal/infrastructure/kvstore"
)

// Claves del espacio de nombres, heredadas del backend simulado original.
const (
	KeyUsers   = "remitos_users"
	KeyWorks   = "remitos_works"
	KeyRemitos = "remitos_remitos"
	KeySession = "remitos_session"
)

// Collection expone get/put tipado de una colección completa.
//
// No hay escritura parcial ni transacciones: dos mutaciones intercaladas
// sobre la misma colección pueden pisarse (última escritura gana a nivel de
// colección entera). Limitación aceptada del entorno monoproceso; contra un
// almacén concurrente real habría que pasar a acceso por registro con
// control optimista de versión.
type Collection[T any] struct {
	kv  kvstore.KV
	key string
}

// NewCollection construye la colección tipada sobre kv bajo key.
func NewCollection[T any](kv kvstore.KV, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

// GetAll devuelve el snapshot completo de la colección (vacía si nunca se escribió).
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: decodificar %s: %v", domain.ErrStorage, c.key, err)
	}
	return items, nil
}

// SaveAll reemplaza el snapshot completo de la colección.
func (c *Collection[T]) SaveAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: codificar %s: %v", domain.ErrStorage, c.key, err)
	}
	if err := c.kv.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}
