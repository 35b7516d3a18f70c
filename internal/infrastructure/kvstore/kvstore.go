// Package kvstore implementa el espacio de nombres clave/valor donde el
// almacén local guarda cada colección como un snapshot JSON completo.
// Hace de backend simulado a la espera de un servidor real; puede perderse
// o vaciarse en cualquier momento sin que eso sea un error del sistema.
package kvstore

import "context"

// KV es el medio de almacenamiento: un valor opaco por clave.
type KV interface {
	// Get devuelve el valor de key, o (nil, nil) si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put reemplaza el valor de key de forma atómica desde el punto de
	// vista del llamador (proceso único, sin escritores concurrentes).
	Put(ctx context.Context, key string, value []byte) error
}
