package kvstore

import (
	"context"
	"time"
)

// WithLatency envuelve un KV con una latencia artificial que modela el viaje
// de ida y vuelta a un backend remoto (~300ms por defecto en configuración).
//
// La espera es el único punto de suspensión: respeta la cancelación del
// contexto mientras dura, pero una vez iniciada la operación subyacente esta
// corre hasta completarse. No hay reintentos ni timeouts adicionales.
func WithLatency(kv KV, d time.Duration) KV {
	if d <= 0 {
		return kv
	}
	return &latencyKV{kv: kv, d: d}
}

type latencyKV struct {
	kv KV
	d  time.Duration
}

func (l *latencyKV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := l.wait(ctx); err != nil {
		return nil, err
	}
	return l.kv.Get(ctx, key)
}

func (l *latencyKV) Put(ctx context.Context, key string, value []byte) error {
	if err := l.wait(ctx); err != nil {
		return err
	}
	return l.kv.Put(ctx, key, value)
}

func (l *latencyKV) wait(ctx context.Context) error {
	t := time.NewTimer(l.d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
