package entity

import "time"

// Estados válidos para Remito.
const (
	StatusPending   = "pending"
	StatusInTransit = "in-transit"
	StatusReceived  = "received"
)

// Orígenes válidos para Remito.
const (
	OriginFactory   = "factory"
	OriginWarehouse = "warehouse"
)

// RemitoItem es un valor embebido dentro de un Remito (no es entidad propia).
// Photos guarda data-URLs opacas; el núcleo nunca decodifica su contenido.
type RemitoItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Quantity     int      `json:"quantity"`
	Observations string   `json:"observations,omitempty"`
	Photos       []string `json:"photos"`
}

// Remito es la raíz del agregado: un remito de envío de materiales desde un
// origen hacia una obra, con sus ítems, fotos y firmas.
//
// Number es inmutable una vez asignado y no se reutiliza aunque el remito se
// elimine. CreatedAt se asigna solo en la creación.
type Remito struct {
	ID                string       `json:"id"`
	Number            string       `json:"number"`
	Origin            string       `json:"origin"` // factory, warehouse
	DestinationID     string       `json:"destination_id"`
	Items             []RemitoItem `json:"items"`
	CreatedByID       string       `json:"created_by_id"`
	Status            string       `json:"status"` // pending, in-transit, received
	SenderSignature   string       `json:"sender_signature,omitempty"`
	ReceiverSignature string       `json:"receiver_signature,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}

// FullySigned indica si ambas firmas están presentes. Un remito con ambas
// firmas queda bloqueado para edición en la capa de presentación.
func (r Remito) FullySigned() bool {
	return r.SenderSignature != "" && r.ReceiverSignature != ""
}

// NormalizeStatus aplica la invariante de firmas: con ambas firmas presentes
// el estado se fuerza a "received". Se invoca al crear y después de aplicar
// un parche de actualización, antes de persistir.
func (r *Remito) NormalizeStatus() {
	if r.Status == "" {
		r.Status = StatusPending
	}
	if r.FullySigned() {
		r.Status = StatusReceived
	}
}

// ValidStatus informa si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInTransit, StatusReceived:
		return true
	}
	return false
}

// ValidOrigin informa si s es uno de los orígenes conocidos.
func ValidOrigin(s string) bool {
	return s == OriginFactory || s == OriginWarehouse
}
