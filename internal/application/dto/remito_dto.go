package dto

import "time"

// RemitoItemRequest ítem embebido en la creación o el parche de un remito.
// El id es opcional: el editor lo envía para conservar ítems existentes;
// sin id el sistema asigna uno nuevo.
type RemitoItemRequest struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" validate:"required"`
	Quantity     int      `json:"quantity" validate:"required,min=1"`
	Observations string   `json:"observations"`
	Photos       []string `json:"photos"`
}

// CreateRemitoRequest entrada para crear un remito.
// El estado es opcional (por defecto "pending"); id, número y fecha de
// creación los asigna el sistema.
type CreateRemitoRequest struct {
	Origin            string              `json:"origin" validate:"required,oneof=factory warehouse"`
	DestinationID     string              `json:"destination_id" validate:"required"`
	Items             []RemitoItemRequest `json:"items" validate:"required,min=1,dive"`
	Status            string              `json:"status" validate:"omitempty,oneof=pending in-transit received"`
	SenderSignature   string              `json:"sender_signature"`
	ReceiverSignature string              `json:"receiver_signature"`
}

// UpdateRemitoRequest parche explícito sobre un remito existente: los campos
// nil se preservan. Number, CreatedAt y CreatedByID no son parcheables.
type UpdateRemitoRequest struct {
	Origin            *string              `json:"origin" validate:"omitempty,oneof=factory warehouse"`
	DestinationID     *string              `json:"destination_id" validate:"omitempty,min=1"`
	Items             *[]RemitoItemRequest `json:"items" validate:"omitempty,min=1,dive"`
	Status            *string              `json:"status" validate:"omitempty,oneof=pending in-transit received"`
	SenderSignature   *string              `json:"sender_signature"`
	ReceiverSignature *string              `json:"receiver_signature"`
}

// RemitoFilter predicados opcionales combinados con AND lógico.
// Las fechas usan formato 2006-01-02; EndDate es inclusivo hasta fin de día.
type RemitoFilter struct {
	WorkID    string `query:"work_id"`
	UserID    string `query:"user_id"`
	Status    string `query:"status"`
	Item      string `query:"item"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// RemitoItemResponse ítem embebido en la salida de un remito.
type RemitoItemResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Quantity     int      `json:"quantity"`
	Observations string   `json:"observations,omitempty"`
	Photos       []string `json:"photos"`
}

// RemitoResponse salida de un remito.
type RemitoResponse struct {
	ID                string               `json:"id"`
	Number            string               `json:"number"`
	Origin            string               `json:"origin"`
	DestinationID     string               `json:"destination_id"`
	Items             []RemitoItemResponse `json:"items"`
	CreatedByID       string               `json:"created_by_id"`
	Status            string               `json:"status"`
	SenderSignature   string               `json:"sender_signature,omitempty"`
	ReceiverSignature string               `json:"receiver_signature,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}
