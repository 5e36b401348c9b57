package dto

// CreateProducerRequest defines the data needed to register a producer.
type CreateProducerRequest struct {
	Name     string `json:"nome" binding:"required"`
	GGN      string `json:"ggn" binding:"omitempty,ggn"`
	Initials string `json:"sigla"`
	Phone    string `json:"telefone"`
	Address  string `json:"endereco"`
}

// UpdateProducerRequest defines the data allowed for updating a producer.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProducerRequest struct {
	Name     *string `json:"nome"`
	GGN      *string `json:"ggn" binding:"omitempty,ggn"`
	Initials *string `json:"sigla"`
	Phone    *string `json:"telefone"`
	Address  *string `json:"endereco"`
}
