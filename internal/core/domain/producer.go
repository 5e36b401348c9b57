package domain

// Producer is a grape producer (cooperado) registered with the cooperative.
type Producer struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	GGN      string `json:"ggn"` // GlobalG.A.P. number, optional and unique when present
	Initials string `json:"sigla"`
	Phone    string `json:"telefone"`
	Address  string `json:"endereco"`
	AuditFields
}

// Variety is a grape variety grown on the farms.
type Variety struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
	AuditFields
}

// Farm is a parcel of land owned by a producer and planted with a single variety.
type Farm struct {
	ID         int64    `json:"id"`
	Name       string   `json:"nome"`
	ParcelArea string   `json:"area_parcela"`
	TotalArea  *float64 `json:"area_total"`
	ProducerID int64    `json:"produtor_id"`
	VarietyID  int64    `json:"variedade_id"`
	// VarietyName is filled on joined reads, zero otherwise.
	VarietyName string `json:"variedade_nome,omitempty"`
	AuditFields
}

// GrapeClassification describes a commercial grape classification and its
// packaging attributes.
type GrapeClassification struct {
	ID             int64  `json:"id"`
	Classification string `json:"classificacao"`
	Box            string `json:"caixa"`
	Strap          string `json:"cinta"`
	Weight         string `json:"peso"`
	Cup            string `json:"cumbuca"`
	AuditFields
}
