package proposalapi

import (
	"encoding/json"
	"loanproposal/cmd/internal/domain/entity"
	"strconv"
)

type proposalRequest struct {
	FullName string  `json:"full_name"`
	CPF      string  `json:"cpf"`
	Address  string  `json:"address"`
	Value    float64 `json:"value"`
}

type proposalResponse struct {
	ID        json.Number `json:"id"`
	FullName  string      `json:"full_name"`
	CPF       string      `json:"cpf"`
	Address   string      `json:"address"`
	Value     json.Number `json:"value"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"created_at"`
}

// ToDomain converts the API shape. Django serializes decimals as strings, so
// numbers are accepted in either form and left at zero when unparsable.
func (p *proposalResponse) ToDomain() *entity.Proposal {
	id, _ := strconv.ParseInt(p.ID.String(), 10, 64)
	value, _ := strconv.ParseFloat(p.Value.String(), 64)

	return &entity.Proposal{
		ID:        id,
		FullName:  p.FullName,
		CPF:       p.CPF,
		Address:   p.Address,
		Value:     value,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}
