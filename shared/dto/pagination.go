package dto

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func (p *Pagination) FromQuery(params QueryParams, total int) {
	p.Page = params.Page
	p.Limit = params.Limit
	p.Total = total

	if total == 0 || params.Limit <= 0 {
		p.Pages = 1

		return
	}

	p.Pages = (total + params.Limit - 1) / params.Limit
}
