package dto

// PageRequest paginación para listados (página 1-based).
type PageRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit" validate:"min=1,max=100"`
	Filter string `query:"filter"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
}

// Pagination metadatos de página en respuestas. nextPage/previousPage van en
// null cuando no hay más páginas en esa dirección.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	Limit        int   `json:"limit"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	NextPage     *int  `json:"nextPage"`
	PreviousPage *int  `json:"previousPage"`
}

// NewPagination calcula los metadatos a partir de la página pedida y el total.
func NewPagination(page, limit int, totalItems int64) Pagination {
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	p := Pagination{
		CurrentPage: page,
		Limit:       limit,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
	}
	if page < totalPages {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		p.PreviousPage = &prev
	}
	return p
}

// Envelope cuerpo uniforme de todas las respuestas HTTP.
type Envelope struct {
	Result     bool        `json:"result"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Status     int         `json:"status,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}
