package model

// Project is a portfolio entry. Projects are seeded out of band; the API only
// reads them. The storage identifier is deliberately not a field.
type Project struct {
	Title            string   `json:"title" validate:"required"`
	Slug             string   `json:"slug" validate:"required"`
	Category         string   `json:"category" validate:"required"`
	Tags             []string `json:"tags"`
	ShortDescription string   `json:"short_description" validate:"required,max=180"`
	Description      string   `json:"description" validate:"required"`
	Images           []string `json:"images" validate:"dive,http_url"`
	Tools            []string `json:"tools"`
	Highlight        bool     `json:"highlight"`
}

// Validate checks the project against the collection schema.
func (p *Project) Validate() error {
	return validateStruct("Project", p)
}

// Normalize replaces nil lists with empty ones so they encode as [].
func (p *Project) Normalize() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Tools == nil {
		p.Tools = []string{}
	}
}
