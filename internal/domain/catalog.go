package domain

// Category groups tickets within a tenant.
type Category struct {
	ID          string  `json:"id"`
	TenantID    string  `json:"tenant_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// EscalationType labels the kinds of escalation a tenant supports.
type EscalationType struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Label    string `json:"label"`
}

// TemplateType enumerates the delivery channels a template targets.
type TemplateType string

const (
	TemplateTypeEmail TemplateType = "email"
	TemplateTypeSMS   TemplateType = "sms"
	TemplateTypePush  TemplateType = "push"
)

// Valid reports whether the type is one of the known channels.
func (t TemplateType) Valid() bool {
	switch t {
	case TemplateTypeEmail, TemplateTypeSMS, TemplateTypePush:
		return true
	}
	return false
}

// Template is a canned response body tied to a category.
type Template struct {
	ID         string       `json:"id"`
	TenantID   string       `json:"tenant_id"`
	CategoryID string       `json:"category_id"`
	Title      string       `json:"title"`
	Body       string       `json:"body"`
	Type       TemplateType `json:"type"`
}
