package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderTemplate represents a reusable order configuration that captures
// an SKU vector and pack tuning but not a packing result.
type OrderTemplate struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
	SKUs        []SKU      `json:"skus"`
	Config      PackConfig `json:"config"`
}

// NewOrderTemplate creates a new template from the given order data. It
// copies the SKU vector and config but intentionally excludes any packing
// result.
func NewOrderTemplate(name, description string, skus []SKU, config PackConfig) OrderTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return OrderTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		SKUs:        copySKUs(skus),
		Config:      config,
	}
}

// ToSKUVector rebuilds the template's SKUs as new values (same ids, own
// OpaqueAttrs maps, unset sequence numbers), so the resulting vector is
// independent of the template it was built from.
func (t OrderTemplate) ToSKUVector() []SKU {
	out := make([]SKU, len(t.SKUs))
	for i, s := range t.SKUs {
		fresh := NewSKU(s.ID, s.Width, s.Height, s.Length, s.Weight, s.BundleQty, s.CanBeBottom, s.Description)
		for k, v := range s.OpaqueAttrs {
			fresh.OpaqueAttrs[k] = v
		}
		out[i] = fresh
	}
	return out
}

// TemplateStore holds a collection of order templates.
type TemplateStore struct {
	Templates []OrderTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []OrderTemplate{}}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t OrderTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *OrderTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for display.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given
// name, or nil.
func (ts *TemplateStore) FindByName(name string) *OrderTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// copySKUs creates a deep copy of an SKU slice, including OpaqueAttrs.
func copySKUs(skus []SKU) []SKU {
	if skus == nil {
		return []SKU{}
	}
	cp := make([]SKU, len(skus))
	for i, s := range skus {
		cp[i] = s
		if s.OpaqueAttrs != nil {
			cp[i].OpaqueAttrs = make(map[string]any, len(s.OpaqueAttrs))
			for k, v := range s.OpaqueAttrs {
				cp[i].OpaqueAttrs[k] = v
			}
		}
	}
	return cp
}
