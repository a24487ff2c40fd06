package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

//go:embed catalog.toml
var defaultCatalog string

// Field опция услуги в форме клиента
type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"` // select, multiselect, number, text
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// Entry услуга каталога: описание, валидатор, калькулятор и схема формы
type Entry struct {
	Ref     domain.ServiceRef
	Pricing domain.PricingKind
	Fields  []Field

	def serviceDef
}

// Validate проверяет опции услуги
func (e *Entry) Validate(formData map[string]any) error {
	return pricers[e.Pricing].validate(e.def, formData)
}

// Price считает цену услуги; для услуг по смете всегда 0
func (e *Entry) Price(formData map[string]any) (float64, error) {
	if err := e.Validate(formData); err != nil {
		return 0, err
	}
	return pricers[e.Pricing].price(e.def, formData), nil
}

// Registry реестр услуг: id -> Entry
type Registry struct {
	entries map[string]*Entry
	order   []string
}

type catalogFile struct {
	Services []serviceDef `toml:"services"`
}

type serviceDef struct {
	ID          string                        `toml:"id"`
	Name        string                        `toml:"name"`
	Icon        string                        `toml:"icon"`
	Description string                        `toml:"description"`
	Pricing     string                        `toml:"pricing"`
	Price       float64                       `toml:"price"`
	Field       string                        `toml:"field"`
	Label       string                        `toml:"label"`
	Table       map[string]float64            `toml:"table"`
	Packages    map[string]map[string]float64 `toml:"packages"`
	Extras      map[string]float64            `toml:"extras"`
	Fields      []fieldDef                    `toml:"fields"`
}

type fieldDef struct {
	Name     string   `toml:"name"`
	Label    string   `toml:"label"`
	Type     string   `toml:"type"`
	Required bool     `toml:"required"`
	Options  []string `toml:"options"`
}

// NewDefault загружает встроенный каталог
func NewDefault() (*Registry, error) {
	return Parse(defaultCatalog)
}

// Parse разбирает каталог в формате TOML
func Parse(data string) (*Registry, error) {
	var file catalogFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	r := &Registry{entries: make(map[string]*Entry, len(file.Services))}
	for _, def := range file.Services {
		entry, err := buildEntry(def)
		if err != nil {
			return nil, err
		}
		if _, exists := r.entries[def.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate service id %q", ErrInvalidCatalog, def.ID)
		}
		r.entries[def.ID] = entry
		r.order = append(r.order, def.ID)
	}

	return r, nil
}

func buildEntry(def serviceDef) (*Entry, error) {
	if def.ID == "" || def.Name == "" {
		return nil, fmt.Errorf("%w: service without id or name", ErrInvalidCatalog)
	}

	kind := domain.PricingKind(def.Pricing)
	if kind == "" {
		kind = domain.PricingDefault
	}
	p, ok := pricers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: service %q has unknown pricing %q", ErrInvalidCatalog, def.ID, def.Pricing)
	}
	if err := p.check(def); err != nil {
		return nil, fmt.Errorf("%w: service %q: %v", ErrInvalidCatalog, def.ID, err)
	}

	fields := p.fields(def)
	for _, f := range def.Fields {
		fields = append(fields, Field(f))
	}

	return &Entry{
		Ref: domain.ServiceRef{
			ID:          def.ID,
			Name:        def.Name,
			Icon:        def.Icon,
			Description: def.Description,
			QuoteOnly:   kind == domain.PricingQuote,
		},
		Pricing: kind,
		Fields:  fields,
		def:     def,
	}, nil
}

// Get возвращает услугу по id
func (r *Registry) Get(id string) (*Entry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	return entry, nil
}

// List возвращает услуги в порядке каталога
func (r *Registry) List() []*Entry {
	result := make([]*Entry, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.entries[id])
	}
	return result
}

// QuoteOnlyIDs услуги, цена которых определяется сметой
func (r *Registry) QuoteOnlyIDs() []string {
	var ids []string
	for _, id := range r.order {
		if r.entries[id].Ref.QuoteOnly {
			ids = append(ids, id)
		}
	}
	return ids
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
