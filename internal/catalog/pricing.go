package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

const (
	fieldVehicleSize = "vehicle_size"
	fieldPackage     = "package"
	fieldExtras      = "extras"
)

// pricer правила одного вида ценообразования
type pricer struct {
	check    func(def serviceDef) error
	fields   func(def serviceDef) []Field
	validate func(def serviceDef, formData map[string]any) error
	price    func(def serviceDef, formData map[string]any) float64
}

var pricers = map[domain.PricingKind]pricer{
	domain.PricingPerUnit:        tablePricer,
	domain.PricingSizeTable:      tablePricer,
	domain.PricingVehiclePackage: vehiclePricer,
	domain.PricingFixed:          fixedPricer,
	domain.PricingQuote:          flatPricer(domain.QuotePrice),
	domain.PricingDefault:        flatPricer(domain.DefaultEstimatedPrice),
}

// tablePricer цена из таблицы по значению одной опции (места, размер)
var tablePricer = pricer{
	check: func(def serviceDef) error {
		if def.Field == "" || len(def.Table) == 0 {
			return errors.New("table pricing needs field and table")
		}
		return nil
	},
	fields: func(def serviceDef) []Field {
		return []Field{{
			Name:     def.Field,
			Label:    def.Label,
			Type:     "select",
			Required: true,
			Options:  tableOptions(def.Table),
		}}
	},
	validate: func(def serviceDef, formData map[string]any) error {
		if err := validateDeclared(def, formData); err != nil {
			return err
		}
		value, ok := option(formData, def.Field)
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingOption, def.Field)
		}
		if _, ok := def.Table[value]; !ok {
			return fmt.Errorf("%w: %s=%s", ErrInvalidOption, def.Field, value)
		}
		return nil
	},
	price: func(def serviceDef, formData map[string]any) float64 {
		value, _ := option(formData, def.Field)
		return def.Table[value]
	},
}

// vehiclePricer размер автомобиля x пакет + фиксированные доплаты
var vehiclePricer = pricer{
	check: func(def serviceDef) error {
		if len(def.Packages) == 0 {
			return errors.New("vehicle pricing needs packages")
		}
		return nil
	},
	fields: func(def serviceDef) []Field {
		tiers := map[string]struct{}{}
		for _, byTier := range def.Packages {
			for tier := range byTier {
				tiers[tier] = struct{}{}
			}
		}
		fields := []Field{
			{Name: fieldVehicleSize, Label: "Taille du véhicule", Type: "select", Required: true, Options: sortedKeys(def.Packages)},
			{Name: fieldPackage, Label: "Formule", Type: "select", Required: true, Options: sortedKeys(tiers)},
		}
		if len(def.Extras) > 0 {
			fields = append(fields, Field{Name: fieldExtras, Label: "Options", Type: "multiselect", Options: sortedKeys(def.Extras)})
		}
		return fields
	},
	validate: func(def serviceDef, formData map[string]any) error {
		if err := validateDeclared(def, formData); err != nil {
			return err
		}
		size, ok := option(formData, fieldVehicleSize)
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingOption, fieldVehicleSize)
		}
		byTier, ok := def.Packages[size]
		if !ok {
			return fmt.Errorf("%w: %s=%s", ErrInvalidOption, fieldVehicleSize, size)
		}
		tier, ok := option(formData, fieldPackage)
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingOption, fieldPackage)
		}
		if _, ok := byTier[tier]; !ok {
			return fmt.Errorf("%w: %s=%s", ErrInvalidOption, fieldPackage, tier)
		}
		for _, extra := range options(formData, fieldExtras) {
			if _, ok := def.Extras[extra]; !ok {
				return fmt.Errorf("%w: %s=%s", ErrInvalidOption, fieldExtras, extra)
			}
		}
		return nil
	},
	price: func(def serviceDef, formData map[string]any) float64 {
		size, _ := option(formData, fieldVehicleSize)
		tier, _ := option(formData, fieldPackage)
		total := def.Packages[size][tier]
		for _, extra := range options(formData, fieldExtras) {
			total += def.Extras[extra]
		}
		return total
	},
}

var fixedPricer = pricer{
	check: func(def serviceDef) error {
		if def.Price <= 0 {
			return errors.New("fixed pricing needs a positive price")
		}
		return nil
	},
	fields:   declaredOnly,
	validate: validateDeclared,
	price: func(def serviceDef, _ map[string]any) float64 {
		return def.Price
	},
}

// flatPricer одна и та же цена независимо от опций
func flatPricer(amount float64) pricer {
	return pricer{
		check:    func(serviceDef) error { return nil },
		fields:   declaredOnly,
		validate: validateDeclared,
		price: func(serviceDef, map[string]any) float64 {
			return amount
		},
	}
}

func declaredOnly(serviceDef) []Field {
	return nil
}

// validateDeclared проверяет обязательные поля, объявленные в каталоге
func validateDeclared(def serviceDef, formData map[string]any) error {
	for _, f := range def.Fields {
		if !f.Required {
			continue
		}
		if _, ok := option(formData, f.Name); !ok {
			return fmt.Errorf("%w: %s", ErrMissingOption, f.Name)
		}
	}
	return nil
}

// option значение опции строкой; числа из JSON приводятся к "3", а не "3.000000"
func option(formData map[string]any, name string) (string, bool) {
	raw, ok := formData[name]
	if !ok || raw == nil {
		return "", false
	}
	var value string
	switch v := raw.(type) {
	case string:
		value = v
	case float64:
		value = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		value = strconv.Itoa(v)
	case int64:
		value = strconv.FormatInt(v, 10)
	default:
		value = fmt.Sprint(v)
	}
	if value == "" {
		return "", false
	}
	return value, true
}

// options значения множественной опции
func options(formData map[string]any, name string) []string {
	switch v := formData[name].(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			result = append(result, fmt.Sprint(item))
		}
		return result
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

// tableOptions ключи таблицы по возрастанию цены
func tableOptions(table map[string]float64) []string {
	keys := sortedKeys(table)
	sort.SliceStable(keys, func(i, j int) bool {
		return table[keys[i]] < table[keys[j]]
	})
	return keys
}
