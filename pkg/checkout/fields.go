package checkout

import (
	"github.com/goliatone/go-storefront/pkg/input"
	"github.com/goliatone/go-storefront/pkg/mask"
)

// Input names, in render order.
const (
	FieldCEP        = "cep"
	FieldStreet     = "street"
	FieldNumber     = "number"
	FieldComplement = "complement"
	FieldDistrict   = "district"
	FieldCity       = "city"
	FieldUF         = "uf"
	FieldPhone      = "phone"
)

// Masks applied to the formatted inputs.
const (
	MaskCEP   = "00000-000"
	MaskUF    = "aa"
	MaskPhone = "(00) 00000-0000"
)

// CEPLength is the number of digits that completes a CEP and triggers the
// directory lookup.
var CEPLength = mask.MustCompile(MaskCEP).Placeholders()

// FieldNames lists every checkout input in render order.
func FieldNames() []string {
	return []string{
		FieldCEP,
		FieldStreet,
		FieldNumber,
		FieldComplement,
		FieldDistrict,
		FieldCity,
		FieldUF,
		FieldPhone,
	}
}

func fieldConfigs() map[string]input.Config {
	return map[string]input.Config{
		FieldCEP: {
			Name:         FieldCEP,
			Label:        "CEP",
			Placeholder:  "CEP",
			Mask:         MaskCEP,
			RemWidth:     12.5,
			InputMode:    "numeric",
			AutoComplete: "postal-code",
			Required:     true,
		},
		FieldStreet: {
			Name:         FieldStreet,
			Label:        "Rua",
			Placeholder:  "Rua",
			RemWidth:     35,
			AutoComplete: "address-line1",
			Required:     true,
		},
		FieldNumber: {
			Name:        FieldNumber,
			Label:       "Número",
			Placeholder: "Número",
			RemWidth:    12.5,
			Required:    true,
		},
		FieldComplement: {
			Name:         FieldComplement,
			Label:        "Complemento",
			Placeholder:  "Complemento",
			RemWidth:     21.75,
			Optional:     true,
			AutoComplete: "address-line2",
		},
		FieldDistrict: {
			Name:         FieldDistrict,
			Label:        "Bairro",
			Placeholder:  "Bairro",
			RemWidth:     12.5,
			AutoComplete: "address-level3",
			Required:     true,
		},
		FieldCity: {
			Name:         FieldCity,
			Label:        "Cidade",
			Placeholder:  "Cidade",
			RemWidth:     17.25,
			AutoComplete: "address-level2",
			Required:     true,
		},
		FieldUF: {
			Name:         FieldUF,
			Label:        "UF",
			Placeholder:  "UF",
			Mask:         MaskUF,
			RemWidth:     3.75,
			AutoComplete: "address-level1",
			Required:     true,
		},
		FieldPhone: {
			Name:         FieldPhone,
			Label:        "Telefone",
			Placeholder:  "(00) 00000-0000",
			Mask:         MaskPhone,
			RemWidth:     12.5,
			Type:         "tel",
			InputMode:    "tel",
			AutoComplete: "tel",
			Required:     true,
		},
	}
}
