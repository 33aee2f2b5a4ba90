// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Persona is the analytical lens applied to a transcript. It decides which
// persona-specific insight block the analysis must carry.
type Persona string

const (
	// PersonaGeneral is a balanced, general-purpose analysis. It is the
	// default persona of an empty workspace.
	PersonaGeneral Persona = "General"

	// PersonaSales evaluates a sales call and requires SalesCoachingInsights.
	PersonaSales Persona = "Sales"

	// PersonaSupport diagnoses a technical support call and requires
	// SupportInsights.
	PersonaSupport Persona = "Support"

	// PersonaCustomerService evaluates service quality of an interaction.
	PersonaCustomerService Persona = "CustomerService"

	// PersonaPersonal analyses an informal personal conversation.
	PersonaPersonal Persona = "Personal"
)

// Personas lists every persona in presentation order.
var Personas = []Persona{
	PersonaGeneral,
	PersonaSales,
	PersonaSupport,
	PersonaCustomerService,
	PersonaPersonal,
}

var personaLabels = map[Persona]string{
	PersonaGeneral:         "General Analyst",
	PersonaSales:           "Sales Coach",
	PersonaSupport:         "Technical Support Supervisor",
	PersonaCustomerService: "Customer Service",
	PersonaPersonal:        "Personal Chat",
}

// Label returns the human-readable persona name used in prompts and exports.
func (p Persona) Label() string {
	if label, ok := personaLabels[p]; ok {
		return label
	}
	return string(p)
}

// IsValid reports whether p is one of the known personas.
func (p Persona) IsValid() bool {
	_, ok := personaLabels[p]
	return ok
}

// ParsePersona resolves either an enum value ("Sales") or a display label
// ("Sales Coach") into a Persona.
func ParsePersona(s string) (Persona, error) {
	if p := Persona(s); p.IsValid() {
		return p, nil
	}
	for p, label := range personaLabels {
		if label == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPersona, s)
}

// UnmarshalJSON accepts both enum values and legacy display labels, so
// history written by older builds keeps loading.
func (p *Persona) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParsePersona(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
