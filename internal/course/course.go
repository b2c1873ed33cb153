// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package course loads course definitions and provides the built-in
// example course.
package course

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/syllabus/pkg/types"
)

// Load reads a YAML course definition from path.
func Load(path string) (*types.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading course file: %w", err)
	}
	var c types.Course
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing course file: %w", err)
	}
	return &c, nil
}

// Warnings lists fields that would render as empty text. Dates and topic
// wording are never checked.
func Warnings(c types.Course) []string {
	var w []string
	if strings.TrimSpace(c.Title) == "" {
		w = append(w, "course has no title")
	}
	if strings.TrimSpace(c.Instructor) == "" {
		w = append(w, "course has no instructor")
	}
	for i, e := range c.Schedule {
		if e.Date == "" && e.Topic == "" {
			w = append(w, fmt.Sprintf("schedule row %d is empty", i+1))
		}
	}
	return w
}

// Example returns the built-in example course.
func Example() types.Course {
	return types.Course{
		Title:       "Curso de Python Avançado",
		Description: "Aprenda conceitos avançados de Python para desenvolvimento profissional.",
		Instructor:  "Antônio Abrantes",
		Topics: []string{
			"Programação Funcional",
			"Programação Assíncrona",
			"Testes Automatizados",
			"Otimização de Código",
			"Integração Contínua",
		},
		Schedule: []types.ScheduleEntry{
			{Date: "01/01/2024", Topic: "Programação Funcional"},
			{Date: "08/01/2024", Topic: "Programação Assíncrona"},
			{Date: "15/01/2024", Topic: "Testes Automatizados"},
			{Date: "22/01/2024", Topic: "Otimização de Código"},
			{Date: "29/01/2024", Topic: "Integração Contínua"},
		},
	}
}
