package step

import (
	"fmt"
	"slices"

	"github.com/MeKo-Tech/terragen/internal/grid"
)

// CreateAttribute adds a new attribute to the map with every cell set to
// a default value.
type CreateAttribute struct {
	name         string
	defaultValue uint8
}

// NewCreateAttribute creates the step.
func NewCreateAttribute(name string, defaultValue uint8) CreateAttribute {
	return CreateAttribute{name: name, defaultValue: defaultValue}
}

// AttributeName returns the name of the attribute the step creates.
func (s CreateAttribute) AttributeName() string {
	return s.name
}

func (s CreateAttribute) Name() string {
	return "create attribute"
}

func (s CreateAttribute) Run(m *grid.Map2d) error {
	_, err := m.CreateAttribute(s.name, s.defaultValue)
	return err
}

func (CreateAttribute) sealedStep() {}

// CreateAttributeData is the serializable mirror of a CreateAttribute.
type CreateAttributeData struct {
	Name    string `json:"name"`
	Default uint8  `json:"default"`
}

// ToStep validates that the name is still free and appends it to the
// working attribute name list.
func (d CreateAttributeData) ToStep(attributeNames *[]string) (CreateAttribute, error) {
	if slices.Contains(*attributeNames, d.Name) {
		return CreateAttribute{}, fmt.Errorf("create attribute: %q already exists", d.Name)
	}
	*attributeNames = append(*attributeNames, d.Name)
	return NewCreateAttribute(d.Name, d.Default), nil
}

// Data returns the serializable mirror of the step.
func (s CreateAttribute) Data() CreateAttributeData {
	return CreateAttributeData{Name: s.name, Default: s.defaultValue}
}
