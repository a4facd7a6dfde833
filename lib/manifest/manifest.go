// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest parses app manifest files.
//
// A manifest is the YAML document a project checks in to describe its
// application — name, description, and the container spec. "nimbus apps
// create --file" and "nimbus apps update --file" read it and translate
// it into the API request types.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nimbus-cloud/nimbus/lib/api"
)

// Manifest is the on-disk app description.
type Manifest struct {
	// Name is the application name. Required.
	Name string `yaml:"name"`

	// Description is optional human-readable text.
	Description string `yaml:"description"`

	// Spec describes what the app runs. At least one container is
	// required.
	Spec Spec `yaml:"spec"`
}

// Spec mirrors api.AppSpec in YAML form.
type Spec struct {
	Containers []Container `yaml:"containers"`
}

// Container is one container entry.
type Container struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	Port  uint16 `yaml:"port"`
}

// Parse decodes and validates a manifest document.
func Parse(data []byte) (*Manifest, error) {
	var parsed Manifest
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := parsed.validate(); err != nil {
		return nil, err
	}
	return &parsed, nil
}

// ReadFile reads and parses a manifest from disk.
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	parsed, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return parsed, nil
}

func (m *Manifest) validate() error {
	if m.Name == "" {
		return fmt.Errorf("manifest: name is required")
	}
	if len(m.Spec.Containers) == 0 {
		return fmt.Errorf("manifest: spec.containers must have at least one entry")
	}
	for index, container := range m.Spec.Containers {
		if container.Name == "" {
			return fmt.Errorf("manifest: spec.containers[%d]: name is required", index)
		}
		if container.Image == "" {
			return fmt.Errorf("manifest: spec.containers[%d] (%s): image is required", index, container.Name)
		}
		if container.Port == 0 {
			return fmt.Errorf("manifest: spec.containers[%d] (%s): port is required", index, container.Name)
		}
	}
	return nil
}

// AppSpec converts the manifest's spec into the API representation.
func (m *Manifest) AppSpec() api.AppSpec {
	spec := api.AppSpec{Containers: make([]api.ContainerSpec, 0, len(m.Spec.Containers))}
	for _, container := range m.Spec.Containers {
		spec.Containers = append(spec.Containers, api.ContainerSpec{
			Name:  container.Name,
			Image: container.Image,
			Port:  container.Port,
		})
	}
	return spec
}

// CreateRequest builds the create-app request from the manifest.
func (m *Manifest) CreateRequest() api.CreateAppRequest {
	request := api.CreateAppRequest{Name: m.Name, Spec: m.AppSpec()}
	if m.Description != "" {
		description := m.Description
		request.Description = &description
	}
	return request
}

// UpdateRequest builds the update-app request from the manifest. All
// manifest fields are sent — a manifest is a full description, not a
// patch.
func (m *Manifest) UpdateRequest() api.UpdateAppRequest {
	name := m.Name
	spec := m.AppSpec()
	request := api.UpdateAppRequest{Name: &name, Spec: &spec}
	if m.Description != "" {
		description := m.Description
		request.Description = &description
	}
	return request
}
