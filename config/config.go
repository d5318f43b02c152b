// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package config exports recorded graph structure to YAML and validates it.
//
// A graph configuration captures names, modes, module port signatures and the
// recorded dataflow; it does not capture module internals, so importing a
// configuration validates structure rather than re-creating live modules.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/weave-ml/weave/graph"
	"github.com/weave-ml/weave/neural"
)

// PortConfig describes one declared port.
type PortConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// ModuleConfig describes one module's signature.
type ModuleConfig struct {
	Name        string       `yaml:"name"`
	InputPorts  []PortConfig `yaml:"input_ports,omitempty"`
	OutputPorts []PortConfig `yaml:"output_ports,omitempty"`
}

// StepConfig describes one recorded invocation. Args maps the consumed input
// port to its source as "producer.port"; deferred graph bindings are rendered
// as "graph:name".
type StepConfig struct {
	Module string            `yaml:"module"`
	Args   map[string]string `yaml:"args,omitempty"`
}

// OutputConfig describes one bound graph output.
type OutputConfig struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"` // "producer.port"
}

// GraphConfig is the YAML-serializable structure of one graph.
type GraphConfig struct {
	Name    string         `yaml:"name"`
	Mode    string         `yaml:"mode"`
	Modules []ModuleConfig `yaml:"modules"`
	Steps   []StepConfig   `yaml:"steps"`
	Inputs  []PortConfig   `yaml:"inputs,omitempty"`
	Outputs []OutputConfig `yaml:"outputs,omitempty"`
}

// Export captures the structure of a recorded graph.
func Export(g *graph.Graph) *GraphConfig {
	cfg := &GraphConfig{
		Name: g.Name(),
		Mode: g.Mode().String(),
	}

	seen := make(map[string]bool)
	for _, s := range g.Steps() {
		m := s.Module
		if !seen[m.Name()] {
			seen[m.Name()] = true
			cfg.Modules = append(cfg.Modules, ModuleConfig{
				Name:        m.Name(),
				InputPorts:  exportPorts(m.InputPorts()),
				OutputPorts: exportPorts(m.OutputPorts()),
			})
		}
		step := StepConfig{Module: m.Name()}
		if len(s.Args) > 0 {
			step.Args = make(map[string]string, len(s.Args))
			for port, value := range s.Args {
				switch v := value.(type) {
				case *neural.Tensor:
					step.Args[port] = v.Producer().Name() + "." + v.Name()
				case *graph.Graph:
					step.Args[port] = "graph:" + v.Name()
				default:
					step.Args[port] = fmt.Sprintf("%v", v)
				}
			}
		}
		cfg.Steps = append(cfg.Steps, step)
	}

	g.InputPorts().Range(func(name string, t *neural.NeuralType) bool {
		cfg.Inputs = append(cfg.Inputs, PortConfig{Name: name, Type: t.String()})
		return true
	})
	for _, name := range g.Outputs().Keys() {
		t, _ := g.Outputs().Get(name)
		cfg.Outputs = append(cfg.Outputs, OutputConfig{
			Name:   name,
			Source: t.Producer().Name() + "." + t.Name(),
		})
	}
	return cfg
}

func exportPorts(pm *neural.PortMap) []PortConfig {
	var ports []PortConfig
	pm.Range(func(name string, t *neural.NeuralType) bool {
		ports = append(ports, PortConfig{Name: name, Type: t.String()})
		return true
	})
	return ports
}

// Validate checks internal consistency: unique module names, steps that
// reference declared modules, step args that name declared input ports, and a
// parseable mode.
func (c *GraphConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("graph config: missing name")
	}
	if _, err := neural.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("graph config %q: %w", c.Name, err)
	}

	modules := make(map[string]ModuleConfig, len(c.Modules))
	for _, m := range c.Modules {
		if _, dup := modules[m.Name]; dup {
			return fmt.Errorf("graph config %q: duplicate module %q", c.Name, m.Name)
		}
		modules[m.Name] = m
	}

	for i, s := range c.Steps {
		m, ok := modules[s.Module]
		if !ok {
			return fmt.Errorf("graph config %q: step %d references undeclared module %q", c.Name, i, s.Module)
		}
		declared := make(map[string]bool, len(m.InputPorts))
		for _, p := range m.InputPorts {
			declared[p.Name] = true
		}
		for port := range s.Args {
			if !declared[port] {
				return fmt.Errorf("graph config %q: step %d: module %q has no input port %q", c.Name, i, s.Module, port)
			}
		}
	}
	return nil
}

// Save writes the configuration to path as YAML.
func Save(path string, c *GraphConfig) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal graph config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write graph config: %w", err)
	}
	return nil
}

// Load reads a graph configuration from a YAML file.
func Load(path string) (*GraphConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph config: %w", err)
	}
	var c GraphConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse graph config: %w", err)
	}
	return &c, nil
}
