package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/go-sprout/sprout"
	sproutstrings "github.com/go-sprout/sprout/registry/strings"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"

	"github.com/sagikazarmark/upset-launcher/launcher"
	"github.com/sagikazarmark/upset-launcher/pkg/sproutx"
)

const (
	// DefaultFile is the definition file looked up in the working directory.
	DefaultFile = "upset.yaml"

	variantEnv = "UPSET_LAUNCHER_VARIANT"
)

// Definition is the launcher definition file.
// Its directory is the project root.
type Definition struct {
	FilePath string `yaml:"-"`

	Root string `yaml:"-"`

	Default string `yaml:"default"`

	Specs map[string]VariantSpec `yaml:"variants"`
}

// VariantSpec overrides or extends a variant.
// Empty fields inherit the built-in variant of the same name.
type VariantSpec struct {
	Description string `yaml:"description"`

	Interpreter string `yaml:"interpreter"`

	Env map[string]string `yaml:"env"`

	TestDir string `yaml:"test_dir"`

	SourceDir string `yaml:"source_dir"`
}

// templateData is available to interpreter and env templates.
type templateData struct {
	Root    string
	Variant string
}

func Default(path string) (*Definition, error) {
	root, err := launcher.ResolveRoot(path)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve project root: %w", err)
	}

	def := &Definition{
		Root:    root,
		Default: launcher.PlainVariant,
	}

	def.FilePath, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve definition file: %w", err)
	}

	applyEnvOverrides(def)

	return def, nil
}

func Load(path string) (*Definition, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open definition file: %w", err)
	}
	defer file.Close()

	def, err := Default(path)
	if err != nil {
		return nil, err
	}

	// An empty or null document resets the decode target, so decode into a separate value.
	var decoded Definition
	if err := yaml.NewDecoder(file, yaml.DisallowUnknownField()).Decode(&decoded); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode definition from YAML: %w", err)
	}

	if decoded.Default != "" {
		def.Default = decoded.Default
	}

	def.Specs = decoded.Specs

	applyEnvOverrides(def)

	return def, nil
}

func applyEnvOverrides(def *Definition) {
	if variant := os.Getenv(variantEnv); variant != "" {
		def.Default = variant
	}
}

// Names returns the sorted names of all variants.
func (d *Definition) Names() []string {
	names := lo.Uniq(append(
		lo.Map(launcher.Builtin(), func(v launcher.Variant, _ int) string { return v.Name }),
		lo.Keys(d.Specs)...,
	))

	slices.Sort(names)

	return names
}

// Variant resolves a variant by name. An empty name selects the default variant.
func (d *Definition) Variant(name string) (launcher.Variant, error) {
	if name == "" {
		name = d.Default
	}

	builtin, isBuiltin := lo.Find(launcher.Builtin(), func(v launcher.Variant) bool {
		return v.Name == name
	})

	spec, isDefined := d.Specs[name]

	if !isBuiltin && !isDefined {
		return launcher.Variant{}, fmt.Errorf("unknown variant %q (available: %s)", name, strings.Join(d.Names(), ", "))
	}

	variant := builtin
	variant.Name = name

	if isDefined {
		variant = merge(variant, spec)
	}

	return d.render(variant)
}

// Variants resolves every variant, sorted by name.
func (d *Definition) Variants() ([]launcher.Variant, error) {
	variants := make([]launcher.Variant, 0, len(d.Names()))

	for _, name := range d.Names() {
		variant, err := d.Variant(name)
		if err != nil {
			return nil, err
		}

		variants = append(variants, variant)
	}

	return variants, nil
}

func merge(variant launcher.Variant, spec VariantSpec) launcher.Variant {
	if spec.Description != "" {
		variant.Description = spec.Description
	}
	if spec.Interpreter != "" {
		variant.Interpreter = spec.Interpreter
	}
	if spec.TestDir != "" {
		variant.TestDir = spec.TestDir
	}
	if spec.SourceDir != "" {
		variant.SourceDir = spec.SourceDir
	}

	env := slices.Clone(variant.Env)

	names := lo.Keys(spec.Env)
	slices.Sort(names)

	for _, name := range names {
		env = lo.Reject(env, func(v launcher.EnvVar, _ int) bool { return v.Name == name })
		env = append(env, launcher.EnvVar{Name: name, Value: spec.Env[name]})
	}

	variant.Env = env

	return variant
}

func (d *Definition) render(variant launcher.Variant) (launcher.Variant, error) {
	funcs := sprout.New(
		sprout.WithRegistries(
			sproutstrings.NewRegistry(),
			sproutx.NewPathsRegistry(),
		),
	).Build()

	data := templateData{
		Root:    d.Root,
		Variant: variant.Name,
	}

	renderValue := func(field string, value string) (string, error) {
		if !strings.Contains(value, "{{") {
			return value, nil
		}

		tmpl, err := template.New(field).Funcs(funcs).Option("missingkey=error").Parse(value)
		if err != nil {
			return "", fmt.Errorf("variant %s: parse %s: %w", variant.Name, field, err)
		}

		var result strings.Builder
		if err := tmpl.Execute(&result, data); err != nil {
			return "", fmt.Errorf("variant %s: render %s: %w", variant.Name, field, err)
		}

		return result.String(), nil
	}

	interpreter, err := renderValue("interpreter", variant.Interpreter)
	if err != nil {
		return launcher.Variant{}, err
	}

	variant.Interpreter = interpreter

	var env []launcher.EnvVar

	for _, v := range variant.Env {
		value, err := renderValue("env "+v.Name, v.Value)
		if err != nil {
			return launcher.Variant{}, err
		}

		env = append(env, launcher.EnvVar{Name: v.Name, Value: value})
	}

	variant.Env = env

	return variant, nil
}
