// Package hcl loads project definitions written in HCL.
//
//	project "acme-store" {
//	  site_type     = "dynamic"
//	  client        = "foreign"
//	  pages         = 5
//	  tables        = 8
//	  roles         = 2
//	  notifications = 1
//	  gateways      = 1
//	  discount      = "student"
//	}
package hcl

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"webdev-cost/core/discount"
	"webdev-cost/core/estimate"
	"webdev-cost/core/types"
	"webdev-cost/internal/errors"
)

// Project is one decoded project block
type Project struct {
	Name       string
	SiteType   types.SiteType
	ClientType types.ClientType
	Inputs     estimate.Inputs
	Discount   discount.Kind
}

type fileSpec struct {
	Projects []projectSpec `hcl:"project,block"`
}

type projectSpec struct {
	Name          string `hcl:"name,label"`
	SiteType      string `hcl:"site_type"`
	Client        string `hcl:"client,optional"`
	Pages         *int   `hcl:"pages,optional"`
	Tables        *int   `hcl:"tables,optional"`
	Roles         *int   `hcl:"roles,optional"`
	Notifications *int   `hcl:"notifications,optional"`
	Gateways      *int   `hcl:"gateways,optional"`
	Discount      string `hcl:"discount,optional"`
}

// inputs starts from the form defaults and overrides what the block sets
func (p projectSpec) inputs() estimate.Inputs {
	in := estimate.DefaultInputs()
	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	set(&in.Pages, p.Pages)
	set(&in.Tables, p.Tables)
	set(&in.Roles, p.Roles)
	set(&in.Notifications, p.Notifications)
	set(&in.Gateways, p.Gateways)
	return in
}

// Loader parses project files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a project loader
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// LoadFile reads and decodes every project in path
func (l *Loader) LoadFile(path string) ([]Project, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("read project file", err)
	}
	return l.Parse(src, path)
}

// Parse decodes every project in src. filename is used in diagnostics.
func (l *Loader) Parse(src []byte, filename string) ([]Project, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("parse project file", diagError(diags))
	}

	var spec fileSpec
	if diags := gohcl.DecodeBody(file.Body, nil, &spec); diags.HasErrors() {
		return nil, errors.Parsing("decode project file", diagError(diags))
	}
	if len(spec.Projects) == 0 {
		return nil, errors.Parsing("project file has no project blocks", nil).WithContext("file", filename)
	}

	projects := make([]Project, 0, len(spec.Projects))
	for _, p := range spec.Projects {
		kind, err := discount.ParseKind(p.Discount)
		if err != nil {
			return nil, errors.Parsing(fmt.Sprintf("project %q", p.Name), err)
		}
		projects = append(projects, Project{
			Name:       p.Name,
			SiteType:   types.SiteType(p.SiteType),
			ClientType: types.ParseClientType(p.Client),
			Inputs:     p.inputs(),
			Discount:   kind,
		})
	}
	return projects, nil
}

// Find returns the named project, or the only project when name is empty
func Find(projects []Project, name string) (Project, error) {
	if name == "" {
		if len(projects) == 1 {
			return projects[0], nil
		}
		return Project{}, errors.Parsing(fmt.Sprintf("file defines %d projects; choose one by name", len(projects)), nil)
	}
	for _, p := range projects {
		if p.Name == name {
			return p, nil
		}
	}
	return Project{}, errors.Parsing(fmt.Sprintf("project %q not found", name), nil)
}

func diagError(diags hcl.Diagnostics) error {
	for _, d := range diags {
		if d.Severity == hcl.DiagError {
			if d.Subject != nil {
				return fmt.Errorf("%s:%d: %s: %s", d.Subject.Filename, d.Subject.Start.Line, d.Summary, d.Detail)
			}
			return fmt.Errorf("%s: %s", d.Summary, d.Detail)
		}
	}
	return diags
}
