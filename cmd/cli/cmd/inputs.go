package cmd

import (
	"github.com/spf13/cobra"

	"webdev-cost/adapters/hcl"
	"webdev-cost/core/discount"
	"webdev-cost/core/estimate"
	"webdev-cost/core/types"
)

// inputFlags are the estimate form fields. Quantities are read as text and
// parsed leniently, the way the form does.
type inputFlags struct {
	siteType      string
	client        string
	pages         string
	tables        string
	roles         string
	notifications string
	gateways      string
	file          string
	project       string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.siteType, "site-type", "s", "", "site type (dynamic, static)")
	flags.StringVarP(&f.client, "client", "c", "local", "client location (local, foreign)")
	flags.StringVarP(&f.pages, "pages", "p", "5", "number of pages")
	flags.StringVar(&f.tables, "tables", "5", "number of database tables")
	flags.StringVar(&f.roles, "roles", "1", "number of user roles")
	flags.StringVar(&f.notifications, "notifications", "0", "number of external notification channels")
	flags.StringVar(&f.gateways, "gateways", "0", "number of payment gateways")
	flags.StringVar(&f.file, "file", "", "read the project from an HCL file instead of flags")
	flags.StringVar(&f.project, "project", "", "project block to use when the file defines several")
}

// resolve returns the estimate request described by the flags or project
// file, plus the discount named in the file.
func (f *inputFlags) resolve() (types.SiteType, estimate.Inputs, types.ClientType, discount.Kind, error) {
	if f.file != "" {
		projects, err := hcl.NewLoader().LoadFile(f.file)
		if err != nil {
			return "", estimate.Inputs{}, "", discount.None, err
		}
		p, err := hcl.Find(projects, f.project)
		if err != nil {
			return "", estimate.Inputs{}, "", discount.None, err
		}
		return p.SiteType, p.Inputs, p.ClientType, p.Discount, nil
	}

	in := estimate.Inputs{
		Pages:         estimate.ParseQuantity(f.pages),
		Tables:        estimate.ParseQuantity(f.tables),
		Roles:         estimate.ParseQuantity(f.roles),
		Notifications: estimate.ParseQuantity(f.notifications),
		Gateways:      estimate.ParseQuantity(f.gateways),
	}
	return types.SiteType(f.siteType), in, types.ParseClientType(f.client), discount.None, nil
}
