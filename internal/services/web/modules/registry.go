// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/louisbranch/foodgram/internal/services/web/module"
	"github.com/louisbranch/foodgram/internal/services/web/modules/public"
)

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the shared config required to compose the web module
// registry.
type Dependencies struct {
	Public public.Options
}

// DefaultPublicModules returns stable public web modules.
func DefaultPublicModules(deps Dependencies) []Module {
	return []Module{
		public.New(deps.Public),
	}
}
