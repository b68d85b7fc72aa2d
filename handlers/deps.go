// Package handlers serves the design flow over HTTP. Every POST route maps to
// one flow action; GET / renders whatever screen the session is on.
package handlers

import (
	"time"

	"github.com/BadSquidward/roomlab/catalog"
	"github.com/BadSquidward/roomlab/flow"
)

// Deps carries what the handlers share.
type Deps struct {
	Catalog  *catalog.Catalog
	Machine  *flow.Machine
	Sessions *flow.Store
	Now      func() time.Time
}

// NewDeps wires the static machine and an empty session store around c.
func NewDeps(c *catalog.Catalog) *Deps {
	return &Deps{
		Catalog:  c,
		Machine:  flow.NewMachine(c),
		Sessions: flow.NewStore(),
		Now:      time.Now,
	}
}
