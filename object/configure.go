package object

import (
	"github.com/mipi54/flext/config"
	"github.com/mipi54/flext/errors"
)

// Configure applies a declarative class description to a freshly
// constructed instance: endpoints are declared in file order with their
// descriptions, and list distribution is set. The caller still runs
// SetupInOut afterwards; Configure fails without declaring anything if
// the instance is already finalized.
func Configure(b *Base, cc *config.ClassConfig) error {
	if b.setupDone {
		return errors.WrapState(errors.ErrAlreadySetup, "Base", "Configure", "finalization check")
	}

	for _, x := range cc.Inlets {
		k, ok := config.ResolveKind(x.Kind)
		if !ok {
			return errors.WrapInvalid(errors.ErrInvalidXlet, "Base", "Configure", "inlet kind resolution")
		}
		b.addIn(k, 1)
		b.DescInlet(len(b.inlist)-1, x.Description)
	}
	for _, x := range cc.Outlets {
		k, ok := config.ResolveKind(x.Kind)
		if !ok {
			return errors.WrapInvalid(errors.ErrInvalidXlet, "Base", "Configure", "outlet kind resolution")
		}
		b.addOut(k, 1)
		b.DescOutlet(len(b.outlist)-1, x.Description)
	}
	b.SetDist(cc.Distribute)
	return nil
}
