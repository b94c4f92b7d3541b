package parser

import (
	"github.com/diwise/jsonapi-orm/pkg/orm/entities"
	"github.com/diwise/jsonapi-orm/pkg/orm/include"
)

// prune removes members marked for destruction or disassociation from every relationship
// named by the directive, walking into the survivors with the nested directive. Members
// that are removed are not visited, so a removed parent hides whatever it references.
func prune(e *entities.Entity, d include.Directive) error {
	if e == nil || d.IsEmpty() {
		return nil
	}

	for _, r := range e.Descriptor().Relationships {
		if !d.Has(r.Name) {
			continue
		}

		sub := d.Sub(r.Name)

		if r.ToMany {
			members := e.Many(r.Name)
			kept := make([]*entities.Entity, 0, len(members))

			for _, m := range members {
				if isFlagged(m) {
					continue
				}
				kept = append(kept, m)
			}

			if len(kept) != len(members) {
				if err := e.SetMany(r.Name, kept...); err != nil {
					return err
				}
			}

			for _, m := range kept {
				if err := prune(m, sub); err != nil {
					return err
				}
			}

			continue
		}

		one := e.One(r.Name)
		if one == nil {
			continue
		}

		if isFlagged(one) {
			if err := e.SetOne(r.Name, nil); err != nil {
				return err
			}
			continue
		}

		if err := prune(one, sub); err != nil {
			return err
		}
	}

	return nil
}

func isFlagged(e *entities.Entity) bool {
	return e.IsMarkedForDestruction() || e.IsMarkedForDisassociation()
}
