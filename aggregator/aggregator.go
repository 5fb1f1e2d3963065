// Package aggregator combines the registries of many declaring units into
// one dataset with exactly one root.
//
// Units are visited in order. A unit takes part if it implements
// [registry.Declarer]; anything else is skipped, so callers may pass mixed
// collections. Named maps are unioned across units. Within one unit,
// repeated declarations merge (see package registry); across units, a key
// declared twice is a collision and by default the last unit wins
// outright. Every collision is recorded on the dataset and logged at warn
// level because a later unit silently replaces an earlier unit's subtree.
package aggregator

import (
	"fmt"
	"reflect"

	"github.com/erraggy/oasblocks/dialect"
	"github.com/erraggy/oasblocks/logging"
	"github.com/erraggy/oasblocks/node"
	"github.com/erraggy/oasblocks/oaserrors"
	"github.com/erraggy/oasblocks/ordered"
	"github.com/erraggy/oasblocks/registry"
)

// Section names used in collision reports.
const (
	SectionPaths   = "paths"
	SectionSchemas = "schemas"
	SectionAPIs    = "apis"
	SectionModels  = "models"
)

// Dataset is the aggregated view of a set of units. It is recomputed on
// every call to Aggregate and never mutates the registries it reads.
type Dataset struct {
	// Root is the single root declared across all units
	Root *node.Root
	// RootUnit names the unit that declared the root
	RootUnit string
	// Dialect is the root's dialect
	Dialect dialect.Dialect

	// Paths and Schemas are populated for 2.0 and 3.0 roots
	Paths   *ordered.Map[*node.Path]
	Schemas *ordered.Map[*node.Schema]
	// Components maps a 3.0 component section to its named entries
	Components *ordered.Map[*ordered.Map[any]]

	// APIs and Models are populated for 1.2 roots
	APIs   *ordered.Map[*node.APIDeclaration]
	Models *node.Models

	// Units lists the participating units in order
	Units []string
	// Collisions lists every cross-unit key collision in order
	Collisions []Collision
}

type unitSnapshot struct {
	name string
	registry.Snapshot
}

// Aggregate combines the registries of units.
//
// It fails with a DeclarationError when no unit or more than one unit
// declares a root, when the root has no dialect marker, when a unit's
// declarations recorded errors, or, under StrategyFailOnCollision, when two
// units declare the same key.
func Aggregate(units []any, opts ...Option) (*Dataset, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	log := cfg.logger

	var (
		snaps     []unitSnapshot
		roots     []*node.Root
		rootUnits []string
	)
	for i, unit := range units {
		d, ok := unit.(registry.Declarer)
		if !ok || d == nil {
			log.Debug("skipping unit without declarations", "index", i, "type", fmt.Sprintf("%T", unit))
			continue
		}
		reg := d.Declarations()
		if reg == nil {
			log.Debug("skipping unit with nil registry", "index", i, "type", fmt.Sprintf("%T", unit))
			continue
		}
		name := reg.Name()
		if name == "" {
			name = fmt.Sprintf("%T#%d", unit, i)
		}
		if err := reg.Err(); err != nil {
			return nil, &oaserrors.DeclarationError{
				Message: "unit recorded declaration errors",
				Units:   []string{name},
				Cause:   err,
			}
		}

		snap := unitSnapshot{name: name, Snapshot: reg.Snapshot()}
		snaps = append(snaps, snap)
		if snap.Root != nil {
			roots = append(roots, snap.Root)
			rootUnits = append(rootUnits, name)
		}
		log.Debug("collected unit", "unit", name, "root", snap.Root != nil,
			"paths", snap.Paths.Len(), "schemas", snap.Schemas.Len(), "apis", snap.APIs.Len())
	}

	switch len(roots) {
	case 0:
		return nil, &oaserrors.DeclarationError{Message: "root must be declared"}
	case 1:
	default:
		return nil, &oaserrors.DeclarationError{
			Message: "only one root declaration is allowed",
			Units:   rootUnits,
		}
	}

	root := roots[0]
	d, err := root.Dialect()
	if err != nil {
		return nil, &oaserrors.DeclarationError{
			Message: "root has no dialect",
			Units:   rootUnits,
			Cause:   err,
		}
	}

	ds := &Dataset{
		Root:       root,
		RootUnit:   rootUnits[0],
		Dialect:    d,
		Paths:      ordered.New[*node.Path](),
		Schemas:    ordered.New[*node.Schema](),
		Components: ordered.New[*ordered.Map[any]](),
		APIs:       ordered.New[*node.APIDeclaration](),
		Models:     node.NewModels(nil),
	}
	m := &merger{cfg: cfg, log: log, ds: ds, owners: make(map[string]string)}

	for _, snap := range snaps {
		ds.Units = append(ds.Units, snap.name)
		if d.IsLegacy() {
			err = m.unionLegacy(snap)
		} else {
			err = m.unionOpenAPI(snap)
		}
		if err != nil {
			return nil, err
		}
	}

	log.Debug("aggregated units", "dialect", d.String(), "root", ds.RootUnit,
		"units", len(ds.Units), "collisions", len(ds.Collisions))
	return ds, nil
}

type merger struct {
	cfg *config
	log logging.Logger
	ds  *Dataset
	// owners maps section and key to the unit whose value is in place
	owners map[string]string
	models *ordered.Map[any]
}

func (m *merger) unionOpenAPI(snap unitSnapshot) error {
	for path, p := range snap.Paths.All() {
		if err := m.checkDialect(snap.name, SectionPaths, path, p.Dialect); err != nil {
			return err
		}
	}
	for name, s := range snap.Schemas.All() {
		if err := m.checkDialect(snap.name, SectionSchemas, name, s.Dialect); err != nil {
			return err
		}
	}
	if err := union(m, SectionPaths, m.ds.Paths, snap.Paths, snap.name); err != nil {
		return err
	}
	if err := union(m, SectionSchemas, m.ds.Schemas, snap.Schemas, snap.name); err != nil {
		return err
	}
	if snap.Components == nil {
		return nil
	}
	for _, section := range snap.Components.Keys() {
		src := snap.Components.Section(section)
		if src == nil {
			continue
		}
		dst, ok := m.ds.Components.Get(section)
		if !ok {
			dst = ordered.New[any]()
			m.ds.Components.Set(section, dst)
		}
		if err := union(m, "components."+section, dst, src, snap.name); err != nil {
			return err
		}
	}
	return nil
}

func (m *merger) unionLegacy(snap unitSnapshot) error {
	if err := union(m, SectionAPIs, m.ds.APIs, snap.APIs, snap.name); err != nil {
		return err
	}
	if snap.Models == nil {
		return nil
	}
	// Models fold into one tree under the same collision rule.
	if m.models == nil {
		m.models = ordered.New[any]()
	}
	if err := union(m, SectionModels, m.models, snap.Models.Entries(), snap.name); err != nil {
		return err
	}
	for k, v := range m.models.All() {
		_ = m.ds.Models.Set(k, v)
	}
	return nil
}

// checkDialect refuses a node declared in another dialect than the root's.
// Its operations were gated and its refs rewritten for that dialect.
func (m *merger) checkDialect(unit, section, key string, get func() (dialect.Dialect, error)) error {
	d, err := get()
	if err == nil && d == m.ds.Dialect {
		return nil
	}
	m.log.Warn("node dialect differs from root dialect",
		"unit", unit, "section", section, "key", key,
		"dialect", d.String(), "root_dialect", m.ds.Dialect.String())
	return &oaserrors.DeclarationError{
		Message: fmt.Sprintf("%s %q is declared in dialect %s but the root is %s; declare the unit with registry.WithDialect",
			section, key, d, m.ds.Dialect),
		Units: []string{unit},
		Cause: err,
	}
}

// union copies src into dst, resolving keys already present with the
// configured strategy.
func union[V any](m *merger, section string, dst, src *ordered.Map[V], unit string) error {
	for key, value := range src.All() {
		ownerKey := section + "\x00" + key
		existing, exists := dst.Get(key)
		if exists && !same(existing, value) {
			first := m.owners[ownerKey]
			c := Collision{
				Section:  section,
				Key:      key,
				First:    first,
				Second:   unit,
				Strategy: m.cfg.strategy,
			}
			switch m.cfg.strategy {
			case StrategyFailOnCollision:
				return &oaserrors.DeclarationError{
					Message: fmt.Sprintf("%s %q is declared by more than one unit", section, key),
					Units:   []string{first, unit},
				}
			case StrategyAcceptLeft:
				c.Kept = first
				m.record(c)
				continue
			default:
				c.Kept = unit
				m.record(c)
			}
		}
		dst.Set(key, value)
		m.owners[ownerKey] = unit
	}
	return nil
}

// same reports whether a and b are the same node. Values of uncomparable
// types are never the same.
func same(a, b any) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func (m *merger) record(c Collision) {
	m.ds.Collisions = append(m.ds.Collisions, c)
	m.log.Warn("key declared by more than one unit",
		"section", c.Section, "key", c.Key,
		"first", c.First, "second", c.Second,
		"strategy", string(c.Strategy), "kept", c.Kept)
}
