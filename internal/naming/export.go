package naming

import "lumen/internal/ident"

// ModuleSignature is the serialisable form of one module's exported
// names: namespace, then surface name, then stamp.
type ModuleSignature struct {
	Name         string            `json:"name" yaml:"name" msgpack:"name"`
	ID           ident.Ident       `json:"id" yaml:"id" msgpack:"id"`
	AliasOf      *ident.Ident      `json:"alias_of,omitempty" yaml:"alias_of,omitempty" msgpack:"alias_of,omitempty"`
	Types        map[string]uint64 `json:"types,omitempty" yaml:"types,omitempty" msgpack:"types,omitempty"`
	Constructors map[string]uint64 `json:"constructors,omitempty" yaml:"constructors,omitempty" msgpack:"constructors,omitempty"`
	Fields       map[string]uint64 `json:"fields,omitempty" yaml:"fields,omitempty" msgpack:"fields,omitempty"`
	Values       map[string]uint64 `json:"values,omitempty" yaml:"values,omitempty" msgpack:"values,omitempty"`
}

// Export lists the signature of every module of g in registration order.
func (g *Global) Export() []ModuleSignature {
	infos := g.Modules()
	out := make([]ModuleSignature, 0, len(infos))
	for _, info := range infos {
		ms := ModuleSignature{Name: info.Name, ID: info.ID}
		if info.AliasOf.IsValid() {
			target := info.AliasOf
			ms.AliasOf = &target
		}
		if sig, ok := g.SignatureOf(info.ID); ok {
			ms.Types = stamps(sig, Types)
			ms.Constructors = stamps(sig, Constructors)
			ms.Fields = stamps(sig, Fields)
			ms.Values = stamps(sig, Values)
		}
		out = append(out, ms)
	}
	return out
}

func stamps(env *Env, ns Namespace) map[string]uint64 {
	if env.Len(ns) == 0 {
		return nil
	}
	m := make(map[string]uint64, env.Len(ns))
	env.Each(ns, func(name string, b Binding) {
		m[name] = b.ID.Stamp
	})
	return m
}
