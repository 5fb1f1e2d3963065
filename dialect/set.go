package dialect

// Set is a set of dialects, used to describe where an operation is legal.
type Set uint8

// All contains every known dialect.
const All = Set(1<<Swagger12 | 1<<OAS20 | 1<<OAS30)

// Of returns a Set containing the given dialects.
func Of(ds ...Dialect) Set {
	var s Set
	for _, d := range ds {
		if d.IsValid() {
			s |= 1 << d
		}
	}
	return s
}

// Contains reports whether d is a member of s.
func (s Set) Contains(d Dialect) bool {
	return d.IsValid() && s&(1<<d) != 0
}

// Dialects returns the members of s in ascending order.
func (s Set) Dialects() []Dialect {
	var out []Dialect
	for _, d := range []Dialect{Swagger12, OAS20, OAS30} {
		if s.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

// Strings returns the version strings of the members of s.
func (s Set) Strings() []string {
	ds := s.Dialects()
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.String())
	}
	return out
}
