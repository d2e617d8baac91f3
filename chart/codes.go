package chart

import "fmt"

// slot binds one layer tag to the quantity it encodes.
type slot struct {
	family string // 3-letter family and branch tag
	role   Role
	roles  func(*Chart) Roles
}

// Tag returns the 5-letter tag, role included.
func (s slot) Tag() string {
	return s.family + s.role.String()
}

var (
	allRoles     = []Role{RolePA, RolePB, RoleSA, RoleSB}
	primaryRoles = []Role{RolePA, RoleSA}
)

// layout lists every paintable slot in emission order.
var layout = joinSlots(
	slots("PPR", func(c *Chart) Roles { return c.Deep.Base }, allRoles),
	slots("PPP", func(c *Chart) Roles { return c.Deep.Drive }, primaryRoles),
	slots("APP", func(c *Chart) Roles { return c.Deep.Action }, allRoles),
	slots("RPP", func(c *Chart) Roles { return c.Deep.Reaction }, allRoles),

	slots("NEM", func(c *Chart) Roles { return c.Synthesis.Base }, primaryRoles),
	slots("PNE", func(c *Chart) Roles { return c.Synthesis.Drive }, primaryRoles),
	slots("ANE", func(c *Chart) Roles { return c.Synthesis.Action }, primaryRoles),
	slots("RNE", func(c *Chart) Roles { return c.Synthesis.Reaction }, primaryRoles),

	slots("PEX", func(c *Chart) Roles { return c.Compound.Base }, allRoles),
	slots("PPE", func(c *Chart) Roles { return c.Compound.Drive }, primaryRoles),
	slots("APE", func(c *Chart) Roles { return c.Compound.Action }, allRoles),
	slots("RPE", func(c *Chart) Roles { return c.Compound.Reaction }, allRoles),
)

func slots(family string, roles func(*Chart) Roles, rs []Role) []slot {
	out := make([]slot, len(rs))
	for i, r := range rs {
		out[i] = slot{family: family, role: r, roles: roles}
	}
	return out
}

func joinSlots(groups ...[]slot) []slot {
	var out []slot
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// EncodeCode formats a layer code: the 5-letter tag and a zero-padded value.
func EncodeCode(tag string, value int) string {
	return fmt.Sprintf("%s%02d", tag, value)
}

// Codes returns the layer codes of every significant quantity.
// Primary and secondary roles go to a, B variants go to b; both keep the
// slot table order.
func (c *Chart) Codes() (a, b []string) {
	for _, s := range layout {
		q := s.roles(c).Get(s.role)
		if !q.Significant {
			continue
		}
		code := EncodeCode(s.Tag(), q.Value)
		if s.role.variantB() {
			b = append(b, code)
		} else {
			a = append(a, code)
		}
	}
	return a, b
}
