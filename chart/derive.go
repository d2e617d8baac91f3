package chart

import "log/slog"

// Family groups a painted quantity with its age refinements.
type Family struct {
	Base     Roles
	Drive    Roles
	Action   Roles
	Reaction Roles
}

// Chart is the full derivation tree for one set of inputs.
type Chart struct {
	Inputs BirthInputs

	// Leaf profiles.
	Inner     Roles // day
	Intellect Roles // month, the only leaf with B variants
	Outer     Roles // year

	// Combinations feed Compound and are never painted.
	InnerCombination Roles
	OuterCombination Roles

	// DriveValue is the age drive shared by every family.
	DriveValue int

	Deep      Family // PPR
	Synthesis Family // NEM
	Compound  Family // PEX
}

// Derive builds the chart for in. It never fails: inputs are not
// calendar-checked, call BirthInputs.Validate to reject negative values.
func Derive(in BirthInputs) *Chart {
	c := &Chart{Inputs: in}

	c.Inner = leaf(in.Day)
	c.Intellect = intellect(in)
	c.Outer = leaf(in.Year)

	c.InnerCombination = combination(c.Inner, c.Intellect)
	c.OuterCombination = combination(c.Outer, c.Intellect)

	deep := deepPersonality(c.Inner, c.Intellect, c.Outer)
	synthesis := sumRoles(c.Inner, c.Outer)
	compound := sumRoles(c.InnerCombination, c.OuterCombination)

	c.DriveValue = reduceKeep(in.Age + 1)
	c.Deep = refine(deep, c.DriveValue, deep.SA.Significant)
	c.Synthesis = refine(synthesis, c.DriveValue, synthesis.SA.Significant)
	// The compound secondary drive follows the deep personality secondary.
	c.Compound = refine(compound, c.DriveValue, deep.SA.Significant)

	return c
}

// leaf reduces a raw input into its primary and secondary.
func leaf(n int) Roles {
	pa := reduceKeep(n)
	sa := Reduce(pa, FullReduce)
	return Roles{
		PA: present(pa),
		SA: gated(sa, sa != pa),
	}
}

// intellect reduces the month. The B variants are taken from the next
// month, wrapping past 12, and only exist when the day is past 22.
func intellect(in BirthInputs) Roles {
	pa := reduceKeep(in.Month)
	sa := Reduce(pa, FullReduce)

	var pb, sb int
	if in.hasVariantB() {
		next := pa + 1
		if next > 12 {
			next = 1
		}
		pb = reduceKeep(next)
		if sa > 0 {
			sb = Reduce(next, FullReduce)
		}
	}

	return Roles{
		PA: present(pa),
		PB: gated(pb, pb != pa && pb != 0),
		SA: gated(sa, sa != pa),
		SB: gated(sb, sb != sa && sb != 0),
	}
}

// combination adds a leaf profile to the intellect.
// The leaf has no B variants, so its primary and secondary pair with both.
func combination(l, it Roles) Roles {
	return Roles{
		PA: present(reduceKeep(l.PA.Value + it.PA.Value)),
		PB: gated(reduceKeep(l.PA.Value+it.PB.Value), it.PB.Significant),
		SA: gated(reduceKeep(l.SA.Value+it.SA.Value), l.SA.Significant || it.SA.Significant),
		SB: gated(reduceKeep(l.SA.Value+it.SB.Value), l.SA.Significant || it.SB.Significant),
	}
}

// sumRoles adds two quantities role by role. Each role is significant when
// either side is.
func sumRoles(a, b Roles) Roles {
	add := func(x, y Quantity) Quantity {
		return gated(reduceKeep(x.Value+y.Value), x.Significant || y.Significant)
	}
	return Roles{
		PA: add(a.PA, b.PA),
		PB: add(a.PB, b.PB),
		SA: add(a.SA, b.SA),
		SB: add(a.SB, b.SB),
	}
}

// deepPersonality adds the three leaves.
func deepPersonality(inner, it, outer Roles) Roles {
	leavesSA := inner.SA.Significant || outer.SA.Significant
	return Roles{
		PA: present(reduceKeep(inner.PA.Value + it.PA.Value + outer.PA.Value)),
		PB: gated(reduceKeep(inner.PA.Value+it.PB.Value+outer.PA.Value), it.PB.Significant),
		SA: gated(reduceKeep(inner.SA.Value+it.SA.Value+outer.SA.Value), it.SA.Significant || leavesSA),
		SB: gated(reduceKeep(inner.SA.Value+it.SB.Value+outer.SA.Value), it.SB.Significant || leavesSA),
	}
}

// refine derives Drive, Action and Reaction for base.
// Drive only has primary and secondary roles; driveSA gates the latter.
func refine(base Roles, drive int, driveSA bool) Family {
	action := func(q Quantity) Quantity {
		return gated(reduceKeep(drive+q.Value), q.Significant)
	}
	reaction := func(act, q Quantity) Quantity {
		return gated(reduceKeep(act.Value+q.Value), q.Significant)
	}

	f := Family{
		Base: base,
		Drive: Roles{
			PA: present(drive),
			SA: gated(drive, driveSA),
		},
		Action: Roles{
			PA: action(base.PA),
			PB: action(base.PB),
			SA: action(base.SA),
			SB: action(base.SB),
		},
	}
	f.Reaction = Roles{
		PA: reaction(f.Action.PA, base.PA),
		PB: reaction(f.Action.PB, base.PB),
		SA: reaction(f.Action.SA, base.SA),
		SB: reaction(f.Action.SB, base.SB),
	}
	return f
}

// LogValue implements slog.LogValuer.
func (c *Chart) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("day", c.Inputs.Day),
		slog.Int("month", c.Inputs.Month),
		slog.Int("year", c.Inputs.Year),
		slog.Int("age", c.Inputs.Age),
		slog.Any("inner", c.Inner),
		slog.Any("intellect", c.Intellect),
		slog.Any("outer", c.Outer),
		slog.Any("ppr", c.Deep.Base),
		slog.Any("nem", c.Synthesis.Base),
		slog.Any("pex", c.Compound.Base),
		slog.Int("drive", c.DriveValue),
	)
}
