package formulas

// Scenario adjusts base-case assumptions by multiplicative factors.
type Scenario struct {
	Name              string
	RevenueGrowthAdj  float64
	MarginAdj         float64
	TerminalGrowthAdj float64
}

// The three standard cases. Bull and bear shift growth by ±20% and margins
// by ±10% relative to base.
var (
	ScenarioBull = Scenario{Name: "Bull", RevenueGrowthAdj: 1.2, MarginAdj: 1.1, TerminalGrowthAdj: 1.1}
	ScenarioBase = Scenario{Name: "Base", RevenueGrowthAdj: 1.0, MarginAdj: 1.0, TerminalGrowthAdj: 1.0}
	ScenarioBear = Scenario{Name: "Bear", RevenueGrowthAdj: 0.8, MarginAdj: 0.9, TerminalGrowthAdj: 0.9}
)

// ScenarioByName resolves a case-insensitive scenario name, defaulting to
// the base case for unknown names.
func ScenarioByName(name string) Scenario {
	switch name {
	case "bull", "Bull", "BULL":
		return ScenarioBull
	case "bear", "Bear", "BEAR":
		return ScenarioBear
	default:
		return ScenarioBase
	}
}

// Apply returns a copy of the DCF input with the scenario factors applied.
func (s Scenario) Apply(input DCFInput) DCFInput {
	out := input
	out.RevenueGrowth = input.RevenueGrowth * s.RevenueGrowthAdj
	out.EBITDAMargin = input.EBITDAMargin * s.MarginAdj
	out.TerminalGrowth = input.TerminalGrowth * s.TerminalGrowthAdj
	return out
}
