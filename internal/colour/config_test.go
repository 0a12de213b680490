package colour

import "testing"

func TestDefaultShadeConfigValid(t *testing.T) {
	if err := DefaultShadeConfig().Validate(); err != nil {
		t.Fatalf("DefaultShadeConfig().Validate() = %v", err)
	}
}

func TestShadeConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShadeConfig)
	}{
		{name: "aa above aaa", mutate: func(c *ShadeConfig) { c.Contrast.AAMinimum = 8 }},
		{name: "ceiling below aaa", mutate: func(c *ShadeConfig) { c.Contrast.MaximumRecommended = 6 }},
		{name: "inverted tint window", mutate: func(c *ShadeConfig) { c.Ribbon.Tint = Window{MinY: 0.9, MaxY: 0.5} }},
		{name: "shade window beyond one", mutate: func(c *ShadeConfig) { c.Ribbon.Shade.MaxY = 1.2 }},
		{name: "zero ribbon step", mutate: func(c *ShadeConfig) { c.Ribbon.Step = 0 }},
		{name: "ribbon step below rounding", mutate: func(c *ShadeConfig) { c.Ribbon.Step = 0.00001 }},
		{name: "no samples", mutate: func(c *ShadeConfig) { c.Ribbon.SampleCount = 0 }},
		{name: "negative overlap", mutate: func(c *ShadeConfig) { c.Ribbon.Split.OverlapThreshold = -1 }},
		{name: "default out of range", mutate: func(c *ShadeConfig) { c.Defaults.Dark = -0.1 }},
		{name: "negative gap", mutate: func(c *ShadeConfig) { c.Gaps.Shade = -0.01 }},
		{name: "zero seek step", mutate: func(c *ShadeConfig) { c.Seek.Step = 0 }},
		{name: "seek step below rounding", mutate: func(c *ShadeConfig) { c.Seek.Step = 0.00001 }},
		{name: "no seek iterations", mutate: func(c *ShadeConfig) { c.Seek.MaxIterations = 0 }},
		{name: "inverted seek bounds", mutate: func(c *ShadeConfig) { c.Seek.MinY, c.Seek.MaxY = 0.9, 0.1 }},
		{name: "solver eps", mutate: func(c *ShadeConfig) { c.Solver.Eps = 0 }},
		{name: "bad text colour", mutate: func(c *ShadeConfig) { c.Text.OnDark = "ivory" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultShadeConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestShadeConfigValidateShorthandText(t *testing.T) {
	cfg := DefaultShadeConfig()
	cfg.Text.OnLight, cfg.Text.OnDark = "#111", "#fff"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want shorthand text colours accepted", err)
	}
}

func TestContrastClassify(t *testing.T) {
	c := DefaultShadeConfig().Contrast

	tests := []struct {
		ratio float64
		want  Compliance
	}{
		{ratio: 21, want: ComplianceAAA},
		{ratio: 7, want: ComplianceAAA},
		{ratio: 6.99, want: ComplianceAA},
		{ratio: 4.5, want: ComplianceAA},
		{ratio: 4.49, want: ComplianceInfeasible},
		{ratio: 1, want: ComplianceInfeasible},
	}

	for _, tt := range tests {
		if got := c.classify(tt.ratio); got != tt.want {
			t.Errorf("classify(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}

func TestRibbonWindowFor(t *testing.T) {
	rc := DefaultShadeConfig().Ribbon
	for _, b := range Bands {
		want := rc.Shade
		if b.IsTint() {
			want = rc.Tint
		}
		if got := rc.WindowFor(b); got != want {
			t.Errorf("WindowFor(%s) = %+v, want %+v", b, got, want)
		}
	}
}
