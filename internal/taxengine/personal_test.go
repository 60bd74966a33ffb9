package taxengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonalTax_ZeroAndNegative(t *testing.T) {
	assert.Equal(t, 0.0, PersonalTax(0))
	assert.Equal(t, 0.0, PersonalTax(-1))
	assert.Equal(t, 0.0, PersonalTax(-5000))
}

func TestPersonalTax_Table(t *testing.T) {
	cases := []struct {
		income     float64
		inss, irpf float64
	}{
		{1412, 155.32, 0},
		{2000, 220, 0},
		{3000, 330, 30.81},                    // base 2670 -> 7,5%
		{4000, 440, 3560*0.15 - 381.44},       // base 3560 -> 15%
		{5000, 550, 4450*0.225 - 662.77},      // base 4450 -> 22,5%
		{7786.02, 856.4622, (7786.02-856.4622)*0.275 - 896},
		{10000, 856.4622, (10000-856.4622)*0.275 - 896}, // INSS no teto
	}
	for _, tc := range cases {
		inss, irpf := New(Rules2024).PersonalTaxBreakdown(tc.income)
		assert.InDelta(t, tc.inss, inss, eps, "inss income=%v", tc.income)
		assert.InDelta(t, tc.irpf, irpf, eps, "irpf income=%v", tc.income)
		assert.InDelta(t, tc.inss+tc.irpf, PersonalTax(tc.income), eps)
	}
}

func TestPersonalTax_Monotonic(t *testing.T) {
	prev := PersonalTax(0)
	for x := 0.5; x <= 20000; x += 0.5 {
		cur := PersonalTax(x)
		if cur+1e-9 < prev {
			t.Fatalf("tax decreased at %.2f: %.6f -> %.6f", x, prev, cur)
		}
		prev = cur
	}
}
