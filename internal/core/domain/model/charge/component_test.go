package charge_test

import (
	"testing"

	"freight/internal/core/domain/model/charge"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basic() charge.Basic {
	return charge.NewBasic(kernel.MustMoney("50.00"), "Zone rate")
}

func TestBasic(t *testing.T) {
	b := basic()

	assert.True(t, b.Cost().Equal(kernel.MustMoney("50.00")))
	assert.Equal(t, []string{"Priced by: Zone rate"}, b.Describe())
}

func TestDecorators_Cost(t *testing.T) {
	testCases := []struct {
		name      string
		component charge.Component
		expected  string
	}{
		{"toll", charge.WithToll(basic(), 3), "75.50"},
		{"insurance", charge.WithInsurance(basic(), charge.DefaultDeclaredValue), "70.00"},
		{"reinforced packaging", charge.WithPackaging(basic(), charge.PackagingReinforced), "75.00"},
		{"thermal packaging", charge.WithPackaging(basic(), charge.PackagingThermal), "95.00"},
		{"antistatic packaging", charge.WithPackaging(basic(), charge.PackagingAntistatic), "105.00"},
		{"unknown packaging", charge.WithPackaging(basic(), charge.PackagingKind("bubble")), "75.00"},
		{"zero tolls", charge.WithToll(basic(), 0), "50.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.component.Cost().Equal(kernel.MustMoney(tc.expected)),
				"got %s", tc.component.Cost())
		})
	}
}

func TestDecorators_Describe(t *testing.T) {
	t.Run("lines are appended innermost first", func(t *testing.T) {
		// Given
		c := charge.WithPackaging(
			charge.WithInsurance(
				charge.WithToll(basic(), 3),
				kernel.MustMoney("1500.00")),
			charge.PackagingReinforced)

		// When
		lines := c.Describe()

		// Then
		assert.Equal(t, []string{
			"Priced by: Zone rate",
			"+ Tolls (3x): R$ 25.50",
			"+ Insurance (declared R$ 1500.00): R$ 30.00",
			"+ Packaging reinforced: R$ 25.00",
		}, lines)
	})

	t.Run("every decoration adds exactly one line", func(t *testing.T) {
		var c charge.Component = basic()
		for i := 1; i <= 5; i++ {
			c = charge.WithToll(c, 1)
			assert.Len(t, c.Describe(), i+1)
		}
	})

	t.Run("returned slice is not shared with the chain", func(t *testing.T) {
		// Given
		c := charge.WithToll(basic(), 2)
		lines := c.Describe()

		// When
		lines[0] = "tampered"
		_ = append(lines, "extra")

		// Then
		assert.Equal(t, "Priced by: Zone rate", c.Describe()[0])
		assert.Len(t, c.Describe(), 2)
	})
}

func TestDecorators_OrderIndependence(t *testing.T) {
	declared := kernel.MustMoney("1500.00")
	orders := map[string]charge.Component{
		"toll-insurance-packaging": charge.WithPackaging(charge.WithInsurance(charge.WithToll(basic(), 3), declared), charge.PackagingThermal),
		"packaging-toll-insurance": charge.WithInsurance(charge.WithToll(charge.WithPackaging(basic(), charge.PackagingThermal), 3), declared),
		"insurance-packaging-toll": charge.WithToll(charge.WithPackaging(charge.WithInsurance(basic(), declared), charge.PackagingThermal), 3),
	}

	expected := kernel.MustMoney("150.50")
	for name, c := range orders {
		t.Run(name, func(t *testing.T) {
			assert.True(t, c.Cost().Equal(expected), "got %s", c.Cost())
		})
	}
}

func TestDecorators_Duplicates(t *testing.T) {
	// Given
	once := charge.WithInsurance(basic(), charge.DefaultDeclaredValue)

	// When
	twice := charge.WithInsurance(once, charge.DefaultDeclaredValue)

	// Then
	assert.True(t, twice.Cost().Equal(kernel.MustMoney("90.00")))
	require.Len(t, twice.Describe(), 3)
	assert.Equal(t, twice.Describe()[1], twice.Describe()[2])
}

func TestDecorators_Accessors(t *testing.T) {
	assert.Equal(t, 4, charge.WithToll(basic(), 4).Count())
	assert.True(t, charge.WithInsurance(basic(), kernel.MustMoney("10")).DeclaredValue().Equal(kernel.MustMoney("10")))
	assert.Equal(t, charge.PackagingThermal, charge.WithPackaging(basic(), charge.PackagingThermal).Kind())
}
