package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxdeedflow/pkg/core/holding"
	"taxdeedflow/pkg/models"
)

func saneDeal() models.DealAssumptions {
	return models.DealAssumptions{
		AcquisitionPrice: 50000,
		ARV:              150000,
		HoldingMonths:    6,
		SellingCostRate:  0.08,
	}
}

func TestROIInputs_CleanDeal(t *testing.T) {
	assert.Empty(t, ROIInputs(saneDeal()))
}

func TestROIInputs_Warnings(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.DealAssumptions)
		want   string
	}{
		{"zero price", func(d *models.DealAssumptions) { d.AcquisitionPrice = 0 }, "acquisition price"},
		{"arv below price", func(d *models.DealAssumptions) { d.ARV = 40000 }, "below the acquisition price"},
		{"missing arv", func(d *models.DealAssumptions) { d.ARV = 0 }, "no ARV supplied"},
		{"long hold", func(d *models.DealAssumptions) { d.HoldingMonths = 72 }, "exceeds 60"},
		{"negative rehab", func(d *models.DealAssumptions) { d.RehabCost = -1 }, "negative rehab"},
		{"selling rate", func(d *models.DealAssumptions) { d.SellingCostRate = 0.25 }, "selling cost rate"},
		{"loan-shark rate", func(d *models.DealAssumptions) {
			d.Financing = &models.FinancingTerms{AnnualRate: 0.30}
		}, "interest rate"},
		{"bad probability", func(d *models.DealAssumptions) {
			d.LeaseOption.ExerciseProbability = 1.4
		}, "exercise probability"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := saneDeal()
			tc.mutate(&d)
			warnings := ROIInputs(d)
			assert.Len(t, warnings, 1)
			assert.Contains(t, warnings[0], tc.want)
		})
	}
}

func TestROIInputs_Accumulate(t *testing.T) {
	d := models.DealAssumptions{HoldingMonths: 100, RehabCost: -5}
	warnings := ROIInputs(d)
	// zero price, no ARV, long hold, negative rehab.
	assert.Len(t, warnings, 4)
}

func TestHoldingCostInputs(t *testing.T) {
	in := holding.Inputs{
		PropertyValue: 150000,
		SquareFeet:    1500,
		State:         "PA",
		HoldingMonths: 6,
	}
	assert.Empty(t, HoldingCostInputs(in))

	in.PropertyValue = 0
	in.SquareFeet = 0
	in.State = "Penn"
	warnings := HoldingCostInputs(in)
	assert.Len(t, warnings, 3)
	assert.Contains(t, warnings[2], "state code")

	big := holding.Inputs{PropertyValue: 1, SquareFeet: 25000, State: "TX"}
	warnings = HoldingCostInputs(big)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "20,000")
}
