// Package checkout computes per-order rewards and records them on the
// ledger. The calculator itself is pure; the service wires it to the
// catalog and the ledger engine.
package checkout

import "ecoshop/internal/models"

// MaxEcoPerUnit caps the token credit per unit regardless of the true
// emissions figure. The CO2-saved display stays uncapped.
const MaxEcoPerUnit = 50

// DeliveryMethod selects the delivery bonus/penalty.
type DeliveryMethod string

const (
	DeliveryBicycle     DeliveryMethod = "bicycle"
	DeliveryElectric    DeliveryMethod = "electric_standard"
	DeliveryGasStandard DeliveryMethod = "gas_standard"
	DeliveryGasExpress  DeliveryMethod = "gas_express"
)

// Adjustment is a delivery-method bonus or penalty.
type Adjustment struct {
	Eco float64 `json:"eco"`
	CO2 float64 `json:"co2"`
}

var deliveryAdjustments = map[DeliveryMethod]Adjustment{
	DeliveryBicycle:     {Eco: 5, CO2: 2.5},
	DeliveryElectric:    {Eco: 2, CO2: 1.0},
	DeliveryGasStandard: {Eco: -2, CO2: -0.5},
	DeliveryGasExpress:  {Eco: -5, CO2: -2.0},
}

// DeliveryAdjustment returns the fixed bonus/penalty for a method.
func DeliveryAdjustment(method DeliveryMethod) (Adjustment, bool) {
	adj, ok := deliveryAdjustments[method]
	return adj, ok
}

// CartLine is one catalog item with a quantity.
type CartLine struct {
	Product  models.Product
	Quantity int
}

// LineReward is the computed contribution of one cart line.
type LineReward struct {
	Product models.Product
	Eco     float64
	CO2     float64
}

// Totals is the full reward computation for a checkout.
type Totals struct {
	Lines      []LineReward
	ProductEco float64
	ProductCO2 float64
	Delivery   Adjustment
	EarnedEco  float64
	SavedCO2   float64
}

// CalculateRewards runs the per-order reward computation: capped token
// credit per unit, uncapped CO2 figure, plus the delivery adjustment.
func CalculateRewards(lines []CartLine, method DeliveryMethod) Totals {
	totals := Totals{Lines: make([]LineReward, 0, len(lines))}

	for _, line := range lines {
		ecoPerUnit := line.Product.CO2Emission
		if ecoPerUnit > MaxEcoPerUnit {
			ecoPerUnit = MaxEcoPerUnit
		}
		qty := float64(line.Quantity)

		reward := LineReward{
			Product: line.Product,
			Eco:     ecoPerUnit * qty,
			CO2:     line.Product.CO2Emission * qty,
		}
		totals.Lines = append(totals.Lines, reward)
		totals.ProductEco += reward.Eco
		totals.ProductCO2 += reward.CO2
	}

	adj, ok := DeliveryAdjustment(method)
	if ok {
		totals.Delivery = adj
	}

	totals.EarnedEco = totals.ProductEco + totals.Delivery.Eco
	totals.SavedCO2 = totals.ProductCO2 + totals.Delivery.CO2
	return totals
}
