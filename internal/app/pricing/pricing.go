// Package pricing derives the deposit/balance split applied to every order
// total. The storefront takes half up front via mobile money and collects
// the rest on delivery.
package pricing

import "math"

// DepositRate is the upfront share of an order total
const DepositRate = 0.5

// Deposit is the upfront portion of a total, rounded to the nearest whole
// currency unit so the figure shown at checkout, in order history, and on
// the admin dashboard is always the same.
func Deposit(total float64) float64 {
	return math.Round(total * DepositRate)
}

// Balance is the remainder due on delivery. Defined as total minus deposit
// so the two always sum back to the total exactly.
func Balance(total float64) float64 {
	return total - Deposit(total)
}

// Split returns both portions at once
func Split(total float64) (deposit, balance float64) {
	deposit = Deposit(total)
	return deposit, total - deposit
}
