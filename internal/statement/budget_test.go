package statement

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Budget", func() {
	var budget Budget

	BeforeEach(func() {
		budget = DefaultBudget()
	})

	Describe("totals", func() {
		It("should add salary and other income", func() {
			budget.OtherIncome = dec("125.50")
			Expect(budget.TotalIncome().StringFixed(2)).To(Equal("3125.50"))
		})

		It("should add the fixed expenses", func() {
			Expect(budget.TotalFixed().StringFixed(2)).To(Equal("1590.00"))
		})
	})

	Describe("Summarize", func() {
		var summary Summary

		JustBeforeEach(func() {
			summary = budget.Summarize(dec("1200.75"))
		})

		It("should compute the forecast before spending", func() {
			Expect(summary.Forecast.StringFixed(2)).To(Equal("1410.00"))
		})

		It("should subtract spending from the forecast", func() {
			Expect(summary.TotalSpent.StringFixed(2)).To(Equal("1200.75"))
			Expect(summary.Remaining.StringFixed(2)).To(Equal("209.25"))
		})

		When("spending exceeds the forecast", func() {
			BeforeEach(func() {
				budget.Salary = dec("2000")
			})

			It("should report a negative remainder", func() {
				Expect(summary.Remaining.StringFixed(2)).To(Equal("-790.75"))
				Expect(summary.Remaining.IsNegative()).To(BeTrue())
			})
		})
	})

	Describe("Validate", func() {
		It("should accept the defaults", func() {
			Expect(budget.Validate()).To(Succeed())
		})

		It("should accept zero everywhere", func() {
			Expect(Budget{}.Validate()).To(Succeed())
		})

		It("should report every negative field", func() {
			budget.Rent = dec("-1")
			budget.Savings = dec("-0.01")

			err := budget.Validate()
			Expect(err).To(MatchError(ContainSubstring("rent must not be negative, got -1.00")))
			Expect(err).To(MatchError(ContainSubstring("savings must not be negative, got -0.01")))
		})
	})
})
