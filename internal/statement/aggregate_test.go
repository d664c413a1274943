package statement

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func record(date time.Time, amount string) TransactionRecord {
	return TransactionRecord{Date: &date, Amount: dec(amount)}
}

func undatedRecord(amount string) TransactionRecord {
	return TransactionRecord{Amount: dec(amount)}
}

var _ = Describe("Aggregate", func() {
	var (
		records []TransactionRecord
		totals  []DailyTotal
	)

	JustBeforeEach(func() {
		totals = Aggregate(records)
	})

	When("there are no records", func() {
		BeforeEach(func() {
			records = nil
		})

		It("should return an empty result", func() {
			Expect(totals).NotTo(BeNil())
			Expect(totals).To(BeEmpty())
		})
	})

	When("three records share a date", func() {
		BeforeEach(func() {
			d := day(2025, time.March, 15)
			records = []TransactionRecord{
				record(d, "12.50"),
				record(d, "7.25"),
				record(d, "0.25"),
			}
		})

		It("should produce one total", func() {
			Expect(totals).To(HaveLen(1))
			Expect(*totals[0].Date).To(Equal(day(2025, time.March, 15)))
			Expect(totals[0].Total.StringFixed(2)).To(Equal("20.00"))
			Expect(totals[0].Count).To(Equal(3))
		})
	})

	When("records span several dates out of order", func() {
		BeforeEach(func() {
			records = []TransactionRecord{
				record(day(2025, time.March, 20), "5.00"),
				record(day(2025, time.March, 2), "1.10"),
				record(day(2025, time.March, 20), "2.00"),
				record(day(2025, time.February, 28), "9.99"),
			}
		})

		It("should sort totals by ascending date", func() {
			Expect(totals).To(HaveLen(3))
			Expect(*totals[0].Date).To(Equal(day(2025, time.February, 28)))
			Expect(*totals[1].Date).To(Equal(day(2025, time.March, 2)))
			Expect(*totals[2].Date).To(Equal(day(2025, time.March, 20)))
		})

		It("should sum per date", func() {
			Expect(totals[2].Total.StringFixed(2)).To(Equal("7.00"))
			Expect(totals[2].Count).To(Equal(2))
		})
	})

	When("records carry a time of day", func() {
		BeforeEach(func() {
			records = []TransactionRecord{
				record(time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC), "1.00"),
				record(time.Date(2025, time.March, 15, 18, 0, 0, 0, time.UTC), "2.00"),
			}
		})

		It("should group by calendar date", func() {
			Expect(totals).To(HaveLen(1))
			Expect(totals[0].Total.StringFixed(2)).To(Equal("3.00"))
		})
	})

	When("some records are undated", func() {
		BeforeEach(func() {
			records = []TransactionRecord{
				undatedRecord("10.00"),
				record(day(2025, time.March, 15), "42.17"),
				undatedRecord("3.00"),
			}
		})

		It("should group them last", func() {
			Expect(totals).To(HaveLen(2))
			Expect(totals[0].Date).NotTo(BeNil())
			Expect(totals[1].Date).To(BeNil())
			Expect(totals[1].Total.StringFixed(2)).To(Equal("13.00"))
			Expect(totals[1].Count).To(Equal(2))
		})
	})

	Describe("invariants", func() {
		BeforeEach(func() {
			records = []TransactionRecord{
				record(day(2025, time.March, 1), "0.10"),
				record(day(2025, time.March, 1), "0.20"),
				record(day(2025, time.March, 3), "19.99"),
				record(day(2025, time.March, 2), "100.01"),
				undatedRecord("0.05"),
				record(day(2025, time.March, 3), "0.01"),
				record(day(2025, time.April, 1), "1234.56"),
			}
		})

		It("should not depend on input order", func() {
			rng := rand.New(rand.NewSource(42))
			for i := 0; i < 20; i++ {
				shuffled := make([]TransactionRecord, len(records))
				copy(shuffled, records)
				rng.Shuffle(len(shuffled), func(a, b int) {
					shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
				})

				got := Aggregate(shuffled)
				Expect(got).To(HaveLen(len(totals)))
				for j := range got {
					Expect(got[j].Date).To(Equal(totals[j].Date))
					Expect(got[j].Total.Equal(totals[j].Total)).To(BeTrue())
					Expect(got[j].Count).To(Equal(totals[j].Count))
				}
			}
		})

		It("should preserve the overall sum to the cent", func() {
			sum := dec("0")
			for _, t := range totals {
				sum = sum.Add(t.Total)
			}
			Expect(sum.StringFixed(2)).To(Equal(Sum(records).StringFixed(2)))
			Expect(sum.StringFixed(2)).To(Equal("1354.92"))
		})
	})
})
