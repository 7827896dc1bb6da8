package unit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/unitlab/internal/dimension"
	"github.com/san-kum/unitlab/internal/magnitude"
	"github.com/san-kum/unitlab/internal/rational"
	"github.com/san-kum/unitlab/internal/unit"
)

var (
	meter  = unit.NewBase(dimension.Of(dimension.Length), "m")
	second = unit.NewBase(dimension.Of(dimension.Time), "s")
	gram   = unit.NewBase(dimension.Of(dimension.Mass), "g")
	minute = second.Scaled(magnitude.MustInt(60)).Labeled("min")
	inch   = unit.Centi(meter).Scaled(magnitude.MustRatio(254, 100)).Labeled("in")
	kelvin = unit.NewBase(dimension.Of(dimension.Temperature), "K")
)

var _ = Describe("Unit", func() {
	Describe("base units", func() {
		It("have magnitude one", func() {
			Expect(meter.Magnitude().IsOne()).To(BeTrue())
			Expect(meter.Dimension()).To(Equal(dimension.Of(dimension.Length)))
			Expect(meter.String()).To(Equal("m"))
		})
	})

	Describe("composition", func() {
		speed := unit.Quotient(meter, second)

		It("composes dimensions additively", func() {
			Expect(speed.Dimension()).To(Equal(meter.Dimension().Div(second.Dimension())))
			Expect(unit.Product(meter, gram).Dimension()).To(Equal(meter.Dimension().Mul(gram.Dimension())))
		})

		It("recovers A from (A/B)*B", func() {
			for _, pair := range [][2]unit.Unit{{meter, second}, {inch, minute}, {speed, gram}} {
				a, b := pair[0], pair[1]
				Expect(unit.Product(unit.Quotient(a, b), b).Equal(a)).To(BeTrue())
			}
		})

		It("builds readable labels", func() {
			Expect(speed.String()).To(Equal("m / s"))
			Expect(unit.Quotient(speed, second).String()).To(Equal("(m / s) / s"))
			Expect(unit.MustPow(meter, rational.Int(2)).String()).To(Equal("m^2"))
			Expect(unit.Kilo(meter).String()).To(Equal("km"))
		})

		It("ignores labels for identity", func() {
			Expect(speed.Labeled("mps").Equal(speed)).To(BeTrue())
			Expect(speed.Key()).To(Equal(speed.Labeled("mps").Key()))
		})

		It("supports rational powers when the dimension allows them", func() {
			area := unit.MustPow(meter, rational.Int(2))
			side, err := unit.Root(area, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(side.Equal(meter)).To(BeTrue())

			_, err = unit.Root(meter, 2)
			Expect(err).To(MatchError(dimension.ErrFractionalExponent))

			_, err = unit.Root(meter, 0)
			Expect(err).To(MatchError(magnitude.ErrZeroRoot))
		})

		It("scales by magnitude power", func() {
			sqInch := unit.MustPow(inch, rational.Int(2))
			Expect(sqInch.Magnitude().Equal(magnitude.MustRatio(254*254, 10000*10000))).To(BeTrue())
		})

		It("inverts", func() {
			hz := unit.Inverse(second)
			Expect(hz.Dimension().Exponent(dimension.Time)).To(Equal(-1))
			Expect(unit.Product(hz, second).Dimension().IsDimensionless()).To(BeTrue())
		})
	})

	Describe("conversion queries", func() {
		It("checks convertibility by dimension", func() {
			Expect(unit.Convertible(meter, inch)).To(BeTrue())
			Expect(unit.Convertible(meter, second)).To(BeFalse())
		})

		It("computes exact ratios", func() {
			r, err := unit.Ratio(inch, unit.Centi(meter))
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Equal(magnitude.MustRatio(254, 100))).To(BeTrue())

			_, err = unit.Ratio(meter, second)
			Expect(err).To(MatchError(unit.ErrIncompatible))
		})

		It("picks the finer unit", func() {
			Expect(unit.Finer(meter, inch).Equal(inch)).To(BeTrue())
			Expect(unit.Finer(minute, second).Equal(second)).To(BeTrue())
			Expect(unit.Finer(meter, meter.Labeled("metre")).Label()).To(Equal("m"))
		})
	})

	Describe("affine units", func() {
		celsius := unit.NewAffine(kelvin, rational.New(27315, 100), "degC")

		It("exposes the difference unit and origin", func() {
			Expect(celsius.Difference().Equal(kelvin)).To(BeTrue())
			Expect(celsius.Origin()).To(Equal(rational.New(27315, 100)))
			Expect(celsius.Dimension()).To(Equal(kelvin.Dimension()))
		})

		It("includes the origin in identity", func() {
			zero := unit.NewAffine(kelvin, rational.Zero, "K")
			Expect(celsius.Equal(zero)).To(BeFalse())
			Expect(celsius.Equal(celsius.Labeled("°C"))).To(BeTrue())
			Expect(unit.AffineConvertible(celsius, zero)).To(BeTrue())
		})
	})

	Describe("prefixes", func() {
		It("scales by powers of ten and two", func() {
			Expect(unit.Milli(meter).Magnitude().Equal(magnitude.PowerOfTen(-3))).To(BeTrue())
			kib := unit.PrefixKibi.Apply(gram)
			Expect(kib.Magnitude().Equal(magnitude.MustInt(1024))).To(BeTrue())
			Expect(kib.Label()).To(Equal("Kig"))
		})
	})
})
