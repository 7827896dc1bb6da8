package quantity_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/unitlab/internal/conversion"
	"github.com/san-kum/unitlab/internal/dimension"
	"github.com/san-kum/unitlab/internal/magnitude"
	"github.com/san-kum/unitlab/internal/quantity"
	"github.com/san-kum/unitlab/internal/rational"
	"github.com/san-kum/unitlab/internal/unit"
)

var (
	meter      = unit.NewBase(dimension.Of(dimension.Length), "m")
	centimeter = unit.Centi(meter)
	inch       = centimeter.Scaled(magnitude.MustRatio(254, 100)).Labeled("in")
	foot       = inch.Scaled(magnitude.MustInt(12)).Labeled("ft")
	second     = unit.NewBase(dimension.Of(dimension.Time), "s")
	minute     = second.Scaled(magnitude.MustInt(60)).Labeled("min")
	radian     = unit.NewBase(dimension.Of(dimension.Angle), "rad")
	degree     = radian.Scaled(magnitude.Pi().Div(magnitude.MustInt(180))).Labeled("deg")
	kelvin     = unit.NewBase(dimension.Of(dimension.Temperature), "K")
	rankine    = kelvin.Scaled(magnitude.MustRatio(5, 9)).Labeled("R")

	kelvinScale     = unit.NewAffine(kelvin, rational.Zero, "K")
	celsiusScale    = unit.NewAffine(kelvin, rational.New(27315, 100), "degC")
	fahrenheitScale = unit.NewAffine(rankine, rational.New(45967, 180), "degF")
	shiftedScale    = unit.NewAffine(kelvin, rational.Int(100), "K+100")
)

var _ = Describe("Quantity", func() {
	Describe("conversion", func() {
		It("converts exactly when the factor is whole", func() {
			q, err := quantity.Of(int32(3), meter).In(centimeter)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Value()).To(Equal(int32(300)))
			Expect(q.Unit().Equal(centimeter)).To(BeTrue())
		})

		It("converts when the denominator divides the value", func() {
			q, err := quantity.Of(int32(254), centimeter).In(inch)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Value()).To(Equal(int32(100)))
		})

		It("rejects silent truncation", func() {
			_, err := quantity.Of(int32(250), centimeter).In(meter)
			Expect(err).To(MatchError(conversion.ErrTruncation))
		})

		It("truncates once acknowledged", func() {
			q, err := quantity.Of(int32(250), centimeter).InLossy(meter)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Value()).To(Equal(int32(2)))
		})

		It("rejects overflow of the concrete value", func() {
			_, err := quantity.Of(int8(2), meter).In(centimeter)
			Expect(err).To(MatchError(conversion.ErrOverflow))

			_, err = quantity.Of(int8(2), meter).InLossy(centimeter)
			Expect(err).To(MatchError(conversion.ErrOverflow))
		})

		It("rejects lossy floating results beyond the representation", func() {
			kilometer := unit.Kilo(meter)
			_, err := quantity.Of(1e308, kilometer).InLossy(meter)
			Expect(err).To(MatchError(conversion.ErrOverflow))

			_, err = quantity.Of(float32(3e38), kilometer).InLossy(meter)
			Expect(err).To(MatchError(conversion.ErrOverflow))

			q, err := quantity.Of(1e300, kilometer).InLossy(meter)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Value()).To(BeNumerically("~", 1e303, 1e288))
		})

		It("rejects lossy irrational results beyond the integral range", func() {
			_, err := quantity.Of(int8(127), radian).InLossy(degree)
			Expect(err).To(MatchError(conversion.ErrOverflow))

			q, err := quantity.Of(int8(2), radian).InLossy(degree)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Value()).To(Equal(int8(114)))
		})

		It("refuses integral conversions with irrational factors unless lossy", func() {
			_, err := quantity.Of(180, degree).In(radian)
			Expect(err).To(MatchError(conversion.ErrTruncation))

			q, err := quantity.Of(180, degree).InLossy(radian)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Value()).To(Equal(3))

			f, err := quantity.Of(180.0, degree).In(radian)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Value()).To(BeNumerically("~", 3.141592653589793, 1e-15))
		})

		It("rejects incompatible dimensions", func() {
			_, err := quantity.Of(1.0, meter).In(second)
			Expect(err).To(MatchError(unit.ErrIncompatible))
		})

		It("round-trips exactly for exact conversions", func() {
			for _, v := range []int64{-2147, -1, 0, 1, 99, 2147} {
				there, err := quantity.Of(v, foot).In(inch)
				Expect(err).NotTo(HaveOccurred())
				back, err := there.In(foot)
				Expect(err).NotTo(HaveOccurred())
				Expect(back.Value()).To(Equal(v))
			}
		})

		It("approximates in base units", func() {
			Expect(quantity.Of(2, inch).Approximate()).To(BeNumerically("~", 0.0508, 1e-15))
		})
	})

	Describe("addition and comparison", func() {
		It("adds in the finer unit", func() {
			sum, err := quantity.Add(quantity.Of(1, foot), quantity.Of(3, inch))
			Expect(err).NotTo(HaveOccurred())
			Expect(sum.Value()).To(Equal(15))
			Expect(sum.Unit().Label()).To(Equal("in"))

			diff, err := quantity.Sub(quantity.Of(2, minute), quantity.Of(30, second))
			Expect(err).NotTo(HaveOccurred())
			Expect(diff.Value()).To(Equal(90))
		})

		It("rejects sums with no exact common unit for integers", func() {
			_, err := quantity.Add(quantity.Of(1, inch), quantity.Of(1, centimeter))
			Expect(err).To(MatchError(quantity.ErrNoCommonUnit))
			Expect(err).To(MatchError(conversion.ErrTruncation))
		})

		It("accepts floating rounding", func() {
			sum, err := quantity.Add(quantity.Of(1.0, inch), quantity.Of(1.0, centimeter))
			Expect(err).NotTo(HaveOccurred())
			Expect(sum.Value()).To(BeNumerically("~", 3.54, 1e-12))
		})

		It("rejects mismatched dimensions", func() {
			_, err := quantity.Add(quantity.Of(1, meter), quantity.Of(1, second))
			Expect(err).To(MatchError(unit.ErrIncompatible))

			_, err = quantity.Compare(quantity.Of(1, meter), quantity.Of(1, second))
			Expect(err).To(MatchError(unit.ErrIncompatible))
		})

		It("compares across units", func() {
			eq, err := quantity.Equal(quantity.Of(12, inch), quantity.Of(1, foot))
			Expect(err).NotTo(HaveOccurred())
			Expect(eq).To(BeTrue())

			less, err := quantity.Less(quantity.Of(11, inch), quantity.Of(1, foot))
			Expect(err).NotTo(HaveOccurred())
			Expect(less).To(BeTrue())

			c, err := quantity.Compare(quantity.Of(2, minute), quantity.Of(100, second))
			Expect(err).NotTo(HaveOccurred())
			Expect(c).To(Equal(1))
		})
	})

	Describe("products and scalars", func() {
		It("composes units without converting", func() {
			speed := quantity.Div(quantity.Of(10.0, meter), quantity.Of(2.0, second))
			Expect(speed.Value()).To(Equal(5.0))
			Expect(speed.Unit().Dimension()).To(Equal(meter.Dimension().Div(second.Dimension())))

			dist := quantity.Mul(speed, quantity.Of(3.0, second))
			Expect(dist.Unit().Equal(meter)).To(BeTrue())
			Expect(dist.Value()).To(Equal(15.0))
		})

		It("scales by dimensionless values", func() {
			q := quantity.Of(6, meter)
			Expect(q.Scale(2).Value()).To(Equal(12))
			Expect(q.DivideBy(4).Value()).To(Equal(1))
			Expect(q.Neg().Value()).To(Equal(-6))
			Expect(q.Scale(2).Unit().Equal(meter)).To(BeTrue())
		})

		It("formats value and unit", func() {
			Expect(quantity.Of(3, inch).String()).To(Equal("3 in"))
		})
	})

	Describe("Converter", func() {
		It("vets the plan once for the whole bound", func() {
			c, err := quantity.NewConverter[int32](meter, centimeter)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Convert(7)).To(Equal(int32(700)))
			Expect(c.Plan().Class).To(Equal(conversion.Exact))

			q, err := c.Quantity(quantity.Of(int32(2), meter))
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Value()).To(Equal(int32(200)))

			_, err = c.Quantity(quantity.Of(int32(2), foot))
			Expect(err).To(MatchError(unit.ErrIncompatible))
		})

		It("requires acknowledgement for truncating plans", func() {
			_, err := quantity.NewConverter[int32](centimeter, meter)
			Expect(err).To(MatchError(conversion.ErrTruncation))

			c, err := quantity.NewConverter[int32](centimeter, meter, quantity.Lossy())
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Convert(199)).To(Equal(int32(1)))
		})

		It("rejects plans that overflow within the bound", func() {
			_, err := quantity.NewConverter[int16](meter, unit.Milli(meter))
			Expect(err).To(MatchError(conversion.ErrOverflow))

			c, err := quantity.NewConverter[int16](meter, unit.Milli(meter), quantity.WithBound(30))
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Convert(30)).To(Equal(int16(30000)))
		})

		It("uses a private cache when given one", func() {
			cache := conversion.NewCache(nil)
			_, err := quantity.NewConverter[float64](foot, meter, quantity.WithCache(cache))
			Expect(err).NotTo(HaveOccurred())
			Expect(cache.Len()).To(Equal(1))
		})

		It("panics on invalid Must definitions", func() {
			Expect(func() { quantity.MustConverter[int32](meter, second) }).To(Panic())
		})
	})
})

var _ = Describe("Point", func() {
	It("converts between scales in floating point", func() {
		boiling := quantity.PointOf(100.0, celsiusScale)
		f, err := boiling.In(fahrenheitScale)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Value()).To(BeNumerically("~", 212.0, 1e-9))

		k, err := quantity.PointOf(300.0, kelvinScale).In(celsiusScale)
		Expect(err).NotTo(HaveOccurred())
		Expect(k.Value()).To(BeNumerically("~", 26.85, 1e-9))
	})

	It("shifts integral points exactly when the origin shift is whole", func() {
		p, err := quantity.PointOf(50, shiftedScale).In(kelvinScale)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Value()).To(Equal(150))

		back, err := p.In(shiftedScale)
		Expect(err).NotTo(HaveOccurred())
		Expect(back.Value()).To(Equal(50))
	})

	It("refuses origin shifts that leave the integral range", func() {
		_, err := quantity.PointOf(int8(100), shiftedScale).In(kelvinScale)
		Expect(err).To(MatchError(conversion.ErrOverflow))

		_, err = quantity.PointOf(int8(100), shiftedScale).InLossy(kelvinScale)
		Expect(err).To(MatchError(conversion.ErrOverflow))

		p, err := quantity.PointOf(int8(20), shiftedScale).In(kelvinScale)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Value()).To(Equal(int8(120)))

		_, err = quantity.PointOf(uint8(50), kelvinScale).In(shiftedScale)
		Expect(err).To(MatchError(conversion.ErrOverflow))

		u, err := quantity.PointOf(uint8(150), kelvinScale).In(shiftedScale)
		Expect(err).NotTo(HaveOccurred())
		Expect(u.Value()).To(Equal(uint8(50)))
	})

	It("rejects floating points scaled beyond the representation", func() {
		_, err := quantity.PointOf(float32(3e38), kelvinScale).In(fahrenheitScale)
		Expect(err).To(MatchError(conversion.ErrOverflow))
	})

	It("rejects fractional origin shifts for integers unless lossy", func() {
		_, err := quantity.PointOf(300, kelvinScale).In(celsiusScale)
		Expect(err).To(MatchError(conversion.ErrTruncation))

		p, err := quantity.PointOf(100, celsiusScale).InLossy(fahrenheitScale)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Value()).To(Equal(212))
	})

	It("differences points into the ratio unit", func() {
		a := quantity.PointOf(30.0, celsiusScale)
		b := quantity.PointOf(12.5, celsiusScale)
		d, err := quantity.Between(a, b)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Value()).To(Equal(17.5))
		Expect(d.Unit().Equal(kelvin)).To(BeTrue())

		_, err = quantity.Between(a, quantity.PointOf(1.0, kelvinScale))
		Expect(err).To(MatchError(quantity.ErrOriginMismatch))
	})

	It("shifts by intervals", func() {
		p, err := quantity.PointOf(20, celsiusScale).Add(quantity.Of(5, kelvin))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Value()).To(Equal(25))

		p, err = p.Sub(quantity.Of(9, rankine))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Value()).To(Equal(20))

		_, err = p.Add(quantity.Of(1, rankine))
		Expect(err).To(MatchError(conversion.ErrTruncation))
	})

	It("rejects points of other dimensions", func() {
		other := unit.NewAffine(meter, rational.Int(1), "m+1")
		_, err := quantity.PointOf(1.0, celsiusScale).In(other)
		Expect(err).To(MatchError(unit.ErrIncompatible))
	})

	It("approximates the absolute position", func() {
		Expect(quantity.PointOf(0.0, celsiusScale).Approximate()).To(BeNumerically("~", 273.15, 1e-12))
	})
})
