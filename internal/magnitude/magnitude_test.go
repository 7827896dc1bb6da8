package magnitude_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/unitlab/internal/magnitude"
	"github.com/san-kum/unitlab/internal/rational"
)

var _ = Describe("Magnitude", func() {
	Describe("construction", func() {
		It("rejects zero", func() {
			_, err := magnitude.Int(0)
			Expect(err).To(MatchError(magnitude.ErrZeroMagnitude))

			_, err = magnitude.Ratio(0, 3)
			Expect(err).To(MatchError(magnitude.ErrZeroMagnitude))

			_, err = magnitude.Ratio(3, 0)
			Expect(err).To(MatchError(magnitude.ErrZeroMagnitude))

			_, err = magnitude.ParseDecimal("0.000")
			Expect(err).To(MatchError(magnitude.ErrZeroMagnitude))
		})

		It("panics on zero in Must constructors", func() {
			Expect(func() { magnitude.MustInt(0) }).To(Panic())
		})

		It("factorizes into canonical prime powers", func() {
			m := magnitude.MustInt(360)
			Expect(m.String()).To(Equal("2^3 * 3^2 * 5"))
			Expect(m.Exponent(magnitude.Prime(2))).To(Equal(rational.Int(3)))
			Expect(m.Exponent(magnitude.Prime(7)).IsZero()).To(BeTrue())
		})

		It("keeps large prime cofactors", func() {
			// 662607015 = 3 * 5 * 7 * 6310543
			m := magnitude.MustInt(662607015)
			Expect(m.String()).To(Equal("3 * 5 * 7 * 6310543"))
			n, err := m.Numerator()
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(uint64(662607015)))
		})

		It("accepts a 64-bit prime beyond the trial division limit", func() {
			m, err := magnitude.Uint(18446744073709551557)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Factors()).To(HaveLen(1))
		})

		It("rejects composite cofactors with no small factor", func() {
			// 4294967291 and 4294967279 are both prime and above the search limit.
			_, err := magnitude.Uint(4294967291 * 4294967279)
			Expect(err).To(MatchError(magnitude.ErrFactorLimit))
		})

		It("carries the sign apart from the factors", func() {
			m := magnitude.MustInt(-12)
			Expect(m.IsNegative()).To(BeTrue())
			Expect(m.Abs().Equal(magnitude.MustInt(12))).To(BeTrue())
			Expect(m.Mul(magnitude.MustInt(-1)).Equal(magnitude.MustInt(12))).To(BeTrue())
		})

		It("parses exact decimals", func() {
			m, err := magnitude.ParseDecimal("0.3048")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Equal(magnitude.MustRatio(381, 1250))).To(BeTrue())
		})

		It("checks explicit factor bases", func() {
			_, err := magnitude.FromFactors(false, magnitude.Factor{Base: magnitude.Prime(9), Exp: rational.One})
			Expect(err).To(MatchError(ContainSubstring("not prime")))

			m, err := magnitude.FromFactors(false,
				magnitude.Factor{Base: magnitude.Prime(2), Exp: rational.Int(2)},
				magnitude.Factor{Base: magnitude.Prime(2), Exp: rational.Int(-1)},
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Equal(magnitude.MustInt(2))).To(BeTrue())
		})
	})

	Describe("algebra", func() {
		a := magnitude.MustRatio(254, 100)
		b := magnitude.Pi().Mul(magnitude.MustInt(3))
		c := magnitude.PowerOfTen(-3)

		It("multiplies commutatively and associatively", func() {
			Expect(a.Mul(b).Equal(b.Mul(a))).To(BeTrue())
			Expect(a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c)))).To(BeTrue())
		})

		It("cancels exponents to the canonical form", func() {
			Expect(a.Div(a).IsOne()).To(BeTrue())
			Expect(a.Mul(a.Inverse()).Factors()).To(BeEmpty())
		})

		It("undoes a power with the matching root", func() {
			sq, err := a.Pow(rational.Int(2))
			Expect(err).NotTo(HaveOccurred())
			back, err := sq.Root(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(back.Equal(a)).To(BeTrue())

			p := rational.New(2, 3)
			raised, err := a.Pow(p)
			Expect(err).NotTo(HaveOccurred())
			undone, err := raised.Pow(rational.One.Div(p))
			Expect(err).NotTo(HaveOccurred())
			Expect(undone.Equal(a)).To(BeTrue())
		})

		It("allows integer powers of pi only", func() {
			_, err := b.Root(2)
			Expect(err).To(MatchError(magnitude.ErrIrrationalPower))

			sq, err := b.Pow(rational.Int(2))
			Expect(err).NotTo(HaveOccurred())
			back, err := sq.Root(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(back.Equal(b)).To(BeTrue())
		})

		It("follows sign rules for powers", func() {
			neg := magnitude.MustInt(-8)
			cube, err := neg.Root(3)
			Expect(err).NotTo(HaveOccurred())
			Expect(cube.Equal(magnitude.MustInt(-2))).To(BeTrue())

			_, err = neg.Root(2)
			Expect(err).To(MatchError(magnitude.ErrNegativeRoot))

			sq, err := neg.Pow(rational.Int(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(sq.IsNegative()).To(BeFalse())
		})

		It("rejects the zeroth root", func() {
			_, err := a.Root(0)
			Expect(err).To(MatchError(magnitude.ErrZeroRoot))
		})

		It("reports exponent overflow from powers", func() {
			huge, err := magnitude.FromFactors(false, magnitude.Factor{Base: magnitude.Prime(2), Exp: rational.Int(math.MaxInt64)})
			Expect(err).NotTo(HaveOccurred())
			_, err = huge.Pow(rational.Int(2))
			Expect(err).To(MatchError(magnitude.ErrOverflow))
			Expect(err).To(MatchError(rational.ErrOverflow))
		})
	})

	Describe("classification queries", func() {
		It("distinguishes rational and integer magnitudes", func() {
			Expect(magnitude.MustInt(12).IsInteger()).To(BeTrue())
			Expect(magnitude.MustRatio(1, 12).IsInteger()).To(BeFalse())
			Expect(magnitude.MustRatio(1, 12).IsRational()).To(BeTrue())
			Expect(magnitude.Pi().IsRational()).To(BeFalse())

			half, _ := magnitude.MustInt(2).Pow(rational.New(1, 2))
			Expect(half.IsRational()).To(BeFalse())
		})

		It("reports numerator and denominator in lowest terms", func() {
			m := magnitude.MustRatio(254, 100)
			n, err := m.Numerator()
			Expect(err).NotTo(HaveOccurred())
			d, err := m.Denominator()
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(uint64(127)))
			Expect(d).To(Equal(uint64(50)))
		})

		It("refuses numerator of irrational magnitudes", func() {
			_, err := magnitude.Pi().Numerator()
			Expect(err).To(MatchError(magnitude.ErrNotRational))
		})

		It("detects 64-bit overflow", func() {
			_, err := magnitude.PowerOfTen(20).Numerator()
			Expect(err).To(MatchError(magnitude.ErrOverflow))
		})
	})

	Describe("equality and ordering", func() {
		It("requires symbolic equality for transcendental factors", func() {
			approx := magnitude.MustRatio(355, 113)
			Expect(approx.Equal(magnitude.Pi())).To(BeFalse())
			Expect(magnitude.Pi().Equal(magnitude.Pi())).To(BeTrue())
		})

		It("orders by numeric value", func() {
			Expect(magnitude.Less(magnitude.MustRatio(1, 3), magnitude.MustRatio(1, 2))).To(BeTrue())
			Expect(magnitude.Less(magnitude.MustRatio(355, 113), magnitude.Pi())).To(BeFalse())
			Expect(magnitude.Less(magnitude.MustRatio(22, 7), magnitude.Pi())).To(BeFalse())
			Expect(magnitude.Less(magnitude.MustInt(3), magnitude.Pi())).To(BeTrue())
			Expect(magnitude.Less(magnitude.MustInt(-5), magnitude.MustInt(1))).To(BeTrue())
			Expect(magnitude.Compare(magnitude.MustInt(-5), magnitude.MustInt(-2))).To(Equal(-1))
			Expect(magnitude.Compare(magnitude.PowerOfTen(30), magnitude.PowerOfTen(29))).To(Equal(1))
		})
	})

	Describe("approximation", func() {
		It("evaluates exactly representable values exactly", func() {
			Expect(magnitude.MustRatio(254, 100).Float64()).To(Equal(2.54))
			Expect(magnitude.PowerOfTen(-3).Float64()).To(Equal(0.001))
		})

		It("evaluates pi and fractional powers", func() {
			Expect(magnitude.Pi().Float64()).To(Equal(math.Pi))
			root2, err := magnitude.MustInt(2).Pow(rational.New(1, 2))
			Expect(err).NotTo(HaveOccurred())
			Expect(root2.Float64()).To(BeNumerically("~", math.Sqrt2, 1e-15))
		})

		It("keeps the sign", func() {
			Expect(magnitude.MustRatio(-1, 4).Float64()).To(Equal(-0.25))
		})
	})
})
