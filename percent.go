package report

// Percentage is implemented by types that can express
// a percentage as fraction of one.
//
// Percentage formatted cells only change how a number is rendered,
// they never multiply the stored value by 100.
// A cell holding 45 renders as "4500.00%", a cell holding 0.45 as "45.00%".
// Construct percentage cells with Percent(Fraction(0.45))
// or Percent(WholePercent(45)) to make the convention explicit.
type Percentage interface {
	Fraction() float64
}

var (
	_ Percentage = Fraction(0)
	_ Percentage = WholePercent(0)
)

// Fraction is a percentage expressed as fraction of one,
// where 0.45 means 45%.
type Fraction float64

func (f Fraction) Fraction() float64 { return float64(f) }

// WholePercent is a percentage expressed in whole percent,
// where 45 means 45%.
type WholePercent float64

func (p WholePercent) Fraction() float64 { return float64(p) / 100 }
