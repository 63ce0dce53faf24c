package fees

type ZeroFee struct{}

func NewZeroFee() *ZeroFee {
	return &ZeroFee{}
}

func (f *ZeroFee) Calculate(quantity float64, price float64) float64 {
	return 0
}
