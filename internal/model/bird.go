package model

type Bird struct {
	ID           int64
	BinomialName string
}

type Locale struct {
	ID   int64
	Code string
}
