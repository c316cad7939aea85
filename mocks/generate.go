package mocks

//go:generate mockgen -destination=./mock_converter.go -package=mocks github.com/rxtech-lab/argo-fees/internal/fee/convert Converter
