package service

const (
	MinMachinesPerBatch = 2 // a comparison needs something to compare against
	MaxMachinesPerBatch = 6

	MaxMoneyAmount = 1_000_000_000_000.0 // sanity cap on any currency field
	MaxHours       = 1_000_000.0         // sanity cap on lifespan and hours used

	DefaultReportPrecision = 2
)
