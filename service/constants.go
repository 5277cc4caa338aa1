package service

const (
	MaxVehiclePrice = 1_000_000_000 // 100 crore

	quoteCachePrefix    = "quote:"
	scheduleCachePrefix = "schedule:"

	DefaultRecentQuotes = 20
	MaxRecentQuotes     = 200
)
