package dto

type CostOverviewResponse struct {
	TotalMonthly   float64            `json:"total_monthly"`
	TotalYearly    float64            `json:"total_yearly"`
	AverageMonthly float64            `json:"average_monthly"` // per enabled subscription
	ActiveCount    int                `json:"active_count"`
	Currency       string             `json:"currency"`
	ByCategory     map[string]float64 `json:"by_category"`
}

type UpcomingRenewalItem struct {
	Subscription SubscriptionResponse `json:"subscription"`
	DaysUntil    int                  `json:"days_until"`
}

type WeekBucketItem struct {
	Label     string  `json:"label"`
	Count     int     `json:"count"`
	TotalCost float64 `json:"total_cost"`
}

type MonthForecastItem struct {
	Month     string  `json:"month"`
	Count     int     `json:"count"`
	TotalCost float64 `json:"total_cost"`
}

type TimelineResponse struct {
	Upcoming          []UpcomingRenewalItem `json:"upcoming"`
	UpcomingTotalCost float64               `json:"upcoming_total_cost"`
	WeekBuckets       []WeekBucketItem      `json:"week_buckets"`
	Forecast          []MonthForecastItem   `json:"forecast"`
}

type CreditStatsResponse struct {
	TotalRemaining     int                  `json:"total_remaining"`
	OverallUsedPercent float64              `json:"overall_used_percent"`
	LowCredit          []CreditPoolResponse `json:"low_credit"`
}

type PresetResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	URL   string `json:"url"`
}
