package model

import (
	"github.com/shopspring/decimal"
)

// TrendDirection enum constants
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

// Bucket aggregates the records of one calendar day
type Bucket struct {
	DateKey     string          `json:"date"` // YYYY-MM-DD
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int             `json:"count"`
}

// Trend compares the last two points of a series
type Trend struct {
	Direction string `json:"direction"`
	Label     string `json:"label"`
}

// Slice is one segment of a status distribution chart
type Slice struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

// DashboardOverview is everything the dashboard view renders
type DashboardOverview struct {
	Range              string          `json:"range"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	TotalAmountLabel   string          `json:"total_amount_label"`
	TotalCount         int             `json:"total_count"`
	MerchantCount      int             `json:"merchant_count"`
	StatusDistribution []Slice         `json:"status_distribution"`
	DailyAmounts       []Bucket        `json:"daily_amounts"`
	DailyCounts        []Bucket        `json:"daily_counts"`
	AmountTrend        Trend           `json:"amount_trend"`
	CountTrend         Trend           `json:"count_trend"`
	RecentTransactions []Transaction   `json:"recent_transactions"`
}

// MerchantStatistics summarises the payments of one merchant
type MerchantStatistics struct {
	TotalAmount        decimal.Decimal `json:"total_amount"`
	TotalAmountLabel   string          `json:"total_amount_label"`
	TotalCount         int             `json:"total_count"`
	StatusCounts       map[string]int  `json:"status_counts"`
	StatusDistribution []Slice         `json:"status_distribution"`
	DailySuccessAmount []Bucket        `json:"daily_success_amount"`
	RecentPayments     []Transaction   `json:"recent_payments"`
}
