package dto

import (
	bookingDto "lodge/internal/domains/booking/model/dto"
)

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type DashboardStatsResponse struct {
	TotalRooms        int                          `json:"totalRooms"`
	AvailableRooms    int                          `json:"availableRooms"`
	UnavailableRooms  int                          `json:"unavailableRooms"`
	TotalBookings     int                          `json:"totalBookings"`
	PendingBookings   int                          `json:"pendingBookings"`
	ConfirmedBookings int                          `json:"confirmedBookings"`
	CancelledBookings int                          `json:"cancelledBookings"`
	TotalRevenue      float64                      `json:"totalRevenue"`
	MonthlyRevenue    []MonthlyRevenue             `json:"monthlyRevenue"`
	RecentBookings    []bookingDto.BookingResponse `json:"recentBookings"`
}
