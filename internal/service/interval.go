package service

import (
	"time"

	"resihub/backend/internal/model"
)

// ── 预订时段冲突判定 ──
//
// 预订占用半开区间 [start, start+duration)。判定只看同一
// (amenity, booking_date) 资源键下已接受的预订，首尾相接不算冲突。

// intervalsOverlap 半开区间 [s1,e1) 与 [s2,e2) 是否重叠
func intervalsOverlap(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// bookingInterval 由预订记录还原其占用的半开区间
func bookingInterval(b *model.AmenityBooking) (start, end time.Time, err error) {
	start, err = parseStartInstant(b.BookingDate, b.BookingTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = start.Add(time.Duration(b.DurationHours) * time.Hour)
	return start, end, nil
}

// hasBookingConflict 候选时段是否与任一已有预订重叠
// existing 应当已按资源键和状态过滤；无法解析的历史脏数据跳过
func hasBookingConflict(start time.Time, duration time.Duration, existing []model.AmenityBooking) bool {
	end := start.Add(duration)
	for i := range existing {
		s, e, err := bookingInterval(&existing[i])
		if err != nil {
			continue
		}
		if intervalsOverlap(start, end, s, e) {
			return true
		}
	}
	return false
}
