package service

import (
	"math/rand"
	"testing"
	"time"

	"resihub/backend/internal/model"
)

func TestIntervalsOverlap(t *testing.T) {
	base := time.Date(2030, 6, 15, 0, 0, 0, 0, time.Local)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"完全重合", at(10), at(12), at(10), at(12), true},
		{"部分重叠", at(10), at(12), at(11), at(13), true},
		{"包含关系", at(10), at(14), at(11), at(12), true},
		{"首尾相接不算冲突", at(10), at(12), at(12), at(14), false},
		{"反向首尾相接", at(12), at(14), at(10), at(12), false},
		{"完全分离", at(8), at(9), at(12), at(14), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := intervalsOverlap(c.s1, c.e1, c.s2, c.e2); got != c.want {
				t.Errorf("期望 %v，实际 %v", c.want, got)
			}
			// 重叠关系对称
			if got := intervalsOverlap(c.s2, c.e2, c.s1, c.e1); got != c.want {
				t.Errorf("交换参数后期望 %v，实际 %v", c.want, got)
			}
		})
	}
}

func TestHasBookingConflict(t *testing.T) {
	existing := []model.AmenityBooking{
		{Amenity: "Gym", BookingDate: "2030-06-15", BookingTime: "10:00", DurationHours: 2, Status: model.StatusApproved},
	}
	start := time.Date(2030, 6, 15, 12, 0, 0, 0, time.Local)

	// [12:00,14:00) 与 [10:00,12:00) 首尾相接，不冲突
	if hasBookingConflict(start, 2*time.Hour, existing) {
		t.Error("首尾相接的预订不应判为冲突")
	}

	// [11:00,13:00) 与 [10:00,12:00) 重叠
	overlap := time.Date(2030, 6, 15, 11, 0, 0, 0, time.Local)
	if !hasBookingConflict(overlap, 2*time.Hour, existing) {
		t.Error("重叠的预订应判为冲突")
	}
}

func TestHasBookingConflict_SkipsUnparsable(t *testing.T) {
	existing := []model.AmenityBooking{
		{Amenity: "Gym", BookingDate: "bad-date", BookingTime: "10:00", DurationHours: 2, Status: model.StatusApproved},
	}
	start := time.Date(2030, 6, 15, 10, 0, 0, 0, time.Local)
	if hasBookingConflict(start, 2*time.Hour, existing) {
		t.Error("无法解析的历史记录应被跳过而非判为冲突")
	}
}

// TestHasBookingConflict_Randomized 随机生成预订时段，
// 用逐小时占用表暴力比对冲突判定结果
func TestHasBookingConflict_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const date = "2030-06-15"
	base := time.Date(2030, 6, 15, 0, 0, 0, 0, time.Local)

	for round := 0; round < 200; round++ {
		// 随机已接受预订集合
		var existing []model.AmenityBooking
		occupied := make([]bool, 24)
		for i := 0; i < rng.Intn(4)+1; i++ {
			startHour := rng.Intn(16)
			duration := rng.Intn(4) + 1
			existing = append(existing, model.AmenityBooking{
				Amenity:       "Gym",
				BookingDate:   date,
				BookingTime:   base.Add(time.Duration(startHour) * time.Hour).Format(timeLayout),
				DurationHours: duration,
				Status:        model.StatusApproved,
			})
			for h := startHour; h < startHour+duration && h < 24; h++ {
				occupied[h] = true
			}
		}

		// 随机候选时段
		candHour := rng.Intn(16)
		candDuration := rng.Intn(4) + 1
		candStart := base.Add(time.Duration(candHour) * time.Hour)

		want := false
		for h := candHour; h < candHour+candDuration && h < 24; h++ {
			if occupied[h] {
				want = true
				break
			}
		}

		got := hasBookingConflict(candStart, time.Duration(candDuration)*time.Hour, existing)
		if got != want {
			t.Fatalf("第 %d 轮: 候选 [%d:00, +%dh) 期望冲突=%v，实际=%v（已有预订: %+v）",
				round, candHour, candDuration, want, got, existing)
		}
	}
}
