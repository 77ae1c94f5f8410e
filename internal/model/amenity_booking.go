package model

// AmenityBooking 设施预订表 — 对应 amenity_bookings
// 资源键为 (amenity, booking_date)；同一资源键下已接受的预订时段不允许重叠
type AmenityBooking struct {
	BookingID        string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"booking_id"`
	ResidentUsername string       `gorm:"type:varchar(50);not null;index"                json:"resident_username"`
	ResidentName     string       `gorm:"type:varchar(100);not null"                     json:"resident_name"`
	Amenity          string       `gorm:"type:varchar(50);not null"                      json:"amenity"`
	BookingDate      string       `gorm:"type:varchar(10);not null"                      json:"booking_date"` // 2006-01-02
	BookingTime      string       `gorm:"type:varchar(5);not null"                       json:"booking_time"` // 15:04
	DurationHours    int          `gorm:"not null"                                       json:"duration_hours"`
	Status           ReviewStatus `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	AdminNotes       string       `gorm:"type:varchar(500);not null;default:''"          json:"admin_notes"`
	BaseModel
}

// TableName 指定表名
func (AmenityBooking) TableName() string { return "amenity_bookings" }
