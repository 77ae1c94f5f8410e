package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"resihub/backend/internal/model"
	pkgerrors "resihub/backend/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: username 与 user_id 双索引
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Username
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.users[user.Username] = user
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	user.UpdatedAt = time.Now()
	m.users[user.Username] = user
	m.users[user.UserID] = user
	return nil
}

// ── Mock VisitorRequestRepository ──

type mockVisitorRequestRepo struct {
	requests map[string]*model.VisitorRequest
	seq      int
}

func newMockVisitorRequestRepo() *mockVisitorRequestRepo {
	return &mockVisitorRequestRepo{requests: make(map[string]*model.VisitorRequest)}
}

func (m *mockVisitorRequestRepo) Create(_ context.Context, req *model.VisitorRequest) error {
	if req.RequestID == "" {
		m.seq++
		req.RequestID = fmt.Sprintf("vr-%d", m.seq)
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	req.UpdatedAt = req.CreatedAt
	m.requests[req.RequestID] = req
	return nil
}

func (m *mockVisitorRequestRepo) GetByID(_ context.Context, id string) (*model.VisitorRequest, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVisitorRequestRepo) Update(_ context.Context, req *model.VisitorRequest) error {
	req.UpdatedAt = time.Now()
	m.requests[req.RequestID] = req
	return nil
}

func (m *mockVisitorRequestRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := m.requests[id]; !ok {
		return 0, nil
	}
	delete(m.requests, id)
	return 1, nil
}

func (m *mockVisitorRequestRepo) DeleteOwnedPending(_ context.Context, id, residentUsername string) (int64, error) {
	r, ok := m.requests[id]
	if !ok || r.ResidentUsername != residentUsername || r.Status != model.StatusPending {
		return 0, nil
	}
	delete(m.requests, id)
	return 1, nil
}

func (m *mockVisitorRequestRepo) ListAll(_ context.Context) ([]model.VisitorRequest, error) {
	var result []model.VisitorRequest
	for _, r := range m.requests {
		result = append(result, *r)
	}
	sortRequestsNewestFirst(result)
	return result, nil
}

func (m *mockVisitorRequestRepo) ListByResident(_ context.Context, residentUsername string) ([]model.VisitorRequest, error) {
	var result []model.VisitorRequest
	for _, r := range m.requests {
		if r.ResidentUsername == residentUsername {
			result = append(result, *r)
		}
	}
	sortRequestsNewestFirst(result)
	return result, nil
}

// sortRequestsNewestFirst 与真实仓储一致：created_at 倒序
func sortRequestsNewestFirst(list []model.VisitorRequest) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

func (m *mockVisitorRequestRepo) PurgeExpired(_ context.Context, before time.Time) (int64, error) {
	var purged int64
	for id, r := range m.requests {
		if r.CreatedAt.Before(before) {
			delete(m.requests, id)
			purged++
		}
	}
	return purged, nil
}

// ── Mock AmenityBookingRepository ──

type mockAmenityBookingRepo struct {
	bookings map[string]*model.AmenityBooking
	seq      int
}

func newMockAmenityBookingRepo() *mockAmenityBookingRepo {
	return &mockAmenityBookingRepo{bookings: make(map[string]*model.AmenityBooking)}
}

func (m *mockAmenityBookingRepo) CreateChecked(_ context.Context, booking *model.AmenityBooking, conflict func(existing []model.AmenityBooking) bool) error {
	// 与真实实现一致：只把同资源键下已接受的预订交给判定函数
	var accepted []model.AmenityBooking
	for _, b := range m.bookings {
		if b.Amenity == booking.Amenity && b.BookingDate == booking.BookingDate && b.Status == model.StatusApproved {
			accepted = append(accepted, *b)
		}
	}
	if conflict(accepted) {
		return pkgerrors.ErrBookingConflict
	}

	if booking.BookingID == "" {
		m.seq++
		booking.BookingID = fmt.Sprintf("bk-%d", m.seq)
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	booking.UpdatedAt = booking.CreatedAt
	m.bookings[booking.BookingID] = booking
	return nil
}

func (m *mockAmenityBookingRepo) GetByID(_ context.Context, id string) (*model.AmenityBooking, error) {
	if b, ok := m.bookings[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAmenityBookingRepo) Update(_ context.Context, booking *model.AmenityBooking) error {
	booking.UpdatedAt = time.Now()
	m.bookings[booking.BookingID] = booking
	return nil
}

func (m *mockAmenityBookingRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := m.bookings[id]; !ok {
		return 0, nil
	}
	delete(m.bookings, id)
	return 1, nil
}

func (m *mockAmenityBookingRepo) DeleteOwnedPending(_ context.Context, id, residentUsername string) (int64, error) {
	b, ok := m.bookings[id]
	if !ok || b.ResidentUsername != residentUsername || b.Status != model.StatusPending {
		return 0, nil
	}
	delete(m.bookings, id)
	return 1, nil
}

func (m *mockAmenityBookingRepo) ListAll(_ context.Context) ([]model.AmenityBooking, error) {
	var result []model.AmenityBooking
	for _, b := range m.bookings {
		result = append(result, *b)
	}
	sortBookingsNewestFirst(result)
	return result, nil
}

func (m *mockAmenityBookingRepo) ListByResident(_ context.Context, residentUsername string) ([]model.AmenityBooking, error) {
	var result []model.AmenityBooking
	for _, b := range m.bookings {
		if b.ResidentUsername == residentUsername {
			result = append(result, *b)
		}
	}
	sortBookingsNewestFirst(result)
	return result, nil
}

// sortBookingsNewestFirst 与真实仓储一致：created_at 倒序
func sortBookingsNewestFirst(list []model.AmenityBooking) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

func (m *mockAmenityBookingRepo) ListApproved(_ context.Context, residentUsername string) ([]model.AmenityBooking, error) {
	var result []model.AmenityBooking
	for _, b := range m.bookings {
		if b.Status != model.StatusApproved {
			continue
		}
		if residentUsername != "" && b.ResidentUsername != residentUsername {
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

func (m *mockAmenityBookingRepo) PurgeExpired(_ context.Context, before time.Time) (int64, error) {
	var purged int64
	for id, b := range m.bookings {
		if b.CreatedAt.Before(before) {
			delete(m.bookings, id)
			purged++
		}
	}
	return purged, nil
}

// ── Mock AnnouncementRepository ──

type mockAnnouncementRepo struct {
	announcements map[string]*model.Announcement
	seq           int
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{announcements: make(map[string]*model.Announcement)}
}

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	if a.AnnouncementID == "" {
		m.seq++
		a.AnnouncementID = fmt.Sprintf("ann-%d", m.seq)
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	m.announcements[a.AnnouncementID] = a
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id string) (*model.Announcement, error) {
	if a, ok := m.announcements[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) Update(_ context.Context, a *model.Announcement) error {
	a.UpdatedAt = time.Now()
	m.announcements[a.AnnouncementID] = a
	return nil
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := m.announcements[id]; !ok {
		return 0, nil
	}
	delete(m.announcements, id)
	return 1, nil
}

func (m *mockAnnouncementRepo) ListAll(_ context.Context) ([]model.Announcement, error) {
	var result []model.Announcement
	for _, a := range m.announcements {
		result = append(result, *a)
	}
	return result, nil
}

// ── Mock ContactInfoRepository ──

type mockContactInfoRepo struct {
	contacts map[string]*model.ContactInfo
	seq      int
}

func newMockContactInfoRepo() *mockContactInfoRepo {
	return &mockContactInfoRepo{contacts: make(map[string]*model.ContactInfo)}
}

func (m *mockContactInfoRepo) Create(_ context.Context, c *model.ContactInfo) error {
	if c.ContactID == "" {
		m.seq++
		c.ContactID = fmt.Sprintf("ct-%d", m.seq)
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	m.contacts[c.ContactID] = c
	return nil
}

func (m *mockContactInfoRepo) GetByID(_ context.Context, id string) (*model.ContactInfo, error) {
	if c, ok := m.contacts[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContactInfoRepo) GetByUsername(_ context.Context, username string) (*model.ContactInfo, error) {
	for _, c := range m.contacts {
		if c.Username == username {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContactInfoRepo) Update(_ context.Context, c *model.ContactInfo) error {
	c.UpdatedAt = time.Now()
	m.contacts[c.ContactID] = c
	return nil
}

func (m *mockContactInfoRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := m.contacts[id]; !ok {
		return 0, nil
	}
	delete(m.contacts, id)
	return 1, nil
}

func (m *mockContactInfoRepo) ListAll(_ context.Context) ([]model.ContactInfo, error) {
	var result []model.ContactInfo
	for _, c := range m.contacts {
		result = append(result, *c)
	}
	return result, nil
}

// ── Mock MeetingMinuteRepository ──

type mockMeetingMinuteRepo struct {
	minutes map[string]*model.MeetingMinute
	seq     int
}

func newMockMeetingMinuteRepo() *mockMeetingMinuteRepo {
	return &mockMeetingMinuteRepo{minutes: make(map[string]*model.MeetingMinute)}
}

func (m *mockMeetingMinuteRepo) Create(_ context.Context, minute *model.MeetingMinute) error {
	if minute.MinuteID == "" {
		m.seq++
		minute.MinuteID = fmt.Sprintf("mm-%d", m.seq)
	}
	minute.CreatedAt = time.Now()
	minute.UpdatedAt = minute.CreatedAt
	m.minutes[minute.MinuteID] = minute
	return nil
}

func (m *mockMeetingMinuteRepo) GetByID(_ context.Context, id string) (*model.MeetingMinute, error) {
	if mm, ok := m.minutes[id]; ok {
		return mm, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMeetingMinuteRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := m.minutes[id]; !ok {
		return 0, nil
	}
	delete(m.minutes, id)
	return 1, nil
}

func (m *mockMeetingMinuteRepo) ListAll(_ context.Context) ([]model.MeetingMinute, error) {
	var result []model.MeetingMinute
	for _, mm := range m.minutes {
		copied := *mm
		copied.FileData = "" // 与真实实现一致：列表不加载文件内容
		result = append(result, copied)
	}
	return result, nil
}

// ── Mock GatePassRepository ──

type mockGatePassRepo struct {
	passes map[string]*model.GatePass
	seq    int
}

func newMockGatePassRepo() *mockGatePassRepo {
	return &mockGatePassRepo{passes: make(map[string]*model.GatePass)}
}

func (m *mockGatePassRepo) Create(_ context.Context, p *model.GatePass) error {
	if p.PassID == "" {
		m.seq++
		p.PassID = fmt.Sprintf("gp-%d", m.seq)
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.passes[p.PassID] = p
	return nil
}

func (m *mockGatePassRepo) ListValid(_ context.Context, now time.Time) ([]model.GatePass, error) {
	var result []model.GatePass
	for _, p := range m.passes {
		if !p.ValidUntil.Before(now) {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockGatePassRepo) PurgeExpired(_ context.Context, before time.Time) (int64, error) {
	var purged int64
	for id, p := range m.passes {
		if p.ValidUntil.Before(before) {
			delete(m.passes, id)
			purged++
		}
	}
	return purged, nil
}
