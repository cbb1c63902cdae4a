package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"salon-agenda/internal/model"
	"salon-agenda/internal/repository"
	pkgerrors "salon-agenda/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, role string, _, _ int) ([]model.User, int64, error) {
	var result []model.User
	for _, u := range m.users {
		if role == "" || u.Role == role {
			result = append(result, *u)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.users, id)
	return nil
}

// ── Mock ProfessionalRepository ──

type mockProfessionalRepo struct {
	professionals map[string]*model.Professional
	seq           int
}

func newMockProfessionalRepo() *mockProfessionalRepo {
	return &mockProfessionalRepo{professionals: make(map[string]*model.Professional)}
}

func (m *mockProfessionalRepo) Create(_ context.Context, prof *model.Professional) error {
	if prof.ProfessionalID == "" {
		m.seq++
		prof.ProfessionalID = fmt.Sprintf("prof-%d", m.seq)
	}
	m.professionals[prof.ProfessionalID] = prof
	return nil
}

func (m *mockProfessionalRepo) GetByID(_ context.Context, id string) (*model.Professional, error) {
	if p, ok := m.professionals[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessionalRepo) List(_ context.Context, includeInactive bool) ([]model.Professional, error) {
	var result []model.Professional
	for _, p := range m.professionals {
		if includeInactive || p.Active {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockProfessionalRepo) Update(_ context.Context, prof *model.Professional) error {
	m.professionals[prof.ProfessionalID] = prof
	return nil
}

func (m *mockProfessionalRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.professionals, id)
	return nil
}

// ── Mock ServiceRepository ──

type mockServiceRepo struct {
	services map[string]*model.Service
	seq      int
}

func newMockServiceRepo() *mockServiceRepo {
	return &mockServiceRepo{services: make(map[string]*model.Service)}
}

func (m *mockServiceRepo) Create(_ context.Context, svc *model.Service) error {
	if svc.ServiceID == "" {
		m.seq++
		svc.ServiceID = fmt.Sprintf("svc-%d", m.seq)
	}
	m.services[svc.ServiceID] = svc
	return nil
}

func (m *mockServiceRepo) GetByID(_ context.Context, id string) (*model.Service, error) {
	if s, ok := m.services[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockServiceRepo) List(_ context.Context, includeInactive bool) ([]model.Service, error) {
	var result []model.Service
	for _, s := range m.services {
		if includeInactive || s.Active {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockServiceRepo) Update(_ context.Context, svc *model.Service) error {
	m.services[svc.ServiceID] = svc
	return nil
}

func (m *mockServiceRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.services, id)
	return nil
}

// ── Mock ProfessionalServiceRepository ──

type mockProfessionalServiceRepo struct {
	links map[string]*model.ProfessionalService // key: profID + "/" + svcID
	svcs  *mockServiceRepo
	profs *mockProfessionalRepo
}

func newMockProfessionalServiceRepo(profs *mockProfessionalRepo, svcs *mockServiceRepo) *mockProfessionalServiceRepo {
	return &mockProfessionalServiceRepo{
		links: make(map[string]*model.ProfessionalService),
		svcs:  svcs,
		profs: profs,
	}
}

func linkKey(professionalID, serviceID string) string {
	return professionalID + "/" + serviceID
}

func (m *mockProfessionalServiceRepo) Link(_ context.Context, link *model.ProfessionalService) error {
	m.links[linkKey(link.ProfessionalID, link.ServiceID)] = link
	return nil
}

func (m *mockProfessionalServiceRepo) Unlink(_ context.Context, professionalID, serviceID string) (bool, error) {
	key := linkKey(professionalID, serviceID)
	if _, ok := m.links[key]; !ok {
		return false, nil
	}
	delete(m.links, key)
	return true, nil
}

func (m *mockProfessionalServiceRepo) GetLink(_ context.Context, professionalID, serviceID string) (*model.ProfessionalService, error) {
	if l, ok := m.links[linkKey(professionalID, serviceID)]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessionalServiceRepo) ListServicesByProfessional(_ context.Context, professionalID string) ([]model.Service, error) {
	var result []model.Service
	for _, l := range m.links {
		if l.ProfessionalID != professionalID {
			continue
		}
		if s, ok := m.svcs.services[l.ServiceID]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockProfessionalServiceRepo) ListProfessionalsByService(_ context.Context, serviceID string) ([]model.Professional, error) {
	var result []model.Professional
	for _, l := range m.links {
		if l.ServiceID != serviceID {
			continue
		}
		if p, ok := m.profs.professionals[l.ProfessionalID]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

// ── Mock WorkScheduleRepository ──

type mockWorkScheduleRepo struct {
	schedules map[string]*model.WorkSchedule
	seq       int
}

func newMockWorkScheduleRepo() *mockWorkScheduleRepo {
	return &mockWorkScheduleRepo{schedules: make(map[string]*model.WorkSchedule)}
}

func (m *mockWorkScheduleRepo) Create(_ context.Context, ws *model.WorkSchedule) error {
	if ws.WorkScheduleID == "" {
		m.seq++
		ws.WorkScheduleID = fmt.Sprintf("ws-%d", m.seq)
	}
	m.schedules[ws.WorkScheduleID] = ws
	return nil
}

func (m *mockWorkScheduleRepo) GetByID(_ context.Context, id string) (*model.WorkSchedule, error) {
	if ws, ok := m.schedules[id]; ok {
		return ws, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkScheduleRepo) ListByProfessional(_ context.Context, professionalID string) ([]model.WorkSchedule, error) {
	var result []model.WorkSchedule
	for _, ws := range m.schedules {
		if ws.ProfessionalID == professionalID {
			result = append(result, *ws)
		}
	}
	return result, nil
}

func (m *mockWorkScheduleRepo) ListByProfessionalAndDay(_ context.Context, professionalID string, dayOfWeek int) ([]model.WorkSchedule, error) {
	var result []model.WorkSchedule
	for _, ws := range m.schedules {
		if ws.ProfessionalID == professionalID && ws.DayOfWeek == dayOfWeek {
			result = append(result, *ws)
		}
	}
	return result, nil
}

func (m *mockWorkScheduleRepo) Update(_ context.Context, ws *model.WorkSchedule) error {
	m.schedules[ws.WorkScheduleID] = ws
	return nil
}

func (m *mockWorkScheduleRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.schedules, id)
	return nil
}

// ── Mock AppointmentRepository ──

type mockAppointmentRepo struct {
	appointments map[string]*model.Appointment
	seq          int
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[string]*model.Appointment)}
}

// timesOverlap compares fixed-width "HH:mm" strings; lexicographic order
// matches chronological order for them.
func timesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

func (m *mockAppointmentRepo) CreateIfFree(_ context.Context, appt *model.Appointment) error {
	for _, other := range m.appointments {
		if other.ProfessionalID != appt.ProfessionalID || !other.Date.Equal(appt.Date) {
			continue
		}
		if !other.Occupies() {
			continue
		}
		if timesOverlap(appt.StartTime, appt.EndTime, other.StartTime, other.EndTime) {
			return pkgerrors.ErrSlotTaken
		}
	}
	if appt.AppointmentID == "" {
		m.seq++
		appt.AppointmentID = fmt.Sprintf("appt-%d", m.seq)
	}
	if appt.Version == 0 {
		appt.Version = 1
	}
	m.appointments[appt.AppointmentID] = appt
	return nil
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id string) (*model.Appointment, error) {
	if a, ok := m.appointments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAppointmentRepo) ListByUser(_ context.Context, userID string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appointments {
		if a.UserID == userID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) ListByProfessionalAndDate(_ context.Context, professionalID string, date time.Time, statuses []string) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appointments {
		if a.ProfessionalID != professionalID || !a.Date.Equal(date) {
			continue
		}
		if len(statuses) > 0 && !containsStatus(statuses, a.Status) {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) ListUpcomingByProfessional(_ context.Context, professionalID string, fromDate time.Time) ([]model.Appointment, error) {
	var result []model.Appointment
	for _, a := range m.appointments {
		if a.ProfessionalID == professionalID && !a.Date.Before(fromDate) && a.Occupies() {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) List(_ context.Context, filter repository.AppointmentFilter) ([]model.Appointment, int64, error) {
	var result []model.Appointment
	for _, a := range m.appointments {
		if filter.ProfessionalID != "" && a.ProfessionalID != filter.ProfessionalID {
			continue
		}
		if !filter.Date.IsZero() && !a.Date.Equal(filter.Date) {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		result = append(result, *a)
	}
	return result, int64(len(result)), nil
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, appt *model.Appointment) error {
	stored, ok := m.appointments[appt.AppointmentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if stored.Version != appt.Version {
		return pkgerrors.ErrOptimisticLock
	}
	appt.Version++
	m.appointments[appt.AppointmentID] = appt
	return nil
}

func (m *mockAppointmentRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.appointments, id)
	return nil
}

func containsStatus(statuses []string, status string) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// ── Mock TransactionRepository ──

type mockTransactionRepo struct {
	transactions map[string]*model.Transaction
	seq          int
}

func newMockTransactionRepo() *mockTransactionRepo {
	return &mockTransactionRepo{transactions: make(map[string]*model.Transaction)}
}

func (m *mockTransactionRepo) Create(_ context.Context, tr *model.Transaction) error {
	if tr.TransactionID == "" {
		m.seq++
		tr.TransactionID = fmt.Sprintf("tr-%d", m.seq)
	}
	m.transactions[tr.TransactionID] = tr
	return nil
}

func (m *mockTransactionRepo) GetByID(_ context.Context, id string) (*model.Transaction, error) {
	if t, ok := m.transactions[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTransactionRepo) List(_ context.Context, filter repository.TransactionFilter) ([]model.Transaction, int64, error) {
	var result []model.Transaction
	for _, t := range m.transactions {
		if !filter.From.IsZero() && t.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && t.Date.After(filter.To) {
			continue
		}
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		result = append(result, *t)
	}
	return result, int64(len(result)), nil
}

func (m *mockTransactionRepo) Update(_ context.Context, tr *model.Transaction) error {
	m.transactions[tr.TransactionID] = tr
	return nil
}

func (m *mockTransactionRepo) Delete(_ context.Context, id string) error {
	delete(m.transactions, id)
	return nil
}

func (m *mockTransactionRepo) Summarize(_ context.Context, from, to time.Time) (*repository.TransactionSummary, error) {
	summary := &repository.TransactionSummary{}
	for _, t := range m.transactions {
		if !from.IsZero() && t.Date.Before(from) {
			continue
		}
		if !to.IsZero() && t.Date.After(to) {
			continue
		}
		switch t.Type {
		case model.TransactionIncome:
			summary.Income += t.Amount
		case model.TransactionExpense:
			summary.Expense += t.Amount
		}
	}
	return summary, nil
}

// ── Test fixture ──

// newTestRepository bundles fresh mocks into the aggregate the services take.
func newTestRepository() (*repository.Repository, *mockAppointmentRepo) {
	profs := newMockProfessionalRepo()
	svcs := newMockServiceRepo()
	appts := newMockAppointmentRepo()
	repo := &repository.Repository{
		User:                newMockUserRepo(),
		Professional:        profs,
		Service:             svcs,
		ProfessionalService: newMockProfessionalServiceRepo(profs, svcs),
		WorkSchedule:        newMockWorkScheduleRepo(),
		Appointment:         appts,
		Transaction:         newMockTransactionRepo(),
	}
	return repo, appts
}
