package application

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/pawcare/pawcare-api/internal/domain/access"
	"github.com/pawcare/pawcare-api/internal/domain/entity"
	repo "github.com/pawcare/pawcare-api/internal/domain/repository"
	"github.com/pawcare/pawcare-api/pkg/helpers"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeUserRepo struct {
	users map[string]*entity.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.seq++
	if u.ID == "" {
		u.ID = fmt.Sprintf("user-%d", r.seq)
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	email = helpers.LowerTrim(email)
	for _, u := range r.users {
		if helpers.LowerTrim(u.Email) == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role entity.Role) ([]entity.User, error) {
	var out []entity.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	var out []entity.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakePetRepo struct {
	pets map[string]*entity.Pet
	seq  int
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: make(map[string]*entity.Pet)}
}

func (r *fakePetRepo) Create(_ context.Context, p *entity.Pet) error {
	r.seq++
	if p.ID == "" {
		p.ID = fmt.Sprintf("pet-%d", r.seq)
	}
	cp := *p
	r.pets[p.ID] = &cp
	return nil
}

func (r *fakePetRepo) GetByID(_ context.Context, id string) (*entity.Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePetRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Pet, error) {
	var out []entity.Pet
	for _, p := range r.pets {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePetRepo) ListAll(_ context.Context) ([]entity.Pet, error) {
	var out []entity.Pet
	for _, p := range r.pets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePetRepo) Update(_ context.Context, p *entity.Pet) error {
	if _, ok := r.pets[p.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *p
	r.pets[p.ID] = &cp
	return nil
}

func (r *fakePetRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.pets[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.pets, id)
	return nil
}

type fakeAppointmentRepo struct {
	appts map[string]*entity.Appointment
	seq   int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]*entity.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *entity.Appointment) error {
	r.seq++
	if a.ID == "" {
		a.ID = fmt.Sprintf("appt-%d", r.seq)
	}
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*entity.Appointment, error) {
	a, ok := r.appts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) List(_ context.Context, filter access.AppointmentFilter) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appts {
		if filter.OwnerID != "" && a.OwnerID != filter.OwnerID {
			continue
		}
		if filter.VeterinarianID != "" && a.VeterinarianID != filter.VeterinarianID {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, a *entity.Appointment) error {
	if _, ok := r.appts[a.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}

var (
	_ repo.UserRepository        = (*fakeUserRepo)(nil)
	_ repo.PetRepository         = (*fakePetRepo)(nil)
	_ repo.AppointmentRepository = (*fakeAppointmentRepo)(nil)
)
