package usecase_test

import (
	"context"
	"sort"

	"github.com/domicilia/backoffice-api/internal/application/ports"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests del paquete. Implementan los
// puertos de repositorio con mapas; suficiente para ejercitar las reglas de
// negocio sin Postgres.

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeAdminRepo struct {
	users  map[string]*entity.AdminUser // por email
	nextID int64
}

func (f *fakeAdminRepo) Create(u *entity.AdminUser) error {
	f.nextID++
	u.ID = f.nextID
	f.users[u.Email] = u
	return nil
}
func (f *fakeAdminRepo) GetByID(id int64) (*entity.AdminUser, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeAdminRepo) GetByEmail(email string) (*entity.AdminUser, error) {
	return f.users[email], nil
}
func (f *fakeAdminRepo) Update(u *entity.AdminUser) error { f.users[u.Email] = u; return nil }
func (f *fakeAdminRepo) List(companyID int64, limit, offset int) ([]*entity.AdminUser, error) {
	var out []*entity.AdminUser
	for _, u := range f.users {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeBasicRepo struct {
	users  map[string]*entity.BasicUser
	nextID int64
}

func (f *fakeBasicRepo) Create(u *entity.BasicUser) error {
	f.nextID++
	u.ID = f.nextID
	f.users[u.Email] = u
	return nil
}
func (f *fakeBasicRepo) GetByID(id int64) (*entity.BasicUser, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeBasicRepo) GetByEmail(email string) (*entity.BasicUser, error) {
	return f.users[email], nil
}
func (f *fakeBasicRepo) Update(u *entity.BasicUser) error { f.users[u.Email] = u; return nil }
func (f *fakeBasicRepo) List(companyID int64, limit, offset int) ([]*entity.BasicUser, error) {
	var out []*entity.BasicUser
	for _, u := range f.users {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (f *fakeBasicRepo) Delete(id int64) error {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
		}
	}
	return nil
}

type fakeSubRoleRepo struct {
	roles map[string]*entity.SubRole // por label
}

func (f *fakeSubRoleRepo) GetByLabel(label string) (*entity.SubRole, error) {
	return f.roles[label], nil
}
func (f *fakeSubRoleRepo) GetByID(id int64) (*entity.SubRole, error) {
	for _, r := range f.roles {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Companies y temas
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[int64]*entity.Company
	nextID    int64
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	f.nextID++
	c.ID = f.nextID
	f.companies[c.ID] = c
	return nil
}
func (f *fakeCompanyRepo) GetByID(id int64) (*entity.Company, error) { return f.companies[id], nil }
func (f *fakeCompanyRepo) GetBySlug(slug string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range f.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (f *fakeCompanyRepo) Update(c *entity.Company) error { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) Delete(id int64) error          { delete(f.companies, id); return nil }

type fakeThemeRepo struct {
	themes map[int64]*entity.ColorTheme
	nextID int64
}

func (f *fakeThemeRepo) List() ([]*entity.ColorTheme, error) {
	var out []*entity.ColorTheme
	for _, th := range f.themes {
		out = append(out, th)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (f *fakeThemeRepo) GetByID(id int64) (*entity.ColorTheme, error) { return f.themes[id], nil }
func (f *fakeThemeRepo) GetByCompany(companyID int64) (*entity.ColorTheme, error) {
	for _, th := range f.themes {
		if th.CompanyID != nil && *th.CompanyID == companyID {
			return th, nil
		}
	}
	return nil, nil
}
func (f *fakeThemeRepo) Create(th *entity.ColorTheme) error {
	f.nextID++
	th.ID = f.nextID
	f.themes[th.ID] = th
	return nil
}
func (f *fakeThemeRepo) Update(th *entity.ColorTheme) error { f.themes[th.ID] = th; return nil }
func (f *fakeThemeRepo) Delete(id int64) error              { delete(f.themes, id); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Ofertas y bureaux virtuales
// ──────────────────────────────────────────────────────────────────────────────

type fakeOfferRepo struct {
	offers  map[int64]*entity.VirtualOfficeOffer
	nextID  int64
	deleted []int64
}

func (f *fakeOfferRepo) Create(o *entity.VirtualOfficeOffer) error {
	f.nextID++
	o.ID = f.nextID
	f.offers[o.ID] = o
	return nil
}
func (f *fakeOfferRepo) GetByID(id int64) (*entity.VirtualOfficeOffer, error) {
	return f.offers[id], nil
}
func (f *fakeOfferRepo) List(filter repository.OfferFilter) ([]*entity.VirtualOfficeOffer, error) {
	var out []*entity.VirtualOfficeOffer
	for _, o := range f.offers {
		if filter.CompanyID != nil && o.CompanyID != *filter.CompanyID {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (f *fakeOfferRepo) Update(o *entity.VirtualOfficeOffer) error { f.offers[o.ID] = o; return nil }
func (f *fakeOfferRepo) Delete(id int64) error {
	delete(f.offers, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeVirtualOfficeRepo struct {
	offices map[int64]*entity.VirtualOffice
	nextID  int64
}

func (f *fakeVirtualOfficeRepo) Create(vo *entity.VirtualOffice) error {
	f.nextID++
	vo.ID = f.nextID
	f.offices[vo.ID] = vo
	return nil
}
func (f *fakeVirtualOfficeRepo) GetByID(id int64) (*entity.VirtualOffice, error) {
	return f.offices[id], nil
}
func (f *fakeVirtualOfficeRepo) GetByBasicUser(basicUserID int64) (*entity.VirtualOffice, error) {
	for _, vo := range f.offices {
		if vo.BasicUserID == basicUserID {
			return vo, nil
		}
	}
	return nil, nil
}
func (f *fakeVirtualOfficeRepo) List(limit, offset int) ([]*entity.VirtualOffice, error) {
	var out []*entity.VirtualOffice
	for _, vo := range f.offices {
		out = append(out, vo)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (f *fakeVirtualOfficeRepo) Update(vo *entity.VirtualOffice) error {
	f.offices[vo.ID] = vo
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Puertos de salida (LLM y pagos)
// ──────────────────────────────────────────────────────────────────────────────

type fakeLLM struct {
	reply   string
	err     error
	lastReq ports.CompletionRequest
}

func (f *fakeLLM) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakePayment struct {
	product *ports.SubscriptionProduct
	err     error
	lastIn  ports.CreateProductInput
	calls   int
}

func (f *fakePayment) CreateSubscriptionProduct(ctx context.Context, in ports.CreateProductInput) (*ports.SubscriptionProduct, error) {
	f.calls++
	f.lastIn = in
	if f.err != nil {
		return nil, f.err
	}
	return f.product, nil
}
